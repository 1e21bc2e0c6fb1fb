// Package tabs reads the tab categorization mapping exported by the browser
// extension into an in-memory Table.
//
// Each line of the mapping holds six pipe-separated fields:
//
//	tab_id|window_id|domain|title|url_ext|category
//
// There is no header line. A field may be wrapped in double quotes, in which
// case a literal '|' may appear inside it and '""' stands for one quote. An
// unquoted '|' always separates fields. Lines with the wrong number of fields
// are skipped with a warning; the rest of the file is still read.
package tabs
