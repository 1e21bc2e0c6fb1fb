package tabs

// Table is an ordered, read-only collection of records in file order.
type Table struct {
	source  string
	records []Record
	skipped int
}

// NewTable builds a table from records. The slice is copied.
func NewTable(source string, records []Record) *Table {
	return &Table{source: source, records: append([]Record(nil), records...)}
}

// Source is the path or name the table was read from.
func (t *Table) Source() string { return t.source }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Skipped returns the number of malformed lines dropped while reading.
func (t *Table) Skipped() int { return t.skipped }

// At returns the i-th record.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all records.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Head returns a copy of at most the first n records.
func (t *Table) Head(n int) []Record {
	if n > len(t.records) {
		n = len(t.records)
	}
	if n < 0 {
		n = 0
	}
	return append([]Record(nil), t.records[:n]...)
}

// Group is the set of records sharing a category label.
type Group struct {
	Label   string
	Records []Record
}

// Groups partitions the table by CategoryLabel. Groups are ordered by the
// first appearance of their label; records keep file order within a group.
func (t *Table) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range t.records {
		label := r.CategoryLabel()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}
