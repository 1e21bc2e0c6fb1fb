package tabs

// NumFields is the number of fields in each mapping line.
const NumFields = 6

// UnknownCategory labels records whose category field is empty.
const UnknownCategory = "Unknown"

// Columns lists the field names in file order.
var Columns = [NumFields]string{"tab_id", "window_id", "domain", "title", "url_ext", "category"}

// Record is one categorized browser tab. Empty strings are absent values.
type Record struct {
	TabID    string
	WindowID string
	Domain   string
	Title    string
	URLExt   string
	Category string
}

// Field returns the i-th field in file order.
func (r Record) Field(i int) string {
	switch i {
	case 0:
		return r.TabID
	case 1:
		return r.WindowID
	case 2:
		return r.Domain
	case 3:
		return r.Title
	case 4:
		return r.URLExt
	case 5:
		return r.Category
	}
	return ""
}

// CategoryLabel returns the grouping key for r.
func (r Record) CategoryLabel() string {
	if r.Category == "" {
		return UnknownCategory
	}
	return r.Category
}

func recordFromFields(f []string) Record {
	return Record{
		TabID:    f[0],
		WindowID: f[1],
		Domain:   f[2],
		Title:    f[3],
		URLExt:   f[4],
		Category: f[5],
	}
}
