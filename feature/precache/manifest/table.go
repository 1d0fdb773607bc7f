package manifest

// Capacity is the maximum number of entries a table holds.
const Capacity = 512

// Table is an ordered, capacity-bounded list of precache entries.
type Table struct {
	entries []Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make([]Entry, 0, Capacity)}
}

// Add appends an entry. It returns false when the table is full.
func (t *Table) Add(e Entry) bool {
	if t.Full() {
		return false
	}
	t.entries = append(t.entries, e)
	return true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Full reports whether the table has reached Capacity.
func (t *Table) Full() bool {
	return len(t.entries) >= Capacity
}

// Entries returns a copy of the entries in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Reset empties the table.
func (t *Table) Reset() {
	t.entries = t.entries[:0]
}
