package csvvalidator

// duplicateTracker records the rows each value of a tracked column appears in.
// Columns and values keep first-sighting order so reports are deterministic.
// A tracker lives for exactly one Validate call.
type duplicateTracker struct {
	columns []string
	values  map[string]*valueIndex
}

type valueIndex struct {
	order []string
	rows  map[string][]int
}

// duplicateGroup is a value seen in two or more rows of a column.
type duplicateGroup struct {
	Column string
	Value  string
	Rows   []int
}

func newDuplicateTracker() *duplicateTracker {
	return &duplicateTracker{values: make(map[string]*valueIndex)}
}

func (t *duplicateTracker) add(column, value string, row int) {
	idx, ok := t.values[column]
	if !ok {
		idx = &valueIndex{rows: make(map[string][]int)}
		t.values[column] = idx
		t.columns = append(t.columns, column)
	}
	if _, seen := idx.rows[value]; !seen {
		idx.order = append(idx.order, value)
	}
	idx.rows[value] = append(idx.rows[value], row)
}

func (t *duplicateTracker) duplicates() []duplicateGroup {
	var groups []duplicateGroup
	for _, column := range t.columns {
		idx := t.values[column]
		for _, value := range idx.order {
			if rows := idx.rows[value]; len(rows) > 1 {
				groups = append(groups, duplicateGroup{Column: column, Value: value, Rows: rows})
			}
		}
	}
	return groups
}
