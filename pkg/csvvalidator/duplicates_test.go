package csvvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateTracker(t *testing.T) {
	t.Run("groups values seen more than once", func(t *testing.T) {
		tr := newDuplicateTracker()
		tr.add("ID", "1", 2)
		tr.add("Email", "a@b.com", 2)
		tr.add("ID", "2", 3)
		tr.add("ID", "1", 4)
		tr.add("Email", "a@b.com", 5)
		tr.add("ID", "1", 6)

		assert.Equal(t, []duplicateGroup{
			{Column: "ID", Value: "1", Rows: []int{2, 4, 6}},
			{Column: "Email", Value: "a@b.com", Rows: []int{2, 5}},
		}, tr.duplicates())
	})

	t.Run("keeps first sighting order of values", func(t *testing.T) {
		tr := newDuplicateTracker()
		tr.add("Code", "b", 2)
		tr.add("Code", "a", 3)
		tr.add("Code", "a", 4)
		tr.add("Code", "b", 5)

		groups := tr.duplicates()
		assert.Len(t, groups, 2)
		assert.Equal(t, "b", groups[0].Value)
		assert.Equal(t, "a", groups[1].Value)
	})

	t.Run("values are compared verbatim", func(t *testing.T) {
		tr := newDuplicateTracker()
		tr.add("ID", "1", 2)
		tr.add("ID", " 1", 3)
		assert.Empty(t, tr.duplicates())
	})

	t.Run("fresh tracker is empty", func(t *testing.T) {
		assert.Empty(t, newDuplicateTracker().duplicates())
	})
}
