package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/validator"
)

func TestIsDate(t *testing.T) {
	t.Run("matches explicit pattern strictly", func(t *testing.T) {
		assert.True(t, validator.IsDate("31/12/2020", "DD/MM/YYYY"))
		assert.False(t, validator.IsDate("31/12/2020", "MM/DD/YYYY"))
		assert.True(t, validator.IsDate("12/31/2020", "MM/DD/YYYY"))
		assert.False(t, validator.IsDate("2020-12-31 extra", "YYYY-MM-DD"))
	})

	t.Run("tries patterns in order", func(t *testing.T) {
		assert.True(t, validator.IsDate("2021-01-15", "MM/DD/YYYY", "YYYY-MM-DD"))
		assert.False(t, validator.IsDate("15.01.2021", "MM/DD/YYYY", "YYYY-MM-DD"))
	})

	t.Run("checks calendar validity", func(t *testing.T) {
		assert.True(t, validator.IsDate("29/02/2020", "DD/MM/YYYY"))
		assert.False(t, validator.IsDate("29/02/2021", "DD/MM/YYYY"))
		assert.False(t, validator.IsDate("31/04/2021", "DD/MM/YYYY"))
		assert.False(t, validator.IsDate("00/01/2021", "DD/MM/YYYY"))
		assert.True(t, validator.IsDate("29/02", "DD/MM"))
	})

	t.Run("single digit tokens", func(t *testing.T) {
		assert.True(t, validator.IsDate("1/5/2021", "M/D/YYYY"))
		assert.True(t, validator.IsDate("12/25/2021", "M/D/YYYY"))
		assert.False(t, validator.IsDate("1/5/2021", "MM/DD/YYYY"))
	})

	t.Run("month names and short years", func(t *testing.T) {
		assert.True(t, validator.IsDate("March 3, 2021", "MMMM D, YYYY"))
		assert.True(t, validator.IsDate("03-mar-21", "DD-MMM-YY"))
		assert.False(t, validator.IsDate("03-xyz-21", "DD-MMM-YY"))
	})

	t.Run("falls back to default formats", func(t *testing.T) {
		for _, v := range []string{"12/31/2020", "31/12/2020", "2020-12-31", "20201231", "2020/12/31"} {
			assert.True(t, validator.IsDate(v), v)
		}
		assert.False(t, validator.IsDate("not a date"))
		assert.False(t, validator.IsDate(""))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.True(t, validator.IsDate(" 2020-12-31 ", "YYYY-MM-DD"))
	})
}

func TestIsDateTime(t *testing.T) {
	t.Run("explicit patterns", func(t *testing.T) {
		assert.True(t, validator.IsDateTime("2021-01-15 13:45:00", "YYYY-MM-DD HH:mm:ss"))
		assert.False(t, validator.IsDateTime("2021-01-15 25:00:00", "YYYY-MM-DD HH:mm:ss"))
		assert.False(t, validator.IsDateTime("2021-01-15 12:60:00", "YYYY-MM-DD HH:mm:ss"))
		assert.True(t, validator.IsDateTime("01/15/2021 1:05 PM", "MM/DD/YYYY h:mm A"))
		assert.False(t, validator.IsDateTime("01/15/2021 13:05 PM", "MM/DD/YYYY h:mm A"))
	})

	t.Run("iso defaults", func(t *testing.T) {
		assert.True(t, validator.IsDateTime("2021-01-15T13:45:00"))
		assert.True(t, validator.IsDateTime("2021-01-15T13:45:00Z"))
		assert.True(t, validator.IsDateTime("2021-01-15T13:45:00.123Z"))
		assert.True(t, validator.IsDateTime("2021-01-15T13:45:00+02:00"))
		assert.True(t, validator.IsDateTime("01/15/2021 13:45"))
		assert.False(t, validator.IsDateTime("2021-01-15"))
	})

	t.Run("bracketed literals", func(t *testing.T) {
		assert.True(t, validator.IsDateTime("2021-01-15 at 10:00", "YYYY-MM-DD [at] HH:mm"))
	})
}

func TestCompileDatePattern(t *testing.T) {
	t.Run("rejects malformed patterns", func(t *testing.T) {
		for _, p := range []string{"", "   ", "YYYY-[MM", "xyz"} {
			_, err := validator.CompileDatePattern(p)
			require.Error(t, err, p)
			assert.ErrorIs(t, err, validator.ErrInvalidDatePattern)
		}
	})

	t.Run("caches compiled patterns", func(t *testing.T) {
		a, err := validator.CompileDatePattern("DD.MM.YYYY")
		require.NoError(t, err)
		b, err := validator.CompileDatePattern("DD.MM.YYYY")
		require.NoError(t, err)
		assert.Same(t, a, b)
		assert.Equal(t, "DD.MM.YYYY", a.String())
		assert.True(t, a.Match("15.01.2021"))
		assert.False(t, a.Match("15-01-2021"))
	})

	t.Run("ValidDatePattern rule", func(t *testing.T) {
		assert.True(t, validator.ValidDatePattern("format", "YYYY").Check())
		assert.False(t, validator.ValidDatePattern("format", "[oops").Check())
	})
}
