package consoletable_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/embedkit/internal/consoletable"
)

func TestTable(t *testing.T) {
	t.Run("can render table", func(t *testing.T) {
		table := consoletable.New("title", "first", "second")
		table.AddRow("alpha", "bravo")
		out := &strings.Builder{}
		err := table.Render(out)
		require.NoError(t, err)
		assert.Equal(t, "title:\n\n  first  second\n  -----  ------\n  alpha  bravo \n", out.String())
	})
	t.Run("should right align numbers and format them", func(t *testing.T) {
		table := consoletable.New("", "name", "count")
		table.AddRow("a", 1234)
		table.AddRow("b", 5)
		out := &strings.Builder{}
		err := table.Render(out)
		require.NoError(t, err)
		lines := strings.Split(out.String(), "\n")
		assert.Equal(t, "  a     1,234", lines[2])
		assert.Equal(t, "  b         5", lines[3])
	})
	t.Run("should render special values", func(t *testing.T) {
		table := consoletable.New("", "a", "b", "c", "d", "e")
		table.AddRow("", true, false, time.Time{}, []string{"x", "y"})
		out := &strings.Builder{}
		err := table.Render(out)
		require.NoError(t, err)
		s := out.String()
		assert.Contains(t, s, "yes")
		assert.Contains(t, s, "no")
		assert.Contains(t, s, "x, y")
	})
	t.Run("should count runes for width", func(t *testing.T) {
		table := consoletable.New("", "x")
		table.AddRow("日本語")
		out := &strings.Builder{}
		err := table.Render(out)
		require.NoError(t, err)
		lines := strings.Split(out.String(), "\n")
		assert.Equal(t, "  ---", lines[1])
	})
	t.Run("should panic when cells do not match header", func(t *testing.T) {
		table := consoletable.New("", "first", "second")
		assert.Panics(t, func() {
			table.AddRow("alpha")
		})
	})
	t.Run("can report number of rows", func(t *testing.T) {
		table := consoletable.New("", "first")
		table.AddRow("alpha")
		table.AddRow("bravo")
		assert.Equal(t, 2, table.Len())
	})
}
