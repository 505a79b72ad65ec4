package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/slidego/puzzle"
)

func TestRenderBoard(t *testing.T) {
	out := renderBoard(puzzle.Solved)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, puzzle.Width+2) // rows plus top and bottom border
	for _, tile := range []string{"1", "7", "15", "·"} {
		assert.Contains(t, out, tile)
	}
}

func TestRenderPath(t *testing.T) {
	path := []puzzle.Arrangement{puzzle.Solved, puzzle.Solved, puzzle.Solved}

	wrapped := renderPath(path, 2)
	single := renderPath(path, 5)
	assert.Equal(t, 2, strings.Count(single, iconArrow))
	assert.Equal(t, 1, strings.Count(wrapped, iconArrow))
	assert.Greater(t, strings.Count(wrapped, "\n"), strings.Count(single, "\n"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234,567", count(1234567))
	assert.Equal(t, "0", count(0))
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	printTitle(&buf, "title %d", 1)
	printSuccess(&buf, "done")
	printWarning(&buf, "careful")
	printKeyValue(&buf, "key", "value")
	printNumber(&buf, "states", 1000)

	out := buf.String()
	for _, s := range []string{"title 1", "done", "careful", "key", "value", "1,000"} {
		assert.Contains(t, out, s)
	}
}
