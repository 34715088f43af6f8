package maze

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text := "#####\n#S P#\n#T#T#\n#  E#\n#####\n"
		grid, err := Parse(strings.NewReader(text), nil)
		assert.NoError(t, err)
		assert.Equal(t, text, grid.String())
	})

	t.Run("inconsistent row length", func(t *testing.T) {
		_, err := Parse(strings.NewReader("####\n##\n####\n"), nil)
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), nil)
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})

	t.Run("unrecognized character becomes path", func(t *testing.T) {
		var diag bytes.Buffer
		logger := log.New(&diag, "", 0)

		grid, err := Parse(strings.NewReader("###\n#X#\n###\n"), logger)
		assert.NoError(t, err)
		assert.Equal(t, Path, grid.At(Position{X: 1, Y: 1}))
		assert.Contains(t, diag.String(), "invalid character")
	})

	t.Run("unrecognized character with nil logger", func(t *testing.T) {
		grid, err := Parse(strings.NewReader("###\n#?#\n###\n"), nil)
		assert.NoError(t, err)
		assert.Equal(t, Path, grid.At(Position{X: 1, Y: 1}))
	})
}
