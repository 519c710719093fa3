package heredity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	p, err := NewPedigree([]Person{{Name: "Solo"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, mustInfer(t, p, DefaultTables())))

	assert.Equal(t, `Solo:
  Gene:
    2: 0.0100
    1: 0.0300
    0: 0.9600
  Trait:
    True: 0.0329
    False: 0.9671
`, buf.String())
}
