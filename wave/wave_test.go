package wave_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ls "github.com/mhg42/logicsim"
	"github.com/mhg42/logicsim/stimulus"
	"github.com/mhg42/logicsim/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalSweep(t *testing.T) ([]ls.Vector, []ls.AdderResult) {
	t.Helper()
	vectors, err := stimulus.DefaultSweep().Generate()
	require.NoError(t, err)
	results, err := ls.Eval(vectors)
	require.NoError(t, err)
	return vectors, results
}

func TestRenderPNG(t *testing.T) {
	_, results := evalSweep(t)
	path := filepath.Join(t.TempDir(), "waveform.png")
	require.NoError(t, wave.RenderPNG(path, results))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}

func TestRenderPNGEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, wave.RenderPNG(path, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestDraw(t *testing.T) {
	_, results := evalSweep(t)
	var sb strings.Builder
	require.NoError(t, wave.Draw(&sb, results))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 5) // sum[0..3] and cout
	assert.Contains(t, lines[0], "sum[0]")
	assert.Contains(t, lines[4], "cout")
}

func TestTable(t *testing.T) {
	vectors, err := stimulus.Load(filepath.Join("..", "stimulus", "testdata", "carry.yml"))
	require.NoError(t, err)
	results, err := ls.Eval(vectors)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, wave.Table(&sb, vectors, results))

	out := sb.String()
	assert.Contains(t, out, "0111 + 0001 = 1000")
	assert.Contains(t, out, "1111 + 1111 = 1110")
	// one header, one rule, one row per cycle
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 2+len(vectors))
}

func TestTableMismatch(t *testing.T) {
	vectors, results := evalSweep(t)
	var sb strings.Builder
	err := wave.Table(&sb, vectors[:1], results)
	assert.Error(t, err)
}
