package viz

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestScatter(t *testing.T) {
	dir, err := ioutil.TempDir("", "viz-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	z := mat.NewDense(6, 2, []float64{
		-1, -1,
		-1.2, -0.8,
		-0.9, -1.1,
		1, 1,
		1.1, 0.9,
		0.8, 1.2,
	})
	labels := []int32{0, 0, 0, 1, 1, 1}

	path := filepath.Join(dir, "embeddings.png")
	require.NoError(t, Scatter(path, z, labels))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestScatterNilLabels(t *testing.T) {
	dir, err := ioutil.TempDir("", "viz-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	z := mat.NewDense(4, 2, []float64{0, 1, 1, 0, 2, 2, 3, 1})
	require.NoError(t, Scatter(filepath.Join(dir, "plain.png"), z, nil))
}

func TestScatterRejectsBadShapes(t *testing.T) {
	z3 := mat.NewDense(2, 3, nil)
	require.Error(t, Scatter("unused.png", z3, nil))

	z2 := mat.NewDense(2, 2, nil)
	require.Error(t, Scatter("unused.png", z2, []int32{0}))
}
