package checkmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepMatrixCrossesTargetsAndFeatures(t *testing.T) {
	matrix := SweepMatrix()
	require.Len(t, matrix, len(SweepTargets)*len(SweepFeatures))

	assert.Equal(t, Combination{Target: "wasm32-unknown-unknown"}, matrix[0])
	assert.Equal(t, Combination{}, matrix[len(matrix)-1], "the host target comes last")
}

func TestCuratedMatrixChecksStaticSerEverywhere(t *testing.T) {
	require.Len(t, CuratedMatrix, 4)

	for _, combo := range CuratedMatrix {
		assert.NotEmpty(t, combo.Target)
		assert.Equal(t, "static_ser", combo.Features)
	}

	assert.Equal(t, "wasm32-unknown-unknown", CuratedMatrix[0].Target)
	assert.Equal(t, "x86_64-pc-windows-gnu", CuratedMatrix[1].Target)
}

func TestCommandLineOmitsEmptyFlags(t *testing.T) {
	cases := []struct {
		combo    Combination
		expected string
	}{
		{Combination{}, "cargo check"},
		{Combination{Target: "wasm32-unknown-unknown"}, "cargo check --target=wasm32-unknown-unknown"},
		{Combination{Features: "static_ser"}, "cargo check --features=static_ser"},
		{
			Combination{Target: "x86_64-pc-windows-gnu", Features: "static_ser"},
			"cargo check --target=x86_64-pc-windows-gnu --features=static_ser",
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.combo.CommandLine(DefaultTool))
	}
}

func TestCombinationString(t *testing.T) {
	assert.Equal(t, "host (default features)", Combination{}.String())
	assert.Equal(t,
		"x86_64-apple-darwin (features: static_ser)",
		Combination{Target: "x86_64-apple-darwin", Features: "static_ser"}.String())
}
