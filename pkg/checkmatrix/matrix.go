package checkmatrix

// supported targets are wasm, windows, linux and macOS

// SweepTargets lists every target the sweep checks. The trailing empty
// entry stands for the host's default target.
var SweepTargets = []string{
	"wasm32-unknown-unknown",
	"x86_64-pc-windows-msvc",
	"x86_64-unknown-linux-gnu",
	"x86_64-apple-darwin",
	"",
}

// SweepFeatures lists the feature sets the sweep crosses with each target.
var SweepFeatures = []string{
	"",
}

// SweepMatrix returns the Cartesian product of SweepTargets and
// SweepFeatures, targets outermost.
func SweepMatrix() Matrix {
	matrix := make(Matrix, 0, len(SweepTargets)*len(SweepFeatures))
	for _, target := range SweepTargets {
		for _, features := range SweepFeatures {
			matrix = append(matrix, Combination{Target: target, Features: features})
		}
	}

	return matrix
}

// CuratedMatrix is the explicit list of release combinations. Every entry
// checks with the static_ser feature enabled.
var CuratedMatrix = Matrix{
	{Target: "wasm32-unknown-unknown", Features: "static_ser"},
	{Target: "x86_64-pc-windows-gnu", Features: "static_ser"},
	{Target: "x86_64-unknown-linux-gnu", Features: "static_ser"},
	{Target: "x86_64-apple-darwin", Features: "static_ser"},
}
