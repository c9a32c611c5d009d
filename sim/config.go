package sim

// Config holds the tunable parameters of a simulation run. All values
// are plain numbers; cmd/ncsim maps flags onto them.
type Config struct {
	// Resolution is the grid density in pixels per millimeter.
	Resolution float64

	ToolShape    string
	ToolDiameter float64

	// ToolLength is the nominal clearance height of the tool shank.
	// Cells outside the cutting circle sit at this offset so they
	// never remove material.
	ToolLength float64

	// TopHeight is the initial height of the stock surface.
	TopHeight float64

	// StepLength is the resample distance along carved segments.
	StepLength float64

	// ChordSpacing is the max distance between interpolated arc points.
	ChordSpacing float64
}

func DefaultConfig() Config {
	return Config{
		Resolution:   10,
		ToolShape:    "ball",
		ToolDiameter: 3.175,
		ToolLength:   38,
		TopHeight:    0,
		StepLength:   0.2,
		ChordSpacing: 0.2,
	}
}
