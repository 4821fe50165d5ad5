package component

// SimStats is the shared statistics resource read by the HUD and the
// headless reporter.
type SimStats struct {
	NumCarsAlive int
	// MaxCurrentScore is the furthest forward position scaled by the score
	// divisor.
	MaxCurrentScore float64
	// MaxDistanceTravelled is the raw world Y of the leading car.
	MaxDistanceTravelled float64
	GenerationCount      int
	Recalculations       int
	FallbackPaths        int
}

var SimStatsComponent = NewComponent[SimStats]()
