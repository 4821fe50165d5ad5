package component

// SimClock is the fixed-step simulation clock. Delta is constant for the
// whole run; Elapsed and Tick advance once per scheduler pass.
type SimClock struct {
	Delta   float64
	Elapsed float64
	Tick    int
}

var SimClockComponent = NewComponent[SimClock]()
