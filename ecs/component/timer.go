package component

// RepeatingTimer fires once every Period of accumulated time. Finished is
// only true on the tick the period wrapped.
type RepeatingTimer struct {
	Period   float64
	Elapsed  float64
	Finished bool
}

func NewRepeatingTimer(period float64) RepeatingTimer {
	return RepeatingTimer{Period: period}
}

// Tick advances the timer by dt and reports whether it fired.
func (t *RepeatingTimer) Tick(dt float64) bool {
	t.Finished = false
	if t.Period <= 0 {
		return false
	}
	t.Elapsed += dt
	for t.Elapsed >= t.Period {
		t.Elapsed -= t.Period
		t.Finished = true
	}
	return t.Finished
}
