package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogFilters(t *testing.T) {
	l := NewLog(false)
	l.Add(1, "--", "population", "spawned", "10 cars", 10)
	l.Add(5, "e1:0", "path", "fallback", "3 blocked cells", 4)
	l.AddVerbose(6, "e1:0", "path", "recalculated", "25 waypoints", 25)
	l.Add(9, "e2:0", "path", "fallback", "0 blocked cells", 4)

	assert.Len(t, l.Entries(), 3)
	assert.Equal(t, 2, l.Count("path", ""))
	assert.Equal(t, 1, l.Count("", "spawned"))

	last, ok := l.LastOf("path", "fallback")
	assert.True(t, ok)
	assert.Equal(t, 9, last.Tick)

	_, ok = l.LastOf("sim", "restart")
	assert.False(t, ok)

	assert.Contains(t, l.Format(), "[T=005] e1:0   path      fallback         3 blocked cells\n")
}

func TestVerboseLog(t *testing.T) {
	l := NewLog(true)
	l.AddVerbose(1, "e1:0", "path", "recalculated", "", 0)
	assert.Len(t, l.Entries(), 1)

	var nilLog *Log
	nilLog.Add(1, "", "", "", "", 0)
	assert.Empty(t, nilLog.Entries())
}
