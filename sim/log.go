package sim

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded simulation event.
type LogEntry struct {
	Tick     int
	Car      string // entity label, or "--" for global events
	Category string // path, population, sim
	Key      string
	Value    string
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] 12     path      recalculated     25 waypoints
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-9s %-16s %s", e.Tick, e.Car, e.Category, e.Key, e.Value)
}

// Log collects simulation events. It is unbounded; Verbose adds per-path
// entries that are noisy with large populations.
type Log struct {
	entries []LogEntry
	verbose bool
}

func NewLog(verbose bool) *Log {
	return &Log{verbose: verbose}
}

func (l *Log) Add(tick int, car, category, key, value string, numVal float64) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, LogEntry{
		Tick:     tick,
		Car:      car,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *Log) AddVerbose(tick int, car, category, key, value string, numVal float64) {
	if l == nil || !l.verbose {
		return
	}
	l.Add(tick, car, category, key, value, numVal)
}

func (l *Log) Entries() []LogEntry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Filter returns entries matching category and key. Empty strings match
// anything.
func (l *Log) Filter(category, key string) []LogEntry {
	if l == nil {
		return nil
	}
	var out []LogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (l *Log) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (l *Log) LastOf(category, key string) (LogEntry, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

func (l *Log) Format() string {
	var sb strings.Builder
	for _, e := range l.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
