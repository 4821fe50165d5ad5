package component

import "fmt"

// StrategyKind is the closed set of navigation strategies a car can be
// spawned with. The choice is fixed for the car's lifetime.
type StrategyKind uint8

const (
	StrategyAStar StrategyKind = iota + 1
	StrategyLearned
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyAStar:
		return "astar"
	case StrategyLearned:
		return "learned"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(k))
	}
}

// ParseStrategy maps a CLI/config name to a StrategyKind.
func ParseStrategy(name string) (StrategyKind, error) {
	switch name {
	case "astar", "a*", "":
		return StrategyAStar, nil
	case "learned", "nn", "neural":
		return StrategyLearned, nil
	default:
		return 0, fmt.Errorf("component: unknown strategy %q", name)
	}
}

type Strategy struct {
	Kind StrategyKind
}

var StrategyComponent = NewComponent[Strategy]()
