package prefabs

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScenarioParams are the globals visible to a scenario script.
type ScenarioParams struct {
	Seed      int
	Count     int
	RoadLeft  float64
	RoadRight float64
	RoadLen   float64
}

var errObstacleArgs = errors.New("obstacle(x, y, w, h[, vx, vy]) expects 4 or 6 numbers")

// RunScenario loads scripts/<name> and returns the obstacles it places.
// Obstacle X and Y are box centers.
func RunScenario(name string, params ScenarioParams) ([]ObstacleSpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load scenario %s: %w", name, err)
	}
	obstacles, err := RunScenarioSource(src, params)
	if err != nil {
		return nil, fmt.Errorf("prefabs: scenario %s: %w", name, err)
	}
	return obstacles, nil
}

func RunScenarioSource(src []byte, params ScenarioParams) ([]ObstacleSpec, error) {
	var out []ObstacleSpec

	obstacle := &tengo.UserFunction{Name: "obstacle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 4 && len(args) != 6 {
			return nil, errObstacleArgs
		}
		vals := make([]float64, len(args))
		for i, a := range args {
			v, ok := tengo.ToFloat64(a)
			if !ok {
				return nil, fmt.Errorf("%w: argument %d is %s", errObstacleArgs, i, a.TypeName())
			}
			vals[i] = v
		}
		o := ObstacleSpec{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
		if len(vals) == 6 {
			o.VelocityX, o.VelocityY = vals[4], vals[5]
		}
		out = append(out, o)
		return tengo.UndefinedValue, nil
	}}

	script := tengo.NewScript(src)
	_ = script.Add("obstacle", obstacle)
	_ = script.Add("seed", params.Seed)
	_ = script.Add("count", params.Count)
	_ = script.Add("road_left", params.RoadLeft)
	_ = script.Add("road_right", params.RoadRight)
	_ = script.Add("road_length", params.RoadLen)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	return out, nil
}

// ScenarioParamsFor derives script globals from a spec.
func ScenarioParamsFor(spec SimSpec) ScenarioParams {
	return ScenarioParams{
		Seed:      spec.Scenario.Seed,
		Count:     spec.Scenario.Count,
		RoadLeft:  spec.Road.Left,
		RoadRight: spec.Road.Right,
		RoadLen:   spec.Road.Length,
	}
}

// ResolveObstacles returns the static obstacles of spec followed by the ones
// its scenario script places, if any.
func ResolveObstacles(spec SimSpec) ([]ObstacleSpec, error) {
	obstacles := append([]ObstacleSpec(nil), spec.Obstacles...)
	if spec.Scenario.Script == "" {
		return obstacles, nil
	}
	scripted, err := RunScenario(spec.Scenario.Script, ScenarioParamsFor(spec))
	if err != nil {
		return nil, err
	}
	return append(obstacles, scripted...), nil
}
