package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// DefaultSimFile is the embedded simulation config.
const DefaultSimFile = "sim.yaml"

type SimSpec struct {
	World      WorldSpec      `yaml:"world"`
	Grid       GridSpec       `yaml:"grid"`
	AStar      AStarSpec      `yaml:"astar"`
	Population PopulationSpec `yaml:"population"`
	Car        CarSpec        `yaml:"car"`
	Road       RoadSpec       `yaml:"road"`
	Obstacles  []ObstacleSpec `yaml:"obstacles"`
	Scenario   ScenarioSpec   `yaml:"scenario"`
}

type WorldSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FixedDelta float64 `yaml:"fixed_delta"`
}

type GridSpec struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
}

type AStarSpec struct {
	ScanRadius     float64 `yaml:"scan_radius"`
	GoalOffset     float64 `yaml:"goal_offset"`
	RecalcPeriod   float64 `yaml:"recalc_period"`
	RecalcDistance float64 `yaml:"recalc_distance"`
	Speed          float64 `yaml:"speed"`
	ArriveRadius   float64 `yaml:"arrive_radius"`
	RotationGain   float64 `yaml:"rotation_gain"`
}

type PopulationSpec struct {
	Count         int     `yaml:"count"`
	Strategy      string  `yaml:"strategy"`
	SpawnX        float64 `yaml:"spawn_x"`
	Columns       int     `yaml:"columns"`
	ColumnSpacing float64 `yaml:"column_spacing"`
	RowSpacing    float64 `yaml:"row_spacing"`
	ScoreDivisor  float64 `yaml:"score_divisor"`
}

type CarSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RoadSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Length float64 `yaml:"length"`
}

type ObstacleSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

type ScenarioSpec struct {
	Script string `yaml:"script"`
	Seed   int    `yaml:"seed"`
	Count  int    `yaml:"count"`
}

// DefaultSimSpec mirrors the embedded sim.yaml so a partial config file only
// needs to name the fields it changes.
func DefaultSimSpec() SimSpec {
	return SimSpec{
		World: WorldSpec{Width: 1280, Height: 720, FixedDelta: 1.0 / 60.0},
		Grid:  GridSpec{Width: 100, Height: 200, CellSize: 20, OriginX: 600, OriginY: 0},
		AStar: AStarSpec{
			ScanRadius:     300,
			GoalOffset:     500,
			RecalcPeriod:   1.0,
			RecalcDistance: 50,
			Speed:          100,
			ArriveRadius:   50,
			RotationGain:   2.0,
		},
		Population: PopulationSpec{
			Count:         100,
			Strategy:      "astar",
			SpawnX:        850,
			Columns:       10,
			ColumnSpacing: 15,
			RowSpacing:    30,
			ScoreDivisor:  340,
		},
		Car:  CarSpec{Width: 10, Height: 16},
		Road: RoadSpec{Left: 760, Right: 1080, Length: 4000},
	}
}

// ParseSimSpec decodes YAML over the defaults and validates the result.
func ParseSimSpec(data []byte) (SimSpec, error) {
	spec := DefaultSimSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SimSpec{}, fmt.Errorf("prefabs: unmarshal sim spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return SimSpec{}, err
	}
	return spec, nil
}

func LoadSimSpec(name string) (SimSpec, error) {
	if name == "" {
		name = DefaultSimFile
	}
	data, err := Load(name)
	if err != nil {
		return SimSpec{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := ParseSimSpec(data)
	if err != nil {
		return SimSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

func (s SimSpec) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidSpec, name, v))
		}
	}

	positive("world.fixed_delta", s.World.FixedDelta)
	positive("world.height", s.World.Height)
	positive("grid.width", float64(s.Grid.Width))
	positive("grid.height", float64(s.Grid.Height))
	positive("grid.cell_size", s.Grid.CellSize)
	positive("astar.recalc_period", s.AStar.RecalcPeriod)
	positive("astar.speed", s.AStar.Speed)
	positive("astar.arrive_radius", s.AStar.ArriveRadius)
	positive("population.columns", float64(s.Population.Columns))
	positive("population.score_divisor", s.Population.ScoreDivisor)

	if s.Population.Count < 0 {
		errs = append(errs, fmt.Errorf("%w: population.count must be >= 0, got %d", ErrInvalidSpec, s.Population.Count))
	}
	if s.AStar.ScanRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: astar.scan_radius must be >= 0, got %v", ErrInvalidSpec, s.AStar.ScanRadius))
	}
	if s.Road.Right <= s.Road.Left {
		errs = append(errs, fmt.Errorf("%w: road.right (%v) must be greater than road.left (%v)", ErrInvalidSpec, s.Road.Right, s.Road.Left))
	}
	for i, o := range s.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Errorf("%w: obstacles[%d] has non-positive size %vx%v", ErrInvalidSpec, i, o.Width, o.Height))
		}
	}
	return errors.Join(errs...)
}
