package sim

import (
	"fmt"
	"strings"

	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/ecs/entity"
	"github.com/milk9111/steering/ecs/system"
	"github.com/milk9111/steering/prefabs"
)

// ErrStrategyUnsupported is returned when the population asks for a
// navigation strategy other than A*.
var ErrStrategyUnsupported = entity.ErrStrategyUnsupported

// Simulation is a headless corridor run: one ECS world stepped at a fixed
// delta by a scheduler.
type Simulation struct {
	spec      prefabs.SimSpec
	obstacles []prefabs.ObstacleSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	camera    *system.CameraSystem
	log       *Log
}

// Options toggle front-end behavior.
type Options struct {
	Settings   component.Settings
	VerboseLog bool
}

func New(spec prefabs.SimSpec, opts Options) (*Simulation, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := component.ParseStrategy(spec.Population.Strategy); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	obstacles, err := prefabs.ResolveObstacles(spec)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		spec:      spec,
		obstacles: obstacles,
		world:     ecs.NewWorld(),
		physics:   system.NewPhysicsSystem(),
		camera:    system.NewCameraSystem((spec.Road.Left+spec.Road.Right)/2, spec.World.Height/2),
		log:       NewLog(opts.VerboseLog),
	}

	if _, err := entity.NewClock(s.world, spec.World.FixedDelta); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewStats(s.world); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewSettings(s.world, opts.Settings); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewRoad(s.world, spec.Road); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := s.populate(s.world); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s.scheduler = ecs.NewScheduler(
		system.NewClockSystem(),
		s.physics,
		system.NewPathfindingSystem(s.physics, system.AStarParams{
			ScanRadius:     spec.AStar.ScanRadius,
			GoalOffset:     spec.AStar.GoalOffset,
			RecalcDistance: spec.AStar.RecalcDistance,
		}),
		system.NewAStarMovementSystem(system.MovementParams{
			Speed:        spec.AStar.Speed,
			ArriveRadius: spec.AStar.ArriveRadius,
			RotationGain: spec.AStar.RotationGain,
		}),
		system.NewAStarStatsSystem(spec.Population.ScoreDivisor),
		s.camera,
		system.NewRestartSystem(s.respawn),
		&eventRecorder{log: s.log},
	)

	return s, nil
}

// populate spawns the obstacles and the car population.
func (s *Simulation) populate(w *ecs.World) error {
	if _, err := entity.NewObstacles(w, s.obstacles); err != nil {
		return err
	}
	_, err := entity.SpawnPopulation(w, s.spec)
	return err
}

// respawn puts obstacles back where the scenario placed them and spawns a
// fresh population.
func (s *Simulation) respawn(w *ecs.World) error {
	for _, e := range ecs.Query(w, component.ObstacleTagComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	s.log.Add(s.Tick(), "--", "sim", "restart", "", 0)
	return s.populate(w)
}

// Step runs one scheduler pass unless the simulation is paused.
func (s *Simulation) Step() {
	if settings := s.Settings(); settings != nil && settings.Paused {
		return
	}
	s.scheduler.Update(s.world)
}

func (s *Simulation) Steps(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Restart queues a restart; it happens at the end of the next Step.
func (s *Simulation) Restart() error {
	_, err := entity.RequestRestart(s.world)
	return err
}

func (s *Simulation) Stats() component.SimStats {
	stats, ok := ecs.Singleton(s.world, component.SimStatsComponent.Kind())
	if !ok {
		return component.SimStats{}
	}
	return *stats
}

func (s *Simulation) Settings() *component.Settings {
	settings, _ := ecs.Singleton(s.world, component.SettingsComponent.Kind())
	return settings
}

func (s *Simulation) Tick() int {
	clock, ok := ecs.Singleton(s.world, component.SimClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Tick
}

func (s *Simulation) Elapsed() float64 {
	clock, ok := ecs.Singleton(s.world, component.SimClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Elapsed
}

func (s *Simulation) World() *ecs.World            { return s.world }
func (s *Simulation) Scheduler() *ecs.Scheduler    { return s.scheduler }
func (s *Simulation) Camera() *system.CameraSystem { return s.camera }
func (s *Simulation) Log() *Log                    { return s.log }
func (s *Simulation) Spec() prefabs.SimSpec        { return s.spec }

// Report renders the current stats as plain text.
func (s *Simulation) Report() string {
	stats := s.Stats()
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Corridor A* Report ===\n")
	fmt.Fprintf(&sb, "tick=%d elapsed=%.2fs strategy=%s scenario=%s\n", s.Tick(), s.Elapsed(), s.spec.Population.Strategy, scenarioName(s.spec))
	fmt.Fprintf(&sb, "cars_alive=%d max_score=%.3f max_distance=%.1f\n", stats.NumCarsAlive, stats.MaxCurrentScore, stats.MaxDistanceTravelled)
	fmt.Fprintf(&sb, "recalculations=%d fallback_paths=%d obstacles=%d\n", stats.Recalculations, stats.FallbackPaths, len(s.obstacles))
	return sb.String()
}

func scenarioName(spec prefabs.SimSpec) string {
	if spec.Scenario.Script == "" {
		return "none"
	}
	return spec.Scenario.Script
}
