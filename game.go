package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/ecs/render"
	"github.com/milk9111/steering/prefabs"
	"github.com/milk9111/steering/sim"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	minZoom       = 0.25
	maxZoom       = 4.0
	statusFrames  = 180
	panSpeed      = 8.0
	zoomWheelStep = 0.1
)

type GameOptions struct {
	Config   string
	Strategy string
	Follow   bool
	Watch    bool
}

type Game struct {
	opts GameOptions

	sim      *sim.Simulation
	corridor *render.CorridorSystem

	hud      *hud
	pauseUI  *ebitenui.UI
	watcher  *prefabs.Watcher
	clipOK   bool
	status   string
	statusIn int
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{opts: opts, corridor: render.NewCorridorSystem()}

	settings := component.Settings{CameraFollow: opts.Follow, ShowPaths: true}
	if err := g.load(settings); err != nil {
		return nil, err
	}

	g.hud = newHUD()
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipOK = true
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// load builds a fresh simulation from the configured spec, carrying the
// front-end settings over.
func (g *Game) load(settings component.Settings) error {
	spec, err := prefabs.LoadSimSpec(g.opts.Config)
	if err != nil {
		return err
	}
	if g.opts.Strategy != "" {
		spec.Population.Strategy = g.opts.Strategy
	}

	s, err := sim.New(spec, sim.Options{Settings: settings})
	if err != nil {
		return err
	}
	s.Scheduler().Add(g.corridor)

	if g.sim != nil {
		old := g.sim.Camera()
		cam := s.Camera()
		cam.X, cam.Y, cam.Zoom = old.X, old.Y, old.Zoom
	}
	g.sim = s
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.reloadChanged()
	g.handleInput()

	settings := g.sim.Settings()
	if settings.Paused {
		g.pauseUI.Update()
	} else {
		g.sim.Step()
	}

	g.hud.refresh(g.sim, g.status)
	g.hud.ui.Update()

	if g.statusIn > 0 {
		g.statusIn--
		if g.statusIn == 0 {
			g.status = ""
		}
	}
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors():
		log.Printf("prefabs: watch: %v", err)
	default:
	}

	var changed []prefabs.Change
	for _, c := range g.watcher.Drain() {
		if c.Affects(g.opts.Config, g.sim.Spec()) {
			changed = append(changed, c)
		}
	}
	if len(changed) == 0 {
		return
	}
	if err := g.load(*g.sim.Settings()); err != nil {
		log.Printf("prefabs: reload after %v: %v", changed, err)
		g.setStatus("reload failed: " + err.Error())
		return
	}
	log.Printf("prefabs: reloaded after %v", changed)
	g.setStatus("reloaded")
}

func (g *Game) handleInput() {
	settings := g.sim.Settings()
	cam := g.sim.Camera()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.sim.Restart(); err != nil {
			log.Printf("restart: %v", err)
		}
		g.setStatus("restarted")
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		settings.Paused = !settings.Paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		settings.CameraFollow = !settings.CameraFollow
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		settings.ShowGrid = !settings.ShowGrid
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		settings.ShowPaths = !settings.ShowPaths
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyReport()
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cam.X -= panSpeed / cam.Zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cam.X += panSpeed / cam.Zoom
	}
	if !settings.CameraFollow {
		if ebiten.IsKeyPressed(ebiten.KeyUp) {
			cam.Y += panSpeed / cam.Zoom
		}
		if ebiten.IsKeyPressed(ebiten.KeyDown) {
			cam.Y -= panSpeed / cam.Zoom
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		cam.Zoom = min(max(cam.Zoom+dy*zoomWheelStep, minZoom), maxZoom)
	}
}

func (g *Game) copyReport() {
	if !g.clipOK {
		g.setStatus("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.sim.Report()))
	g.setStatus("report copied")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusIn = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	cam := g.sim.Camera()
	render.Draw(g.sim.Scheduler(), g.sim.World(), screen, cam.X, cam.Y, cam.Zoom)

	g.hud.ui.Draw(screen)
	if g.sim.Settings().Paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func fmtStats(s *sim.Simulation) []string {
	st := s.Stats()
	return []string{
		fmt.Sprintf("Tick: %d  FPS: %.0f", s.Tick(), ebiten.ActualFPS()),
		fmt.Sprintf("Cars: %d", st.NumCarsAlive),
		fmt.Sprintf("Score: %.2f", st.MaxCurrentScore),
		fmt.Sprintf("Distance: %.0f", st.MaxDistanceTravelled),
		fmt.Sprintf("Replans: %d  Fallbacks: %d", st.Recalculations, st.FallbackPaths),
	}
}
