package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/perspective-grid/internal/config"
	"github.com/iburimskiy/perspective-grid/internal/render"
)

// Game adapts the Driver to ebiten's Update/Draw/Layout loop.
type Game struct {
	cfg        config.Config
	driver     *Driver
	screen     *render.Screen
	audio      *soundtrack
	updates    <-chan config.Config
	reloadErrs <-chan error

	paused  bool
	drawErr error
	lastErr error
}

func NewGame(cfg config.Config) *Game {
	return &Game{
		cfg:    cfg,
		driver: NewDriver(cfg),
		audio:  newSoundtrack(cfg.Audio),
	}
}

// WatchConfig applies configs received on updates at the start of each tick.
// Errors from errs are shown in the HUD; the running config is kept.
func (g *Game) WatchConfig(updates <-chan config.Config, errs <-chan error) {
	g.updates = updates
	g.reloadErrs = errs
}

// LoadSoundtrack starts playing the audio file at path.
func (g *Game) LoadSoundtrack(path string) error {
	return g.audio.Load(path)
}

func (g *Game) Close() {
	g.audio.Close()
}

func (g *Game) Update() error {
	// A frame that failed to draw is fatal to the loop.
	if g.drawErr != nil {
		return g.drawErr
	}

	g.applyConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.audio.Open(); err != nil {
			log.Printf("soundtrack: %v", err)
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.driver.SetPulse(g.audio.Pulse())
	if !g.paused {
		g.driver.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.drawErr != nil {
		return
	}
	if g.screen == nil {
		g.screen = render.NewScreen(screen)
	} else {
		g.screen.Reset(screen)
	}

	if err := g.driver.Draw(g.screen); err != nil {
		g.drawErr = err
		return
	}

	if g.cfg.HUD {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Window.Resizable && outsideWidth > 0 && outsideHeight > 0 {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.audio.SetPaused(g.paused)
}

func (g *Game) applyConfig() {
	if g.reloadErrs != nil {
		select {
		case err, ok := <-g.reloadErrs:
			if !ok {
				g.reloadErrs = nil
			} else {
				g.lastErr = err
			}
		default:
		}
	}
	if g.updates == nil {
		return
	}
	select {
	case cfg, ok := <-g.updates:
		if !ok {
			g.updates = nil
			return
		}
		g.cfg = cfg
		g.driver.Configure(cfg)
		g.audio.cfg = cfg.Audio
		g.lastErr = nil
	default:
	}
}

func (g *Game) status() string {
	st := g.driver.State()
	status := fmt.Sprintf("depth %5.1f  x %5.1f  horizon %5.1f  tps %4.1f\n%s",
		st.Depth, st.Position, st.Horizon, ebiten.ActualTPS(), g.audio.Status())
	if g.paused {
		status += "\npaused - Space to resume"
	}
	if g.lastErr != nil {
		status += "\nerror: " + g.lastErr.Error()
	}
	return status
}
