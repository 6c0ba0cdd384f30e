// Package game runs the pendulum clock in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/pendulum-clock/internal/clock"
	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/draw"
	"github.com/iburimskiy/pendulum-clock/internal/logging"
)

// TickPlayer is the audio side the window needs.
type TickPlayer interface {
	PlayTick()
	Muted() bool
	ToggleMute() bool
	Level() float64
}

// Game implements ebiten.Game.
type Game struct {
	cfg        config.Config
	background color.Color
	wall       clockwork.Clock
	log        *logging.Logger

	clock  *clock.Clock
	player TickPlayer
	canvas *draw.EbitenCanvas

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// NewGame builds the clock and wires its beats to player.
func NewGame(cfg config.Config, player TickPlayer, log *logging.Logger) (*Game, error) {
	canvas, err := draw.NewEbitenCanvas()
	if err != nil {
		return nil, err
	}
	wall := clockwork.NewRealClock()
	return &Game{
		cfg:        cfg,
		background: cfg.BackgroundColor(),
		wall:       wall,
		log:        log,
		clock:      clock.New(clock.WithClock(wall), clock.OnBeat(player.PlayTick)),
		player:     player,
		canvas:     canvas,
		prevKey:    map[ebiten.Key]bool{},
	}, nil
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(tps(g.cfg.FrameInterval))

	g.log.Info("clock started", "tps", ebiten.TPS(), "muted", g.player.Muted())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		muted := g.player.ToggleMute()
		g.log.Info("tick sound toggled", "muted", muted)
	}

	g.clock.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.canvas.Begin(screen)
	render(g.canvas, g.clock, g.wall.Now(), g.cfg.ShowReadout, g.player.Level())

	if g.player.Muted() {
		ebitenutil.DebugPrintAt(screen, "Muted - M or click to unmute, Esc/Q to quit", 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// render paints one frame: the mechanism, then the readout and its tick
// level dot over it.
func render(c draw.Canvas, clk *clock.Clock, now time.Time, showReadout bool, level float64) {
	clk.Draw(c)
	if showReadout {
		drawReadout(c, now, config.WindowWidth)
		drawLevel(c, level, config.WindowWidth)
	}
}

// WriteSnapshot renders the clock as it stands at the current time into an
// SVG document on w, without opening a window.
func WriteSnapshot(w io.Writer, cfg config.Config, clk clockwork.Clock) error {
	c, err := draw.NewSVGCanvas(w, config.WindowWidth, config.WindowHeight, cfg.Title, cfg.BackgroundColor())
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	pc := clock.New(clock.WithClock(clk))
	pc.Update()
	render(c, pc, clk.Now(), cfg.ShowReadout, 0)
	c.End()
	return nil
}

func tps(interval time.Duration) int {
	if interval <= 0 {
		return config.TicksPerSecond
	}
	n := int(time.Second / interval)
	if n < 1 {
		return 1
	}
	return n
}
