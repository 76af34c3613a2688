// Package window runs the game in a desktop window with mouse and touch
// input.
package window

import (
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/loop"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/physics"
)

// Options configures the window app.
type Options struct {
	Audio   game.Audio
	HitTest game.HitTester
	Rand    *rand.Rand
	Logger  *log.Logger
}

// App implements ebiten.Game. It is also the game's Renderer and HUD sink:
// Update hands it a snapshot which Draw later paints.
type App struct {
	game   *game.Game
	driver *loop.Driver
	start  time.Time
	logger *log.Logger

	// Simulation viewport in window units, and the device pixels per unit.
	width, height int
	scale         float64

	snap          game.Snapshot
	score, health int

	painter *painter
	face    font.Face
	touches []ebiten.TouchID
}

// New creates the app with a viewport of the default window size.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		start:  time.Now(),
		logger: logger,
		width:  config.WindowWidth,
		height: config.WindowHeight,
		scale:  1,
		face:   basicfont.Face7x13,
	}
	a.painter = newPainter()
	a.game = game.New(game.Options{
		Screen:   object.NewScreen(a.width, a.height),
		HitTest:  opts.HitTest,
		Renderer: a,
		Audio:    opts.Audio,
		HUD:      a,
		Rand:     opts.Rand,
		Logger:   logger,
	})
	a.driver = loop.NewDriver(a.game)
	return a
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Missile Defense")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.ClientTargetFPS)
	return ebiten.RunGame(New(opts))
}

// Render implements game.Renderer.
func (a *App) Render(snap game.Snapshot) {
	a.snap = snap
}

// UpdateHUD implements game.HUD.
func (a *App) UpdateHUD(score, health int) {
	a.score = score
	a.health = health
}

// Update implements ebiten.Game: input first, then one simulation step.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	over := a.game.Over()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(over && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace))) {
		a.restart()
	} else if px, py, ok := a.pointer(); ok {
		a.handlePointer(px, py)
	}

	a.driver.Frame(time.Since(a.start))
	a.game.Render()
	return nil
}

// pointer returns this tick's press in device pixels: the first new touch,
// or else a left click.
func (a *App) pointer() (x, y int, ok bool) {
	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		x, y = ebiten.TouchPosition(a.touches[0])
		return x, y, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

// handlePointer routes a press in device pixels to the restart button or
// the simulation.
func (a *App) handlePointer(px, py int) {
	x, y := toSim(px, py, a.scale)
	if a.game.Over() {
		if restartButton(a.width, a.height).Contains(x, y) {
			a.restart()
		}
		return
	}
	a.game.HandlePointer(x, y)
}

func (a *App) restart() {
	a.driver.Restart()
	a.logger.Debug("game restarted")
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.painter.draw(screen, a.snap, a.scale)
	a.painter.hud(screen, a.face, a.snap, a.score, a.health, a.scale)
}

// Layout implements ebiten.Game. The simulation runs in window units while
// the screen is rendered at full device resolution.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if scale <= 0 {
		scale = 1
	}
	a.scale = scale

	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(a.width, a.height)
		a.logger.Debug("window resized", "width", a.width, "height", a.height, "scale", scale)
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// toSim converts device pixels to simulation coordinates.
func toSim(px, py int, scale float64) (x, y float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(px) / scale, float64(py) / scale
}

// rect is an axis-aligned box in simulation coordinates.
type rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies in the box, edges included.
func (r rect) Contains(x, y float64) bool {
	return physics.PointInRect(x, y, r.X, r.Y, r.W, r.H)
}

// scaled returns the box in device pixels.
func (r rect) scaled(scale float64) image.Rectangle {
	return image.Rect(int(r.X*scale), int(r.Y*scale), int((r.X+r.W)*scale), int((r.Y+r.H)*scale))
}

// restartButton is the game over overlay's button for a viewport.
func restartButton(width, height int) rect {
	const w, h = 140, 36
	return rect{
		X: float64(width)/2 - w/2,
		Y: float64(height)/2 + 20,
		W: w,
		H: h,
	}
}
