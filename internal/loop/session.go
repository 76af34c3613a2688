package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/missiles/internal/audio"
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/input"
	"github.com/tomz197/missiles/internal/object"
)

// SessionOptions configures a terminal session.
type SessionOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Audio        game.Audio // Nil rings the terminal bell
	HitTest      game.HitTester
	Rand         *rand.Rand
	Logger       *log.Logger
	Username     string
	Inactivity   bool // Warn and then disconnect idle players
}

// Session runs one game on one terminal: it reads keys and clicks, drives
// the simulation at the display rate and renders every frame.
type Session struct {
	game        *game.Game
	driver      *Driver
	screen      *screen
	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter
	writer      io.Writer
	inputStream *input.Stream
	input       input.Input

	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	inactivity bool
	lastInput  time.Time
	isInactive bool

	running bool
	err     error
}

// NewSession creates a session reading from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts SessionOptions) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	simWidth, simHeight := simSize(renderWidth, renderHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(simWidth), float64(simHeight))
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	scr := newScreen(canvas, chunkWriter)

	sink := opts.Audio
	if sink == nil {
		sink = audio.NewBell(chunkWriter)
	}

	g := game.New(game.Options{
		Screen:   object.NewScreen(simWidth, simHeight),
		HitTest:  opts.HitTest,
		Renderer: scr,
		Audio:    sink,
		HUD:      scr,
		Rand:     opts.Rand,
		Logger:   logger,
	})

	return &Session{
		game:         g,
		driver:       NewDriver(g),
		screen:       scr,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		inactivity:   opts.Inactivity,
		lastInput:    time.Now(),
		running:      true,
	}
}

// Game returns the session's simulation.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run plays until the player quits, the input closes, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	draw.EnableMouse(s.writer)
	defer draw.ShowCursor(s.writer)
	defer draw.DisableMouse(s.writer)
	draw.ClearScreen(s.writer)

	s.logger.Info("session started")
	err := NewTicker(config.ClientTargetFPS).Run(ctx, s.frame)
	s.logger.Info("session ended", "score", s.game.Score(), "phase", s.game.Phase())

	draw.ClearScreen(s.writer)
	if s.err != nil {
		return s.err
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// frame runs input, simulation and drawing for one display refresh.
func (s *Session) frame(ts time.Duration) bool {
	s.processInput()
	if !s.running {
		return false
	}

	s.updateScreen()
	s.driver.Frame(ts)

	if err := s.drawFrame(); err != nil {
		s.err = fmt.Errorf("draw frame: %w", err)
		return false
	}
	return true
}

// processInput applies keys and clicks between simulation steps.
func (s *Session) processInput() {
	s.input = input.ReadInput(s.inputStream)

	if len(s.input.Pressed) > 0 || len(s.input.Clicks) > 0 {
		s.lastInput = time.Now()
		s.isInactive = false
	} else if s.inactivity {
		idle := time.Since(s.lastInput)
		if idle > config.InactivityDisconnectUser*time.Second {
			s.logger.Info("disconnecting inactive session")
			s.running = false
		} else if idle > config.InactivityWarnUser*time.Second {
			s.isInactive = true
		}
	}

	if s.input.Quit {
		s.running = false
		return
	}

	over := s.game.Over()
	if s.input.Restart || (over && (s.input.Enter || s.input.Space)) {
		s.restart()
		return
	}

	for _, click := range s.input.Clicks {
		if over {
			if s.screen.buttonHit(click.Col, click.Row) {
				s.restart()
				return
			}
			continue
		}
		x, y, ok := s.canvas.TerminalToLogical(click.Col, click.Row)
		if !ok {
			continue
		}
		s.game.HandlePointer(x, y)
		if s.game.Over() {
			return
		}
	}
}

// restart resets the game and re-arms the driver.
func (s *Session) restart() {
	s.driver.Restart()
	s.logger.Debug("game restarted")
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == s.canvas.TerminalWidth() && renderHeight == s.canvas.TerminalHeight() &&
		offsetCol == s.canvas.OffsetCol() && offsetRow == s.canvas.OffsetRow() {
		return
	}

	simWidth, simHeight := simSize(renderWidth, renderHeight)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetLogicalSize(float64(simWidth), float64(simHeight))
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
	s.game.Resize(simWidth, simHeight)
}

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	s.chunkWriter.WriteString("\033[H\033[2J")
	s.game.Render()
	if s.isInactive {
		s.screen.drawInactivity(config.InactivityDisconnectUser*time.Second - time.Since(s.lastInput))
	}
	return s.chunkWriter.Flush()
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 0), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 0), config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// simSize returns the simulation viewport for a render area: every cell
// holds two half-block sub-pixels, each covering TerminalPixelScale
// simulation pixels per side.
func simSize(cols, rows int) (width, height int) {
	return cols * config.TerminalPixelScale, rows * 2 * config.TerminalPixelScale
}
