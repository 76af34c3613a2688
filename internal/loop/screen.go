package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/physics"
)

const (
	oceanDensity = 0.2 // Dither density for the planet disc
	rimSegments  = 48
)

// restartLabel is the clickable button on the game over overlay.
const restartLabel = "[ RESTART ]"

// screen renders snapshots to a terminal canvas and keeps the HUD values.
// It implements game.Renderer and game.HUD.
type screen struct {
	canvas *draw.Canvas
	cw     *draw.ChunkWriter

	score  int
	health int

	// Restart button bounds in 1-based canvas cells, valid while shown.
	button     [4]int // col, row, width, height
	showButton bool
}

func newScreen(canvas *draw.Canvas, cw *draw.ChunkWriter) *screen {
	return &screen{canvas: canvas, cw: cw}
}

// UpdateHUD implements game.HUD.
func (s *screen) UpdateHUD(score, health int) {
	s.score = score
	s.health = health
}

// Render implements game.Renderer. Shapes go to the canvas, which is then
// written to the chunk writer together with the text overlay.
func (s *screen) Render(snap game.Snapshot) {
	c := s.canvas
	c.Clear()

	for _, star := range snap.Stars {
		if star.Brightness < 0.75 {
			continue
		}
		c.SetFloat(star.Position(snap.Screen))
	}

	planet := snap.Planet
	c.DitherCircle(planet.CenterX, planet.CenterY, planet.Radius, oceanDensity)
	rim := planet.Outline(c.BorrowPoints(rimSegments + 1)[:0], rimSegments)
	for i := 1; i < len(rim); i++ {
		c.DrawLine(rim[i-1], rim[i])
	}
	for _, continent := range planet.Continents {
		c.DrawPolygon(continent, true)
	}

	for i := range snap.Missiles {
		sil := snap.Missiles[i].Silhouette()
		for _, poly := range sil.Polygons() {
			c.DrawPolygon(poly, true)
		}
	}

	for _, e := range snap.Explosions {
		c.DitherCircle(e.X, e.Y, e.Radius, e.Alpha)
		c.FillCircle(e.X, e.Y, e.CoreRadius())
	}

	c.Render(s.cw)
	c.RenderBorder(s.cw)

	s.showButton = false
	if snap.Phase == game.GameOver {
		s.drawGameOver(snap.Score)
	} else {
		s.drawHUD()
	}
}

// drawHUD draws score (top left) and health (top right).
func (s *screen) drawHUD() {
	termWidth := s.canvas.TerminalWidth()

	scoreText := fmt.Sprintf("Score: %d", s.score)
	s.cw.WriteAt(2, 1, scoreText)

	healthText := "Health: " + strings.Repeat("♥", max(s.health, 0)) +
		strings.Repeat("·", max(config.InitialHealth-s.health, 0))
	s.cw.WriteAt(termWidth-len([]rune(healthText))-1, 1, healthText)
}

// drawGameOver draws the game over overlay with the restart button.
func (s *screen) drawGameOver(score int) {
	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2

	title := "GAME OVER"
	s.cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	scoreText := fmt.Sprintf("Final score: %d", score)
	s.cw.WriteAt(centerX-len(scoreText)/2, centerY-1, scoreText)

	col := centerX - len(restartLabel)/2
	row := centerY + 1
	s.cw.WriteAt(col, row, restartLabel)
	s.button = [4]int{max(col, 1), max(row, 1), len(restartLabel), 1}
	s.showButton = true

	hint := "Click RESTART or press R / SPACE / ENTER, Q to quit"
	s.cw.WriteAt(centerX-len(hint)/2, centerY+3, hint)
}

// drawInactivity warns an idle session before it is disconnected.
func (s *screen) drawInactivity(remaining time.Duration) {
	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2

	title := "INACTIVITY WARNING"
	s.cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf("You will be disconnected in %d seconds.", int(remaining.Seconds()))
	s.cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	s.cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// buttonHit reports whether the 1-based absolute terminal cell lies on the
// restart button.
func (s *screen) buttonHit(col, row int) bool {
	if !s.showButton {
		return false
	}
	col -= s.canvas.OffsetCol()
	row -= s.canvas.OffsetRow()
	b := s.button
	return physics.PointInRect(float64(col), float64(row),
		float64(b[0]), float64(b[1]), float64(b[2]-1), float64(b[3]-1))
}
