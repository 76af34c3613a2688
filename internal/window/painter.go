package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
)

var (
	skyColor       = color.RGBA{5, 8, 24, 255}
	oceanColor     = color.RGBA{30, 90, 200, 255}
	landColor      = color.RGBA{40, 160, 70, 255}
	bodyColor      = color.RGBA{210, 210, 220, 255}
	noseColor      = color.RGBA{220, 40, 40, 255}
	finColor       = color.RGBA{160, 30, 30, 255}
	overlayColor   = color.RGBA{0, 0, 0, 160}
	buttonColor    = color.RGBA{60, 140, 220, 255}
	textColor      = color.White
	explosionOuter = color.NRGBA{255, 140, 0, 255}
	explosionCore  = color.NRGBA{255, 240, 160, 255}
)

// painter draws snapshots with ebiten vector primitives.
type painter struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func newPainter() *painter {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &painter{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 16),
		is:      make([]uint16, 0, 16),
	}
}

// draw paints the backdrop, missiles and explosions. scale converts
// simulation units to device pixels.
func (p *painter) draw(screen *ebiten.Image, snap game.Snapshot, scale float64) {
	screen.Fill(skyColor)
	s := float32(scale)

	for _, star := range snap.Stars {
		x, y := star.Position(snap.Screen)
		a := uint8(star.Brightness * 255)
		vector.DrawFilledCircle(screen, float32(x)*s, float32(y)*s, float32(star.Size)*s, color.NRGBA{255, 255, 255, a}, true)
	}

	planet := snap.Planet
	vector.DrawFilledCircle(screen, float32(planet.CenterX)*s, float32(planet.CenterY)*s, float32(planet.Radius)*s, oceanColor, true)
	for _, continent := range planet.Continents {
		p.fillPolygon(screen, continent, landColor, scale)
	}

	for i := range snap.Missiles {
		sil := snap.Missiles[i].Silhouette()
		p.fillPolygon(screen, sil.Body[:], bodyColor, scale)
		p.fillPolygon(screen, sil.Nose[:], noseColor, scale)
		p.fillPolygon(screen, sil.LeftFin[:], finColor, scale)
		p.fillPolygon(screen, sil.RightFin[:], finColor, scale)
	}

	for _, e := range snap.Explosions {
		outer, core := explosionOuter, explosionCore
		outer.A = uint8(e.Alpha * 255)
		core.A = uint8(e.Alpha * 255)
		vector.DrawFilledCircle(screen, float32(e.X)*s, float32(e.Y)*s, float32(e.Radius)*s, outer, true)
		vector.DrawFilledCircle(screen, float32(e.X)*s, float32(e.Y)*s, float32(e.CoreRadius())*s, core, true)
	}
}

// hud draws score and health, or the game over overlay.
func (p *painter) hud(screen *ebiten.Image, face font.Face, snap game.Snapshot, score, health int, scale float64) {
	s := float32(scale)
	width, height := snap.Screen.Width, snap.Screen.Height

	if snap.Phase != game.GameOver {
		text.Draw(screen, fmt.Sprintf("Score: %d", score), face, int(10*scale), int(20*scale), textColor)
		healthText := fmt.Sprintf("Health: %d", health)
		text.Draw(screen, healthText, face, int(float64(width-10)*scale)-textWidth(face, healthText), int(20*scale), textColor)
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(width)*s, float32(height)*s, overlayColor, false)

	cx, cy := float64(width)/2*scale, float64(height)/2*scale
	title := "GAME OVER"
	text.Draw(screen, title, face, int(cx)-textWidth(face, title)/2, int(cy-40*scale), textColor)
	final := fmt.Sprintf("Final score: %d", score)
	text.Draw(screen, final, face, int(cx)-textWidth(face, final)/2, int(cy-10*scale), textColor)

	btn := restartButton(width, height).scaled(scale)
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), buttonColor, true)
	label := "RESTART"
	text.Draw(screen, label, face, btn.Min.X+(btn.Dx()-textWidth(face, label))/2, btn.Min.Y+btn.Dy()/2+4, textColor)
}

// fillPolygon fills a closed polygon given in simulation coordinates.
func (p *painter) fillPolygon(screen *ebiten.Image, pts []draw.Point, clr color.Color, scale float64) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X*scale), float32(pts[0].Y*scale))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X*scale), float32(pt.Y*scale))
	}
	path.Close()

	r, g, b, a := clr.RGBA()
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	for i := range p.vs {
		p.vs[i].ColorR = float32(r) / 0xffff
		p.vs[i].ColorG = float32(g) / 0xffff
		p.vs[i].ColorB = float32(b) / 0xffff
		p.vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(p.vs, p.is, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func textWidth(face font.Face, s string) int {
	b := text.BoundString(face, s)
	return b.Max.X - b.Min.X
}
