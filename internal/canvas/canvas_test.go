package canvas

import (
	"image"
	"image/color"
	"testing"
)

type recordedPath struct {
	moves, lines, cubes, closes int
	points                      [][2]float32
}

func (p *recordedPath) MoveTo(x, y float32) {
	p.moves++
	p.points = append(p.points, [2]float32{x, y})
}

func (p *recordedPath) LineTo(x, y float32) {
	p.lines++
	p.points = append(p.points, [2]float32{x, y})
}

func (p *recordedPath) CubeTo(bx, by, cx, cy, dx, dy float32) {
	p.cubes++
	p.points = append(p.points, [2]float32{bx, by}, [2]float32{cx, cy}, [2]float32{dx, dy})
}

func (p *recordedPath) ClosePath() { p.closes++ }

func TestRoundRectTracesClosedPath(t *testing.T) {
	p := &recordedPath{}
	RoundRect(p, 10, 20, 100, 50, 8)

	if p.moves != 1 || p.lines != 4 || p.cubes != 4 || p.closes != 1 {
		t.Fatalf("Unexpected command counts: %+v", p)
	}
	if p.points[0] != [2]float32{18, 20} {
		t.Errorf("Expected path to start at (18, 20), got %v", p.points[0])
	}
	last := p.points[len(p.points)-1]
	if last != p.points[0] {
		t.Errorf("Expected path to end where it started, got %v", last)
	}
	for _, pt := range p.points {
		if pt[0] < 10 || pt[0] > 110 || pt[1] < 20 || pt[1] > 70 {
			t.Errorf("Point %v outside the rectangle", pt)
		}
	}
}

func TestRoundRectClampsRadius(t *testing.T) {
	p := &recordedPath{}
	RoundRect(p, 0, 0, 20, 10, 50)
	if p.points[0] != [2]float32{5, 0} {
		t.Errorf("Expected radius clamped to 5, path starts at %v", p.points[0])
	}
}

func TestFillRoundRectLeavesCornersEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	red := color.RGBA{R: 255, A: 255}
	FillRoundRect(img, 0, 0, 40, 40, 12, red)

	if got := img.RGBAAt(20, 20); got != red {
		t.Errorf("Expected centre to be filled, got %v", got)
	}
	if got := img.RGBAAt(20, 0); got.A == 0 {
		t.Errorf("Expected top edge midpoint to be filled, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("Expected rounded corner to stay empty, got %v", got)
	}
}

func TestClear(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillRoundRect(img, 0, 0, 10, 10, 0, color.White)

	Clear(img, 5, 10)
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("Expected cleared pixel, got %v", got)
	}
	if got := img.RGBAAt(7, 2); got.A == 0 {
		t.Errorf("Expected pixel outside the cleared area to remain, got %v", got)
	}
}

func TestScoreBadge(t *testing.T) {
	img := ScoreBadge("HIGH SCORE", "1,234,567")
	b := img.Bounds()
	if b.Dy() != badgeHeight {
		t.Errorf("Expected height %d, got %d", badgeHeight, b.Dy())
	}
	if b.Dx() != 10*7+2*badgePadding {
		t.Errorf("Expected width fitted to the label, got %d", b.Dx())
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("Expected transparent corner, got %v", got)
	}
}
