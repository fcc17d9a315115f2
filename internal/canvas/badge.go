package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	badgeBackground = color.RGBA{R: 27, G: 38, B: 54, A: 255}
	badgeLabel      = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	badgeValue      = color.RGBA{R: 226, G: 232, B: 240, A: 255}
)

const (
	badgePadding = 10
	badgeHeight  = 44
	badgeRadius  = 8
)

// ScoreBadge draws a small rounded card with a label line and a value line.
func ScoreBadge(label, value string) *image.RGBA {
	face := basicfont.Face7x13
	textWidth := max(font.MeasureString(face, label), font.MeasureString(face, value)).Ceil()
	w := textWidth + 2*badgePadding

	img := image.NewRGBA(image.Rect(0, 0, w, badgeHeight))
	Clear(img, w, badgeHeight)
	FillRoundRect(img, 0, 0, float32(w), badgeHeight, badgeRadius, badgeBackground)

	drawText(img, face, label, badgeLabel, badgePadding, 17)
	drawText(img, face, value, badgeValue, badgePadding, 35)
	return img
}

func drawText(dst *image.RGBA, face font.Face, s string, c color.Color, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
