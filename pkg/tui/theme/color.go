package theme

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	calm   = colorful.Color{R: 0.13, G: 0.77, B: 0.37}
	strong = colorful.Color{R: 0.98, G: 0.75, B: 0.14}
	severe = colorful.Color{R: 0.94, G: 0.27, B: 0.27}

	// Blue and Purple bound the landing title gradient.
	Blue   = colorful.Color{R: 0.145, G: 0.388, B: 0.922}
	Purple = colorful.Color{R: 0.486, G: 0.227, B: 0.929}
)

// MagnitudeColor blends green through amber to red as magnitude climbs
// towards 8.
func MagnitudeColor(mag float64) colorful.Color {
	t := math.Max(0, math.Min(1, mag/8))
	if t < 0.5 {
		return calm.BlendLab(strong, t*2).Clamped()
	}
	return strong.BlendLab(severe, (t-0.5)*2).Clamped()
}

// MagnitudeBadge renders a magnitude as a colored badge.
func MagnitudeBadge(label string, mag float64) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0B1220")).
		Background(MagnitudeColor(mag)).
		Bold(true).
		Render(" " + label + " ")
}

// Gradient colors each rune of s along a blend from one color to another.
func Gradient(s string, from, to colorful.Color) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLuv(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r)))
	}
	return b.String()
}
