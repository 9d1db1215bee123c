package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.Panel)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.Border)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.Header)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Label)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.Value)
	return y + r.Theme.LineHeight
}

// fillRatio returns current/target clamped to [0, 1]; 0 when target <= 0.
func fillRatio(current, target float64) float64 {
	if target <= 0 || current <= 0 {
		return 0
	}
	return min(current/target, 1)
}

// barColor picks the fill for an intake ratio.
func (r *Renderer) barColor(ratio float64) rl.Color {
	switch {
	case ratio < 0.3:
		return r.Theme.Starving
	case ratio < 0.6:
		return r.Theme.Short
	}
	return r.Theme.Fed
}

// DrawCalorieBar draws intake against a daily requirement.
func (r *Renderer) DrawCalorieBar(x, y int32, label string, current, requirement float64, width int32) int32 {
	ratio := fillRatio(current, requirement)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 80

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Label)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarTrack)
	fillWidth := int32(float64(barWidth) * ratio)
	rl.DrawRectangle(barX, y+2, fillWidth, r.Theme.BarHeight, r.barColor(ratio))
	rl.DrawText(fmt.Sprintf("%.0f/%.0f", current, requirement), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.Value)

	return y + r.Theme.LineHeight + 2
}
