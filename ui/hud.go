package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeciesLine is one species row of the HUD.
type SpeciesLine struct {
	Name          string
	Count         int
	Starving      int
	MeanToday     float64 // mean calories eaten so far today
	Requirement   float64
	YesterdayMean float64
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Year      int
	Day       int
	Season    int
	Minute    int
	Carcasses int
	Species   []SpeciesLine
	Speed     int
	FPS       int32
	MinPerSec float64
	Paused    bool
	Hover     string // description of the cell under the mouse
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD(width int32) *HUD {
	return &HUD{renderer: NewRenderer(), width: width}
}

// Draw renders the HUD panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	lines := int32(5 + 3*len(data.Species))
	r.DrawPanel(pad, pad, h.width, lines*r.Theme.LineHeight+2*pad)

	x, y := 2*pad, 2*pad
	rl.DrawText(data.Title, x, y, 18, rl.White)
	y += 24

	y = r.DrawLabelValue(x, y, "Date", fmt.Sprintf("year %d day %d season %d", data.Year, data.Day, data.Season))
	y = r.DrawLabelValue(x, y, "Minute", fmt.Sprintf("%d", data.Minute))
	y = r.DrawLabelValue(x, y, "Carcasses", fmt.Sprintf("%d", data.Carcasses))

	for _, s := range data.Species {
		y = r.DrawSectionHeader(x, y, fmt.Sprintf("%s (%d, %d starving)", s.Name, s.Count, s.Starving))
		y = r.DrawCalorieBar(x, y, "Today", s.MeanToday, s.Requirement, h.width-2*pad)
		y = r.DrawLabelValue(x, y, "Yesterday", fmt.Sprintf("%.0f cal", s.YesterdayMean))
	}

	status := fmt.Sprintf("Speed %dx | %.0f min/s | FPS %d", data.Speed, data.MinPerSec, data.FPS)
	if data.Paused {
		status = "PAUSED | " + status
	}
	rl.DrawText(status, x, y+4, r.Theme.FontSize, r.Theme.Status)

	if data.Hover != "" {
		rl.DrawText(data.Hover, x, y+22, r.Theme.FontSize, r.Theme.Hover)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// SpeedControls is the pause button and speed slider.
type SpeedControls struct {
	X, Y     float32
	MaxSpeed int
}

// Draw renders the controls and returns the updated pause flag and speed.
func (c SpeedControls) Draw(paused bool, speed int) (bool, int) {
	label := "Pause"
	if paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: c.X, Y: c.Y, Width: 80, Height: 24}, label) {
		paused = !paused
	}

	v := gui.SliderBar(
		rl.Rectangle{X: c.X + 130, Y: c.Y + 2, Width: 160, Height: 20},
		"speed", fmt.Sprintf("%dx", speed),
		float32(speed), 1, float32(c.MaxSpeed),
	)
	return paused, clampSpeed(int(v+0.5), c.MaxSpeed)
}

// clampSpeed keeps a speed multiplier in [1, maxSpeed].
func clampSpeed(speed, maxSpeed int) int {
	return max(1, min(speed, maxSpeed))
}
