// Package ui draws the viewer's heads-up display and controls.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds HUD colours and layout.
// Intake bars shade from Starving through Short to Fed as a species
// approaches its daily requirement.
type Theme struct {
	Panel, Border rl.Color
	Header        rl.Color
	Label, Value  rl.Color
	Status, Hover rl.Color

	BarTrack             rl.Color
	Starving, Short, Fed rl.Color

	Padding, LineHeight, LabelWidth int32
	BarHeight                       int32
	FontSize, HeaderFontSize        int32
}

// DefaultTheme returns the savanna palette used by the viewer.
func DefaultTheme() Theme {
	return Theme{
		Panel:  rl.Color{R: 28, G: 24, B: 18, A: 235},
		Border: rl.Color{R: 96, G: 82, B: 60, A: 255},
		Header: rl.Color{R: 232, G: 196, B: 120, A: 255},
		Label:  rl.Color{R: 190, G: 180, B: 160, A: 255},
		Value:  rl.RayWhite,
		Status: rl.Gold,
		Hover:  rl.LightGray,

		BarTrack: rl.Color{R: 50, G: 44, B: 36, A: 255},
		Starving: rl.Color{R: 196, G: 72, B: 56, A: 255},
		Short:    rl.Color{R: 214, G: 160, B: 64, A: 255},
		Fed:      rl.Color{R: 110, G: 170, B: 80, A: 255},

		Padding:        10,
		LineHeight:     16,
		LabelWidth:     84,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
