package chart

import (
	"html"
	"strings"

	"github.com/seenimoa/radialchart/internal/scale"
	"github.com/seenimoa/radialchart/pkg/models"
)

// TooltipHTML lists every segment value of category row ci, each label in
// its segment color.
func TooltipHTML(m *models.Matrix, ci int, color *scale.Ordinal) string {
	var sb strings.Builder
	for si, s := range m.Segments {
		if si > 0 {
			sb.WriteString("<br>")
		}
		sb.WriteString("<b style='color:")
		sb.WriteString(html.EscapeString(color.Color(s)))
		sb.WriteString("'>")
		sb.WriteString(html.EscapeString(string(s)))
		sb.WriteString(":</b>")
		sb.WriteString(html.EscapeString(m.Display(ci, si)))
	}
	return sb.String()
}

// TooltipState is what the single tooltip element shows.
type TooltipState struct {
	HTML    string  `json:"html"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Opacity float64 `json:"opacity"`
}

// Tooltip models the hover behaviour: one element shared by every arc,
// overwritten on each pointer event.
type Tooltip struct {
	cfg   TooltipConfig
	state TooltipState
}

// NewTooltip returns a hidden tooltip.
func NewTooltip(cfg TooltipConfig) *Tooltip {
	return &Tooltip{cfg: cfg}
}

// Move shows arc's tooltip next to the pointer at page coordinates (x, y).
func (t *Tooltip) Move(a Arc, x, y float64) TooltipState {
	t.state = TooltipState{
		HTML:    a.Tooltip,
		Left:    x + t.cfg.OffsetX,
		Top:     y + t.cfg.OffsetY,
		Opacity: 1,
	}
	return t.state
}

// Leave hides the tooltip. Content and position are kept.
func (t *Tooltip) Leave() TooltipState {
	t.state.Opacity = 0
	return t.state
}

// State returns the current tooltip state.
func (t *Tooltip) State() TooltipState {
	return t.state
}
