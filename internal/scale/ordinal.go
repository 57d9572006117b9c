package scale

import (
	"sync"

	"github.com/seenimoa/radialchart/pkg/models"
)

// DefaultPalette is the segment color cycle.
var DefaultPalette = []string{"#ED3624", "#2051B6", "#B09CFF", "#19B092"}

// Ordinal assigns palette colors to segment names by first-seen position.
// Colors repeat once the domain outgrows the palette.
type Ordinal struct {
	mu      sync.Mutex
	index   map[models.SegmentName]int
	domain  []models.SegmentName
	palette []string
}

// NewOrdinal returns an ordinal scale with the given domain and palette. An
// empty palette falls back to DefaultPalette.
func NewOrdinal(domain []models.SegmentName, palette []string) *Ordinal {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	o := &Ordinal{
		index:   make(map[models.SegmentName]int, len(domain)),
		palette: append([]string(nil), palette...),
	}
	for _, s := range domain {
		o.lookup(s)
	}
	return o
}

// Color returns the color for s. Names outside the domain are appended to it
// on first use, so repeated calls always agree.
func (o *Ordinal) Color(s models.SegmentName) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.palette[o.lookup(s)%len(o.palette)]
}

func (o *Ordinal) lookup(s models.SegmentName) int {
	i, ok := o.index[s]
	if !ok {
		i = len(o.domain)
		o.index[s] = i
		o.domain = append(o.domain, s)
	}
	return i
}

// Domain returns the segment names seen so far, in first-seen order.
func (o *Ordinal) Domain() []models.SegmentName {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.SegmentName(nil), o.domain...)
}
