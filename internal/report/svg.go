// Package report writes a chart scene as an SVG document, a self-contained
// HTML page with a hover tooltip, a YAML/JSON scene dump, or a PDF.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seenimoa/radialchart/internal/chart"
	"github.com/seenimoa/radialchart/pkg/utils"
)

// ChartKind marks the root <svg> so the page script can find it.
const ChartKind = "radial-stacked-bar"

// ════════════════════════════════════════════════════════════════════
// SVG Writer
// ════════════════════════════════════════════════════════════════════

// SVG renders the scene as an <svg> element. Layers are written in paint
// order: gridlines, bars, legend, category labels, then the invisible
// label arcs the labels refer to.
func SVG(s *chart.Scene) string {
	var sb strings.Builder
	sb.WriteString(svgHeader(s))
	sb.WriteString(fmt.Sprintf(`<g transform="translate(%s,%s)">`, num(s.CenterX), num(s.CenterY)))

	writeGridlines(&sb, s.Gridlines)
	writeBars(&sb, s.Series)
	writeLegend(&sb, s.Legend)
	writeLabels(&sb, s.Labels)

	sb.WriteString("</g></svg>")
	return sb.String()
}

// WriteSVG writes a standalone SVG document to w.
func WriteSVG(w io.Writer, s *chart.Scene) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+SVG(s)+"\n"); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeGridlines(sb *strings.Builder, lines []chart.Gridline) {
	sb.WriteString(`<g class="axis" text-anchor="middle">`)
	for _, g := range lines {
		r := num(g.Radius)
		y := num(-g.Radius)
		label := escapeXML(g.Label)
		sb.WriteString("<g>")
		sb.WriteString(fmt.Sprintf(`<circle fill="none" stroke="#000" r="%s"/>`, r))
		// White halo first so the label stays legible over the bars.
		sb.WriteString(fmt.Sprintf(`<text y="%s" dy="0.35em" fill="none" stroke="#fff" stroke-width="5">%s</text>`, y, label))
		sb.WriteString(fmt.Sprintf(`<text y="%s" dy="0.35em">%s</text>`, y, label))
		sb.WriteString("</g>")
	}
	sb.WriteString("</g>")
}

func writeBars(sb *strings.Builder, series []chart.SeriesGroup) {
	sb.WriteString(`<g class="bars">`)
	for _, g := range series {
		sb.WriteString(fmt.Sprintf(`<g fill="%s" data-segment="%s">`, escapeXML(g.Color), escapeXML(string(g.Key))))
		for _, a := range g.Arcs {
			sb.WriteString(fmt.Sprintf(`<path id="%s" class="arc" d="%s" opacity="%s" data-category="%s" data-tooltip="%s"/>`,
				escapeXML(a.ID), a.Path, num(a.Opacity), escapeXML(string(a.Category)), escapeXML(a.Tooltip)))
		}
		sb.WriteString("</g>")
	}
	sb.WriteString("</g>")
}

func writeLegend(sb *strings.Builder, l chart.Legend) {
	sb.WriteString(fmt.Sprintf(`<g class="legend" transform="translate(%s,%s)">`, num(l.X), num(l.Y)))
	for _, e := range l.Entries {
		color := escapeXML(e.Color)
		sb.WriteString(fmt.Sprintf(`<g transform="translate(0,%s)">`, num(e.Y)))
		sb.WriteString(fmt.Sprintf(`<rect width="%s" height="%s" fill="%s"/>`, num(l.Swatch), num(l.Swatch), color))
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-size="%spx" fill="%s">%s</text>`,
			num(l.Swatch+5), num(l.Swatch), num(l.FontSize), color, escapeXML(string(e.Segment))))
		sb.WriteString("</g>")
	}
	sb.WriteString("</g>")
}

func writeLabels(sb *strings.Builder, labels []chart.CategoryLabel) {
	sb.WriteString(`<g class="labels">`)
	for _, l := range labels {
		id := escapeXML(l.ArcID)
		sb.WriteString(fmt.Sprintf(`<text class="label" dy="%s"><textPath href="#%s" xlink:href="#%s" startOffset="%s">%s</textPath></text>`,
			num(l.DY), id, id, escapeXML(l.StartOffset), escapeXML(string(l.Category))))
	}
	sb.WriteString("</g>")

	sb.WriteString(`<g class="label-arcs">`)
	for _, l := range labels {
		sb.WriteString(fmt.Sprintf(`<path id="%s" d="%s" fill="none"/>`, escapeXML(l.ArcID), l.Path))
	}
	sb.WriteString("</g>")
}

// ════════════════════════════════════════════════════════════════════
// SVG Helpers
// ════════════════════════════════════════════════════════════════════

func svgHeader(s *chart.Scene) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="10" data-chart="%s" data-tooltip-offset-x="%s" data-tooltip-offset-y="%s">`,
		s.Width, s.Height, s.Width, s.Height, ChartKind, num(s.Tooltip.OffsetX), num(s.Tooltip.OffsetY))
}

func num(v float64) string {
	v = utils.Round(v, 3)
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
