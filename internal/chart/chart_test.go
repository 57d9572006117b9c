package chart

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/seenimoa/radialchart/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Test Helpers
// ════════════════════════════════════════════════════════════════════

func sampleMatrix(t *testing.T) *models.Matrix {
	t.Helper()
	m, err := models.NewMatrix(
		[]models.Category{"A", "B"},
		[]models.SegmentName{"segment1", "segment2"},
		[][]float64{{30, 70}, {50, 50}},
	)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func surveyMatrix(t *testing.T) *models.Matrix {
	t.Helper()
	m, err := models.NewMatrix(
		[]models.Category{
			"Increased a lot", "Increased a little", "Stayed the same",
			"Decreased a little", "Decreased a lot", "Don’t know",
		},
		[]models.SegmentName{
			"Regular household shop", "Rent, mortgage or housing payments",
			"Energy bills", "Other household bills",
		},
		[][]float64{
			{32, 14, 38, 15},
			{30, 20, 28, 24},
			{20, 45, 16, 40},
			{5, 6, 6, 5},
			{2, 3, 2, 2},
			{11, 12, 10, 14},
		},
	)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// ════════════════════════════════════════════════════════════════════
// Path / Arc generator
// ════════════════════════════════════════════════════════════════════

func TestArcPath(t *testing.T) {
	tests := []struct {
		name string
		spec ArcSpec
		want string
	}{
		{
			name: "full disc",
			spec: ArcSpec{OuterRadius: 10, EndAngle: 2 * math.Pi},
			want: "M0,-10A10,10,0,1,1,0,10A10,10,0,1,1,0,-10Z",
		},
		{
			name: "quarter pie",
			spec: ArcSpec{OuterRadius: 10, EndAngle: math.Pi / 2},
			want: "M0,-10A10,10,0,0,1,10,0L0,0Z",
		},
		{
			name: "quarter annulus",
			spec: ArcSpec{InnerRadius: 5, OuterRadius: 10, EndAngle: math.Pi / 2},
			want: "M0,-10A10,10,0,0,1,10,0L5,0A5,5,0,0,0,0,-5Z",
		},
		{
			name: "swapped radii",
			spec: ArcSpec{InnerRadius: 10, OuterRadius: 5, EndAngle: math.Pi / 2},
			want: "M0,-10A10,10,0,0,1,10,0L5,0A5,5,0,0,0,0,-5Z",
		},
		{
			name: "zero radius",
			spec: ArcSpec{EndAngle: 1},
			want: "M0,0Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArcPath(tt.spec, 3); got != tt.want {
				t.Errorf("ArcPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArcPathPadAngleNarrowsBothEdges(t *testing.T) {
	spec := ArcSpec{InnerRadius: 150, OuterRadius: 300, EndAngle: math.Pi / 2, PadAngle: 0.01, PadRadius: 150}
	padded := ArcPath(spec, 3)
	spec.PadAngle = 0
	plain := ArcPath(spec, 3)

	if padded == plain {
		t.Fatal("pad angle had no effect")
	}
	// Unpadded outer edge starts exactly at 12 o'clock.
	if !strings.HasPrefix(plain, "M0,-300") {
		t.Errorf("plain path = %q, want start M0,-300", plain)
	}
	// Padding shifts the start clockwise, so x becomes positive.
	if strings.HasPrefix(padded, "M0,") || strings.HasPrefix(padded, "M-") {
		t.Errorf("padded path = %q, want start shifted clockwise", padded)
	}
}

func TestPathKeepsNaN(t *testing.T) {
	p := &Path{Digits: 3}
	p.MoveTo(math.NaN(), 1)
	if got := p.String(); got != "MNaN,1" {
		t.Errorf("path = %q, want MNaN,1", got)
	}
}

// ════════════════════════════════════════════════════════════════════
// Build
// ════════════════════════════════════════════════════════════════════

func TestBuildTwoByTwo(t *testing.T) {
	scene, err := Build(sampleMatrix(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if scene.Width != 700 || scene.Height != 700 {
		t.Errorf("size = %dx%d, want 700x700", scene.Width, scene.Height)
	}
	if scene.CenterX != 350 || scene.CenterY != 350 {
		t.Errorf("center = (%v, %v), want (350, 350)", scene.CenterX, scene.CenterY)
	}
	if scene.OuterRadius != 310 {
		t.Errorf("OuterRadius = %v, want 310", scene.OuterRadius)
	}

	if got := len(scene.Arcs()); got != 4 {
		t.Fatalf("arc count = %d, want 4", got)
	}

	a, ok := scene.Arc("segment2", "A")
	if !ok {
		t.Fatal("arc (segment2, A) missing")
	}
	if a.Interval != (models.Interval{Lower: 30, Upper: 100}) {
		t.Errorf("interval = %+v, want [30, 100]", a.Interval)
	}
	if !near(a.OuterRadius, 310) {
		t.Errorf("OuterRadius = %v, want 310", a.OuterRadius)
	}
	wantInner := math.Sqrt(150*150 + 0.3*(310*310-150*150))
	if !near(a.InnerRadius, wantInner) {
		t.Errorf("InnerRadius = %v, want %v", a.InnerRadius, wantInner)
	}
	if a.Color != "#2051B6" {
		t.Errorf("Color = %s, want #2051B6", a.Color)
	}
	if a.Opacity != 0.8 || a.PadAngle != 0.01 || a.PadRadius != 150 {
		t.Errorf("style = (%v, %v, %v), want (0.8, 0.01, 150)", a.Opacity, a.PadAngle, a.PadRadius)
	}
	if a.Path == "" || !strings.HasSuffix(a.Path, "Z") {
		t.Errorf("Path = %q, want closed path", a.Path)
	}

	b, _ := scene.Arc("segment1", "B")
	if !near(b.EndAngle-b.StartAngle, a.EndAngle-a.StartAngle) {
		t.Error("bands should share one angular width")
	}
	if b.StartAngle <= a.StartAngle {
		t.Error("category B should follow A clockwise")
	}
}

func TestBuildPaintOrder(t *testing.T) {
	scene, err := Build(surveyMatrix(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(scene.Series) != 4 {
		t.Fatalf("series = %d, want 4", len(scene.Series))
	}
	for i, g := range scene.Series {
		if len(g.Arcs) != 6 {
			t.Errorf("series %d arcs = %d, want 6", i, len(g.Arcs))
		}
		for _, a := range g.Arcs {
			if a.Color != g.Color {
				t.Errorf("arc %s color %s differs from series color %s", a.ID, a.Color, g.Color)
			}
		}
	}
	if scene.Series[3].Key != "Other household bills" {
		t.Errorf("last painted series = %q", scene.Series[3].Key)
	}

	// Within a category, each arc starts where the previous one ends.
	for ci := range scene.Series[0].Arcs {
		for si := 1; si < len(scene.Series); si++ {
			prev := scene.Series[si-1].Arcs[ci]
			cur := scene.Series[si].Arcs[ci]
			if !near(prev.OuterRadius, cur.InnerRadius) {
				t.Errorf("category %d: gap between segment %d and %d", ci, si-1, si)
			}
		}
	}
}

func TestBuildAnnotations(t *testing.T) {
	scene, err := Build(surveyMatrix(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantTicks := []Gridline{
		{Value: 0, Radius: 150, Label: "0"},
		{Value: 50, Radius: math.Sqrt(59300), Label: "50"},
		{Value: 100, Radius: 310, Label: "100"},
	}
	if len(scene.Gridlines) != len(wantTicks) {
		t.Fatalf("gridlines = %+v", scene.Gridlines)
	}
	for i, w := range wantTicks {
		g := scene.Gridlines[i]
		if g.Value != w.Value || g.Label != w.Label || !near(g.Radius, w.Radius) {
			t.Errorf("gridline %d = %+v, want %+v", i, g, w)
		}
	}

	if scene.Legend.X != -80 || scene.Legend.Y != -50 {
		t.Errorf("legend anchor = (%v, %v), want (-80, -50)", scene.Legend.X, scene.Legend.Y)
	}
	for i, e := range scene.Legend.Entries {
		if e.Y != float64(i*20) {
			t.Errorf("legend row %d y = %v, want %d", i, e.Y, i*20)
		}
		if e.Color != scene.Series[i].Color {
			t.Errorf("legend row %d color %s, series color %s", i, e.Color, scene.Series[i].Color)
		}
	}

	wantOffsets := []string{"5%", "5%", "55%", "55%", "5%", "5%"}
	if len(scene.Labels) != len(wantOffsets) {
		t.Fatalf("labels = %d, want %d", len(scene.Labels), len(wantOffsets))
	}
	for i, l := range scene.Labels {
		if l.StartOffset != wantOffsets[i] {
			t.Errorf("label %q offset = %s (%.1f°), want %s", l.Category, l.StartOffset, l.Degrees, wantOffsets[i])
		}
		if l.ArcID != "categoryArc"+string(rune('0'+i)) {
			t.Errorf("label %d ArcID = %s", i, l.ArcID)
		}
		if l.Path == "" {
			t.Errorf("label %d has no path", i)
		}
	}
}

func TestBuildHugeDomainLabels(t *testing.T) {
	opts := DefaultOptions()
	opts.DomainMax = 1e25
	scene, err := Build(sampleMatrix(t), opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(scene.Gridlines) == 0 {
		t.Fatal("no gridlines")
	}
	for _, g := range scene.Gridlines {
		if !strings.HasSuffix(g.Label, "Y") {
			t.Errorf("gridline %v label = %q, want a yotta label", g.Value, g.Label)
		}
	}
}

func TestLabelPlacement(t *testing.T) {
	tests := []struct {
		deg        float64
		wantOffset string
		wantDY     float64
	}{
		{0, "5%", 10},
		{90, "55%", 0},
		{180, "5%", 10},
		{50, "5%", 10},
		{50.1, "55%", 0},
		{119.9, "55%", 0},
		{120, "5%", 10},
		{-60, "5%", 10},
	}

	for _, tt := range tests {
		offset, dy := LabelPlacement(tt.deg)
		if offset != tt.wantOffset || dy != tt.wantDY {
			t.Errorf("LabelPlacement(%v) = (%s, %v), want (%s, %v)", tt.deg, offset, dy, tt.wantOffset, tt.wantDY)
		}
	}

	if got := LabelDegrees(math.Pi); !near(got, 90) {
		t.Errorf("LabelDegrees(π) = %v, want 90", got)
	}
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	m := sampleMatrix(t)
	m.Values[1][0] = math.NaN()
	if _, err := Build(m, DefaultOptions()); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Build(NaN) error = %v, want ErrInvalidValue", err)
	}

	if _, err := Build(&models.Matrix{}, DefaultOptions()); err == nil {
		t.Error("Build(empty) should fail")
	}

	opts := DefaultOptions()
	opts.InnerRadius = 400
	if _, err := Build(sampleMatrix(t), opts); err == nil {
		t.Error("Build with inner radius beyond outer should fail")
	}

	ragged := sampleMatrix(t)
	ragged.Values[0] = ragged.Values[0][:1]
	if _, err := Build(ragged, DefaultOptions()); err == nil {
		t.Error("Build(ragged) should fail")
	}
}

func TestOptionsResolvedOuterRadius(t *testing.T) {
	o := DefaultOptions()
	if got := o.ResolvedOuterRadius(); got != 310 {
		t.Errorf("ResolvedOuterRadius = %v, want 310", got)
	}
	o.Margin.Left = 60
	o.Height = 600
	if got := o.ResolvedOuterRadius(); got != 240 {
		t.Errorf("ResolvedOuterRadius = %v, want 240", got)
	}
	o.OuterRadius = 200
	if got := o.ResolvedOuterRadius(); got != 200 {
		t.Errorf("explicit OuterRadius = %v, want 200", got)
	}
}

// ════════════════════════════════════════════════════════════════════
// Tooltip
// ════════════════════════════════════════════════════════════════════

func TestTooltipContent(t *testing.T) {
	scene, err := Build(sampleMatrix(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, _ := scene.Arc("segment1", "A")
	want := "<b style='color:#ED3624'>segment1:</b>30<br><b style='color:#2051B6'>segment2:</b>70"
	if a.Tooltip != want {
		t.Errorf("Tooltip = %q, want %q", a.Tooltip, want)
	}

	// Every arc of a category shows the same listing.
	b, _ := scene.Arc("segment2", "A")
	if b.Tooltip != a.Tooltip {
		t.Error("arcs of one category should share tooltip content")
	}
}

func TestTooltipEscapesNames(t *testing.T) {
	m, err := models.NewMatrix([]models.Category{"c"}, []models.SegmentName{"<b>&"}, [][]float64{{1}})
	if err != nil {
		t.Fatal(err)
	}
	scene, err := Build(m, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if tip := scene.Arcs()[0].Tooltip; !strings.Contains(tip, "&lt;b&gt;&amp;:") {
		t.Errorf("Tooltip = %q, want escaped segment name", tip)
	}
}

func TestTooltipMoveAndLeave(t *testing.T) {
	tip := NewTooltip(TooltipConfig{OffsetX: 25, OffsetY: -28})
	if tip.State().Opacity != 0 {
		t.Error("tooltip should start hidden")
	}

	a := Arc{Tooltip: "first"}
	st := tip.Move(a, 100, 200)
	if st.Left != 125 || st.Top != 172 || st.Opacity != 1 || st.HTML != "first" {
		t.Errorf("Move = %+v", st)
	}

	st = tip.Move(Arc{Tooltip: "second"}, 10, 10)
	if st.HTML != "second" || st.Left != 35 || st.Top != -18 {
		t.Errorf("second Move = %+v, want last write to win", st)
	}

	st = tip.Leave()
	if st.Opacity != 0 || st.HTML != "second" {
		t.Errorf("Leave = %+v", st)
	}
}
