package graphics

import (
	"testing"

	"github.com/tsawler/pagemark/model"
)

func fourCorners(c model.Color) []model.Color {
	return []model.Color{c, c, c, c}
}

func TestDetectBackground(t *testing.T) {
	gray := model.Color{R: 240, G: 240, B: 240}

	tests := []struct {
		name    string
		corners []model.Color
		want    model.Color
		wantOK  bool
	}{
		{"all four match", fourCorners(gray), gray, true},
		{"one corner differs", []model.Color{gray, gray, gray, model.White}, model.Color{}, false},
		{"no corners sampled", nil, model.Color{}, false},
	}

	filter := NewVisibilityFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &model.Page{Corners: tt.corners}
			got, ok := filter.DetectBackground(page)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DetectBackground() = (%v, %v), want (%v, %v)",
					got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDetectBackgroundDisabled(t *testing.T) {
	filter := NewVisibilityFilterWithConfig(FilterConfig{DetectBackground: false})
	page := &model.Page{Corners: fourCorners(model.White)}
	if _, ok := filter.DetectBackground(page); ok {
		t.Error("disabled detection should report no background")
	}
}

func TestApplyMarksBackgroundFills(t *testing.T) {
	white := model.White
	blue := model.Color{R: 0, G: 0, B: 200}

	page := &model.Page{
		Corners: fourCorners(white),
		Drawings: []model.Drawing{
			{BBox: model.NewRect(0, 0, 600, 800), Fill: &white, FillOnly: true},
			{BBox: model.NewRect(10, 10, 100, 100), Fill: &blue, FillOnly: true},
			{BBox: model.NewRect(10, 200, 100, 300), Fill: &white, Stroke: &blue},
		},
	}

	NewVisibilityFilter().Apply(page)

	if !page.Drawings[0].Invisible {
		t.Error("background fill should be invisible")
	}
	if page.Drawings[1].Invisible {
		t.Error("colored fill should stay visible")
	}
	if page.Drawings[2].Invisible {
		t.Error("stroked drawing should stay visible even in background color")
	}
}

func TestApplyMarksTransparentSpans(t *testing.T) {
	page := &model.Page{
		Spans: []model.Span{
			{Text: "hidden", Alpha: 0},
			{Text: "visible", Alpha: 255},
			{Text: "glyph program", Alpha: 0, Type3: true},
		},
	}

	NewVisibilityFilter().Apply(page)

	if !page.Spans[0].Invisible {
		t.Error("alpha 0 span should be invisible")
	}
	if page.Spans[1].Invisible {
		t.Error("opaque span should stay visible")
	}
	if page.Spans[2].Invisible {
		t.Error("Type 3 span must never be filtered on alpha")
	}
}
