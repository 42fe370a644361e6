package graphics

import (
	"testing"

	"github.com/tsawler/pagemark/model"
)

var pageRect = model.NewRect(0, 0, 612, 792)

// makeDrawing builds a stroked drawing with one diagonal segment
func makeDrawing(x0, y0, x1, y1 float64) model.Drawing {
	blue := model.Color{R: 0, G: 0, B: 200}
	return model.Drawing{
		BBox:   model.NewRect(x0, y0, x1, y1),
		Stroke: &blue,
		Segments: []model.Segment{
			{P0: model.Point{X: x0, Y: y0}, P1: model.Point{X: x1, Y: y1}},
		},
	}
}

func TestClassifyNoise(t *testing.T) {
	white := model.White

	tests := []struct {
		name    string
		drawing model.Drawing
		keep    bool
	}{
		{"structural box", makeDrawing(100, 100, 300, 300), true},
		{"negligible area", makeDrawing(100, 100, 101, 101), false},
		{
			name: "background fill",
			drawing: model.Drawing{
				BBox:     model.NewRect(50, 50, 400, 400),
				Fill:     &white,
				FillOnly: true,
			},
			keep: false,
		},
		{
			name: "decorative frame",
			drawing: model.Drawing{
				BBox:   model.NewRect(100, 100, 400, 300),
				Stroke: &model.Color{},
				Segments: []model.Segment{
					{P0: model.Point{X: 100, Y: 100}, P1: model.Point{X: 400, Y: 100}},
					{P0: model.Point{X: 400, Y: 100}, P1: model.Point{X: 400, Y: 300}},
					{P0: model.Point{X: 400, Y: 300}, P1: model.Point{X: 100, Y: 300}},
					{P0: model.Point{X: 100, Y: 300}, P1: model.Point{X: 100, Y: 100}},
				},
			},
			keep: false,
		},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(
				[]model.Drawing{tt.drawing}, nil, pageRect, &white)
			kept := len(result.Kept) == 1
			if kept != tt.keep {
				t.Errorf("kept = %v, want %v", kept, tt.keep)
			}
		})
	}
}

func TestClassifyKeepsHairlineStrokes(t *testing.T) {
	// A strike-out or underline rule spans tens of points horizontally but
	// is a fraction of a point tall, so its bounding-box area is tiny. It
	// must survive classification for strike detection to see it.
	black := model.Color{}
	strike := model.Drawing{
		BBox:   model.NewRect(100, 105, 160, 105.2),
		Stroke: &black,
		Segments: []model.Segment{
			{P0: model.Point{X: 100, Y: 105.1}, P1: model.Point{X: 160, Y: 105.1}},
		},
	}

	result := NewClassifier().Classify([]model.Drawing{strike}, nil, pageRect, nil)

	if len(result.Kept) != 1 {
		t.Fatalf("Kept = %d drawings, want the hairline stroke retained", len(result.Kept))
	}
	if result.NoiseCount != 0 {
		t.Errorf("NoiseCount = %d, want 0", result.NoiseCount)
	}
}

func TestClassifyCeiling(t *testing.T) {
	table := model.NewRect(50, 500, 550, 700)

	var drawings []model.Drawing
	// 4 significant drawings outside the table, 1 inside
	for i := 0; i < 4; i++ {
		x := float64(50 + i*120)
		drawings = append(drawings, makeDrawing(x, 100, x+100, 200))
	}
	drawings = append(drawings, makeDrawing(100, 550, 200, 650))

	config := DefaultClassifierConfig()
	config.Limit = 3
	classifier := NewClassifierWithConfig(config)

	result := classifier.Classify(drawings, []model.Rect{table}, pageRect, nil)

	if !result.LimitExceeded {
		t.Fatal("ceiling should be exceeded")
	}
	if result.Excess != 4 {
		t.Errorf("Excess = %d, want 4", result.Excess)
	}
	if len(result.Kept) != 1 {
		t.Fatalf("Kept = %d drawings, want only the in-table one", len(result.Kept))
	}
	if !table.ContainsMiddle(result.Kept[0].BBox) {
		t.Error("kept drawing should be the in-table one")
	}
}

func TestClassifyUnderCeiling(t *testing.T) {
	drawings := []model.Drawing{
		makeDrawing(50, 100, 150, 200),
		makeDrawing(200, 100, 300, 200),
	}

	result := NewClassifier().Classify(drawings, nil, pageRect, nil)
	if result.LimitExceeded {
		t.Error("ceiling should not be exceeded")
	}
	if len(result.Kept) != 2 {
		t.Errorf("Kept = %d, want 2", len(result.Kept))
	}
}

func TestApplyMarksInvisible(t *testing.T) {
	page := &model.Page{
		Width:  612,
		Height: 792,
		Drawings: []model.Drawing{
			makeDrawing(50, 100, 150, 200),
			makeDrawing(200, 100, 300, 200),
			makeDrawing(350, 100, 450, 200),
		},
	}

	config := DefaultClassifierConfig()
	config.Limit = 2
	result := NewClassifierWithConfig(config).Apply(page, nil, nil)

	if !result.LimitExceeded {
		t.Fatal("ceiling should be exceeded")
	}
	for i, d := range page.Drawings {
		if !d.Invisible {
			t.Errorf("drawing %d should be marked invisible", i)
		}
	}
}
