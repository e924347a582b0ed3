package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"range with dash", "2-3 years of experience", []float64{2, 3}},
		{"range with to", "2 to 3 years experience", []float64{2, 3}},
		{"range with en dash", "2–4 years", []float64{2, 4}},
		{"minimum qualifier", "minimum 3 years", []float64{3, 3}},
		{"min dot qualifier", "min. 2 years", []float64{2, 2}},
		{"at least qualifier", "at least 5 years", []float64{5, 5}},
		{"plus suffix", "5+ years", []float64{5, 5}},
		{"plus word", "3 plus years", []float64{3, 3}},
		{"single value", "3 years building services", []float64{3, 3}},
		{"decimal", "1.5 years", []float64{1.5, 1.5}},
		{"uppercase", "Minimum 4 Years", []float64{4, 4}},
		{"multiple mentions flattened in order",
			"2-3 years backend\n5+ years nice to have", []float64{2, 3, 5, 5}},
		{"no mention", "strong fundamentals required", nil},
		{"year without number", "this year we grew", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperience(tt.text))
		})
	}
}
