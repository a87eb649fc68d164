package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{
			name: "identical",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 1.0,
		},
		{
			name: "scaled_copy",
			a:    []float32{1, 2, 3},
			b:    []float32{2, 4, 6},
			want: 1.0,
		},
		{
			name: "orthogonal",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0.0,
		},
		{
			name: "opposite",
			a:    []float32{1, 1},
			b:    []float32{-1, -1},
			want: -1.0,
		},
		{
			name: "length_mismatch",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2},
			want: 0.0,
		},
		{
			name: "empty",
			a:    []float32{},
			b:    []float32{},
			want: 0.0,
		},
		{
			name: "nil",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
		{
			name: "zero_magnitude",
			a:    []float32{0, 0, 0},
			b:    []float32{1, 2, 3},
			want: 0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CosineSimilarity(tc.a, tc.b), 0.0001)
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	vectors := [][]float32{
		{0.3, -0.2, 0.9},
		{-0.7, 0.1, 0.4},
		{5, 5, 5},
		{0.0001, 0, -3},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			ab := CosineSimilarity(a, b)
			assert.InDelta(t, ab, CosineSimilarity(b, a), 1e-9)
			assert.GreaterOrEqual(t, ab, -1.0-1e-9)
			assert.LessOrEqual(t, ab, 1.0+1e-9)
		}
	}
}

func TestAverageVector(t *testing.T) {
	cases := []struct {
		name    string
		vectors [][]float32
		want    []float32
	}{
		{
			name:    "empty",
			vectors: nil,
			want:    []float32{},
		},
		{
			name:    "single",
			vectors: [][]float32{{1, 2, 3}},
			want:    []float32{1, 2, 3},
		},
		{
			name:    "two",
			vectors: [][]float32{{1, 0}, {3, 4}},
			want:    []float32{2, 2},
		},
		{
			name:    "shorter_row_does_not_panic",
			vectors: [][]float32{{2, 2, 2}, {4}},
			want:    []float32{3, 1, 1},
		},
		{
			name:    "longer_row_is_truncated",
			vectors: [][]float32{{2}, {4, 100}},
			want:    []float32{3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AverageVector(tc.vectors)
			assert.InDeltaSlice(t, tc.want, got, 0.0001)
			assert.Len(t, got, len(tc.want))
		})
	}
}
