package domain

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
// Mismatched lengths, empty vectors and zero-magnitude vectors give 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// AverageVector returns the element-wise mean of vectors, sized to the first
// vector. Rows shorter than the first contribute only to the indices they have
// and longer rows are truncated. An empty input gives an empty vector.
func AverageVector(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return []float32{}
	}

	dim := len(vectors[0])
	sums := make([]float64, dim)
	for _, v := range vectors {
		for i := 0; i < dim && i < len(v); i++ {
			sums[i] += float64(v[i])
		}
	}

	avg := make([]float32, dim)
	n := float64(len(vectors))
	for i, s := range sums {
		avg[i] = float32(s / n)
	}
	return avg
}
