package services

import "github.com/custodia-labs/clonegroup/internal/core/domain"

// Similarity computes the all-pairs cosine similarity of the matrix rows.
//
// Each unordered pair is computed once and mirrored, so the result is
// exactly symmetric. The diagonal is 1 for every document, and a pair
// involving a zero row has similarity 0. Values are clamped to [-1, 1].
func Similarity(matrix *domain.TermWeightMatrix) domain.SimilarityMatrix {
	n := matrix.NumDocuments()
	if n == 0 {
		return nil
	}

	norms := make([]float64, n)
	for i, row := range matrix.Rows {
		norms[i] = l2Norm(row)
	}

	sim := make(domain.SimilarityMatrix, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := cosine(matrix.Rows[i], matrix.Rows[j], norms[i], norms[j])
			sim[i][j] = v
			sim[j][i] = v
		}
	}
	return sim
}

func cosine(a, b []float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for k := range a {
		dot += a[k] * b[k]
	}
	return clamp(dot/(normA*normB), -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
