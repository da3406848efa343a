package domain

// TermWeightMatrix holds TF-IDF weights with one row per document in
// corpus order and one column per vocabulary term.
type TermWeightMatrix struct {
	// Vocabulary lists terms in column order (lexicographic).
	Vocabulary []string

	// Rows are the weight vectors. A document without terms has an all-zero row.
	Rows [][]float64
}

// NumDocuments returns the number of rows.
func (m *TermWeightMatrix) NumDocuments() int {
	if m == nil {
		return 0
	}
	return len(m.Rows)
}

// NumTerms returns the number of columns.
func (m *TermWeightMatrix) NumTerms() int {
	if m == nil {
		return 0
	}
	return len(m.Vocabulary)
}

// SimilarityMatrix is a square symmetric matrix of pairwise cosine
// similarities. Entry (i, i) is always 1.
type SimilarityMatrix [][]float64

// Size returns the number of documents covered.
func (m SimilarityMatrix) Size() int {
	return len(m)
}

// DistanceMatrix is 1 - similarity, clamped to be non-negative.
type DistanceMatrix [][]float64

// Size returns the number of documents covered.
func (m DistanceMatrix) Size() int {
	return len(m)
}

// ToDistance converts similarities into clustering distances.
func (m SimilarityMatrix) ToDistance() DistanceMatrix {
	dist := make(DistanceMatrix, len(m))
	for i, row := range m {
		dist[i] = make([]float64, len(row))
		for j, sim := range row {
			d := 1 - sim
			if d < 0 {
				d = 0
			}
			dist[i][j] = d
		}
	}
	return dist
}
