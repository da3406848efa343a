package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// doc is an id/content pair used to build test corpora.
type doc struct {
	id, content string
}

func newCorpus(t testing.TB, tier string, docs ...doc) *domain.Corpus {
	t.Helper()
	corpus := domain.NewCorpus(tier)
	for _, d := range docs {
		require.NoError(t, corpus.Add(domain.Document{ID: d.id, Content: d.content}))
	}
	return corpus
}

// simFromPairs builds an n×n similarity matrix with 1 on the diagonal,
// 0.95 for each listed pair and 0 elsewhere.
func simFromPairs(n int, pairs ...[2]int) domain.SimilarityMatrix {
	sim := make(domain.SimilarityMatrix, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1
	}
	for _, p := range pairs {
		sim[p[0]][p[1]] = 0.95
		sim[p[1]][p[0]] = 0.95
	}
	return sim
}

func idsOf(groups []domain.ClusterGroup) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.DocumentIDs
	}
	return out
}
