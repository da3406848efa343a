package services

import (
	"fmt"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// Group partitions a corpus into clusters of near-duplicates using
// DBSCAN over the distances derived from similarity.
//
// A nil similarity matrix yields no groups. Groups are ordered by the
// first appearance of any member in corpus order; noise points become
// singleton groups so every document lands in exactly one group.
func Group(
	corpus *domain.Corpus,
	similarity domain.SimilarityMatrix,
	params domain.ClusterParams,
) ([]domain.ClusterGroup, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if similarity == nil {
		return []domain.ClusterGroup{}, nil
	}

	n := corpus.Len()
	if similarity.Size() != n {
		return nil, fmt.Errorf("%w: %d rows for %d documents", domain.ErrDimensionMismatch, similarity.Size(), n)
	}
	for i, row := range similarity {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns", domain.ErrDimensionMismatch, i, len(row))
		}
	}

	labels := dbscan(similarity.ToDistance(), params.Eps, params.MinSamples)
	return materialise(corpus.IDs(), labels), nil
}

// dbscan labels each point with a cluster, or domain.NoiseLabel.
// Clusters are seeded from core points in index order.
func dbscan(dist domain.DistanceMatrix, eps float64, minSamples int) []domain.ClusterLabel {
	n := dist.Size()

	neighbours := make([][]int, n)
	core := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dist[i][j] <= eps {
				neighbours[i] = append(neighbours[i], j)
			}
		}
		core[i] = len(neighbours[i]) >= minSamples
	}

	labels := make([]domain.ClusterLabel, n)
	for i := range labels {
		labels[i] = domain.NoiseLabel
	}

	next := domain.ClusterLabel(0)
	for i := 0; i < n; i++ {
		if labels[i] != domain.NoiseLabel || !core[i] {
			continue
		}

		labels[i] = next
		stack := []int{i}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, q := range neighbours[p] {
				if labels[q] != domain.NoiseLabel {
					continue
				}
				labels[q] = next
				// border points are labelled but never expanded
				if core[q] {
					stack = append(stack, q)
				}
			}
		}
		next++
	}
	return labels
}

// materialise buckets ids by label in order of first appearance.
func materialise(ids []string, labels []domain.ClusterLabel) []domain.ClusterGroup {
	groups := make([]domain.ClusterGroup, 0)
	slot := make(map[domain.ClusterLabel]int)

	for i, label := range labels {
		if label.IsNoise() {
			groups = append(groups, domain.ClusterGroup{
				Label:       domain.NoiseLabel,
				DocumentIDs: []string{ids[i]},
			})
			continue
		}
		k, ok := slot[label]
		if !ok {
			k = len(groups)
			slot[label] = k
			groups = append(groups, domain.ClusterGroup{Label: label})
		}
		groups[k].DocumentIDs = append(groups[k].DocumentIDs, ids[i])
	}
	return groups
}
