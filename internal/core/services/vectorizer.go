package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// tokenPattern matches runs of at least two word characters.
// Word characters are Unicode letters, marks, digits and underscore.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Tokenize lower-cases text and splits it into terms.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vectorize builds the TF-IDF matrix of a corpus, one L2-normalised row
// per document in corpus order. Returns nil for an empty corpus.
//
// Term frequency is the raw count and idf(t) = ln((1+n)/(1+df(t))) + 1.
func Vectorize(corpus *domain.Corpus) *domain.TermWeightMatrix {
	if corpus.Len() == 0 {
		return nil
	}

	n := corpus.Len()
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i, text := range corpus.Texts() {
		tf := make(map[string]int)
		for _, term := range Tokenize(text) {
			tf[term]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	column := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	for j, term := range vocabulary {
		column[term] = j
		idf[j] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	rows := make([][]float64, n)
	for i, tf := range counts {
		row := make([]float64, len(vocabulary))
		for term, count := range tf {
			j := column[term]
			row[j] = float64(count) * idf[j]
		}
		normalizeL2(row)
		rows[i] = row
	}

	return &domain.TermWeightMatrix{
		Vocabulary: vocabulary,
		Rows:       rows,
	}
}

// normalizeL2 scales row to unit length in place. Zero rows are left alone.
func normalizeL2(row []float64) {
	norm := l2Norm(row)
	if norm == 0 {
		return
	}
	for j := range row {
		row[j] /= norm
	}
}

func l2Norm(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += v * v
	}
	return math.Sqrt(sum)
}
