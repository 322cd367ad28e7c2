// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textmatch scores how alike two short strings are and picks the
// closest candidate, for "did you mean" suggestions in error messages.
package textmatch

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.5

// Similarity computes the Levenshtein-based similarity ratio between two
// strings. Returns a value between 0.0 and 1.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := max(len(a), len(b))
	return 1.0 - float64(distance)/float64(maxLen)
}

// Closest returns the candidate most similar to name, provided it scores
// at least threshold. Ties go to the earlier candidate. ok is false when
// nothing qualifies.
func Closest(name string, candidates []string, threshold float64) (best string, ok bool) {
	bestScore := -1.0
	for _, c := range candidates {
		score := Similarity(name, c)
		if score >= threshold && score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}
