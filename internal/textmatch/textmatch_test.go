// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "struct", "struct", 1.0, 1.0},
		{"one empty", "", "enum", 0.0, 0.0},
		{"one typo", "strcut", "struct", 0.5, 0.9},
		{"unrelated", "abc", "xyz", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestClosest(t *testing.T) {
	kinds := []string{"struct", "enum", "fn", "impl", "mod", "trait"}

	got, ok := Closest("strct", kinds, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "struct", got)

	got, ok = Closest("traits", kinds, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "trait", got)

	_, ok = Closest("zzzzzzzz", kinds, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Closest("x", nil, 0)
	assert.False(t, ok)
}
