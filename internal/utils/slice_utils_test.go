// Package utils
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseForEach(t *testing.T) {
	var visited []int
	ReverseForEach([]string{"a", "b", "c"}, func(index int, _ string) {
		visited = append(visited, index)
	})
	assert.Equal(t, []int{2, 1, 0}, visited)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, Unique([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, Unique([]uint{}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(v int) int { return v * 2 }))
	assert.Empty(t, Map([]int{}, func(v int) int { return v }))
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Boeing 737":           "boeing-737",
		"  Airbus  A320neo! ":  "airbus-a320neo",
		"Sukhoi_Superjet--100": "sukhoi-superjet-100",
		"ÜberJet":              "berjet",
		"":                     "",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, Slugify(input), "Slugify(%q)", input)
	}
}
