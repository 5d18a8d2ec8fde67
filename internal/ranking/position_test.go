package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// positionsOf applique Positions à une suite de clés entières déjà triées
func positionsOf(keys []int) []int {
	positions := make([]int, len(keys))
	Positions(len(keys), func(i, j int) bool {
		return keys[i] == keys[j]
	}, func(i, pos int) {
		positions[i] = pos
	})
	return positions
}

func TestPositions_CompetitionRanking(t *testing.T) {
	cases := []struct {
		name string
		keys []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{100}, []int{1}},
		{"no ties", []int{100, 90, 80}, []int{1, 2, 3}},
		{"tie at top skips second", []int{90, 90, 80}, []int{1, 1, 3}},
		{"tie in middle", []int{100, 90, 90, 80}, []int{1, 2, 2, 4}},
		{"three way tie", []int{100, 100, 100, 50}, []int{1, 1, 1, 4}},
		{"all tied", []int{7, 7, 7}, []int{1, 1, 1}},
		{"consecutive ties", []int{9, 9, 8, 8, 7}, []int{1, 1, 3, 3, 5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, positionsOf(c.keys))
		})
	}
}

// Les positions commencent à 1, ne décroissent jamais, et la première
// occurrence d'une position vaut le nombre d'entrées strictement meilleures
// plus un
func TestPositions_Monotonicity(t *testing.T) {
	keys := []int{50, 40, 40, 40, 30, 30, 20, 10, 10, 10, 10, 5}
	positions := positionsOf(keys)

	assert.Equal(t, 1, positions[0])
	for i := 1; i < len(positions); i++ {
		assert.GreaterOrEqual(t, positions[i], positions[i-1])
	}

	for i, pos := range positions {
		strictlyBetter := 0
		for j := 0; j < len(keys); j++ {
			if keys[j] > keys[i] {
				strictlyBetter++
			}
		}
		assert.Equal(t, strictlyBetter+1, pos)
	}
}

// Deux entrées ont la même position si et seulement si leurs clés sont égales
func TestPositions_TieInvariant(t *testing.T) {
	keys := []int{80, 80, 60, 60, 60, 40, 20, 20}
	positions := positionsOf(keys)

	for i := range keys {
		for j := range keys {
			if keys[i] == keys[j] {
				assert.Equal(t, positions[i], positions[j])
			} else {
				assert.NotEqual(t, positions[i], positions[j])
			}
		}
	}
}
