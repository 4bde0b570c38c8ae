package student

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/studentmarks/core"
)

// minNameSimilarity is the lowest ratio for a name to be suggested by Search.
var minNameSimilarity = .6

// Search finds a student by name and returns its position along with it.
// A case-insensitive exact match wins; otherwise the most similar name is returned,
// provided it is similar enough. Ties go to the first student in store order.
func (s *Store) Search(name string) (int, Student, error) {
	query := core.CleanString(name, true /* lower */)
	if query == "" {
		return -1, Student{}, ErrNotFound
	}

	bestIdx, bestRatio := -1, 0.0
	for i, st := range s.students {
		stName := core.CleanString(st.Name, true /* lower */)
		if stName == query {
			return i, st, nil
		}
		ratio := difflib.NewMatcher(strings.Split(query, ""), strings.Split(stName, "")).Ratio()
		if ratio > bestRatio {
			bestIdx, bestRatio = i, ratio
		}
	}
	if bestIdx < 0 || bestRatio < minNameSimilarity {
		return -1, Student{}, ErrNotFound
	}
	return bestIdx, s.students[bestIdx], nil
}
