// Package stats derives aggregate metrics from a task snapshot. Every
// function is pure: it takes the snapshot (and, where day boundaries matter,
// an explicit now) and recomputes from scratch on each call.
package stats

import (
	"math"

	"github.com/taskflowhq/taskflow/internal/model"
)

type Summary struct {
	Completed      int
	Pending        int
	Total          int
	CompletionRate int // rounded percentage, 0 for an empty snapshot
}

func Counts(items []model.Task) Summary {
	s := Summary{Total: len(items)}
	for _, t := range items {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

type CategoryCount struct {
	Category model.Category
	Count    int
}

// CategoryHistogram counts tasks per recognized category, in display order.
// Tasks with an unrecognized category are not bucketed.
func CategoryHistogram(items []model.Task) []CategoryCount {
	out := make([]CategoryCount, 0, 4)
	for _, c := range model.Categories() {
		n := 0
		for _, t := range items {
			if t.Category == c {
				n++
			}
		}
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	return out
}
