package tasks

import (
	"sort"

	"github.com/taskflowhq/taskflow/internal/model"
)

type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterPending   FilterMode = "pending"
	FilterCompleted FilterMode = "completed"
	FilterHigh      FilterMode = "high"
)

// FilterModes lists the view selectors in cycle order.
func FilterModes() []FilterMode {
	return []FilterMode{FilterAll, FilterPending, FilterCompleted, FilterHigh}
}

// Filter selects the tasks matching mode. Unknown modes behave as FilterAll.
func Filter(items []model.Task, mode FilterMode) []model.Task {
	out := make([]model.Task, 0, len(items))
	for _, t := range items {
		switch mode {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterHigh:
			if t.Priority != model.PriorityHigh {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortTasks orders pending before completed, then by priority weight
// descending, then by most recent creation. Fully equal keys fall back to ID
// so repeated sorts always agree.
func SortTasks(items []model.Task) []model.Task {
	out := make([]model.Task, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if aw, bw := a.Priority.Weight(), b.Priority.Weight(); aw != bw {
			return aw > bw
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out
}

// View is the list handed to the rendering layer: filtered, then sorted.
func View(items []model.Task, mode FilterMode) []model.Task {
	return SortTasks(Filter(items, mode))
}
