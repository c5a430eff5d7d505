package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/taskflowhq/taskflow/internal/model"
)

type Insight struct {
	Title  string
	Detail string
	Value  string
}

// Insights derives the fixed advisory records, in a fixed order. The average
// completion latency entry is omitted when nothing has been completed yet.
func Insights(items []model.Task, now time.Time) []Insight {
	out := make([]Insight, 0, 4)

	series := WeeklySeries(items, now)
	best := 0
	for i, d := range series {
		if d.Completed > series[best].Completed {
			best = i
		}
	}
	out = append(out, Insight{
		Title:  "Most Productive Day",
		Detail: "Your most productive day of the week",
		Value:  series[best].Date.Weekday().String(),
	})

	completed := make([]model.Task, 0, len(items))
	for _, t := range items {
		if t.Completed {
			completed = append(completed, t)
		}
	}
	if len(completed) > 0 {
		var total time.Duration
		for _, t := range completed {
			total += t.UpdatedAt.Sub(t.CreatedAt)
		}
		avg := total / time.Duration(len(completed))
		hours := int(math.Round(avg.Hours()))
		value := fmt.Sprintf("%d hours", hours)
		if hours > 24 {
			value = fmt.Sprintf("%d days", int(math.Round(float64(hours)/24)))
		}
		out = append(out, Insight{
			Title:  "Average Completion Time",
			Detail: "Average time to complete a task",
			Value:  value,
		})
	}

	weekAgo := now.AddDate(0, 0, -7)
	recent := 0
	for _, t := range items {
		if !t.CreatedAt.Before(weekAgo) {
			recent++
		}
	}
	out = append(out, Insight{
		Title:  "Task Velocity",
		Detail: "Tasks created in the last 7 days",
		Value:  fmt.Sprintf("%d tasks", recent),
	})

	out = append(out, Insight{
		Title:  "Completion Efficiency",
		Detail: "Overall task completion rate",
		Value:  fmt.Sprintf("%d%%", Counts(items).CompletionRate),
	})

	return out
}
