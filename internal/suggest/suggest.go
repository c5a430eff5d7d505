// Package suggest turns statistics into advisory text: the fixed-rule
// suggestion list shown on the progress screen, and the assistant responder.
package suggest

import (
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/stats"
)

type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

type Suggestion struct {
	Title  string
	Detail string
	Level  Level
}

// Build evaluates the advisory rules in fixed order; each rule contributes at
// most one suggestion, and a generic filler tops the list up to three. Output
// order equals evaluation order.
func Build(items []model.Task, now time.Time) []Suggestion {
	summary := stats.Counts(items)
	out := make([]Suggestion, 0, 4)

	if summary.CompletionRate < 50 {
		out = append(out, Suggestion{
			Title:  "Break Down Large Tasks",
			Detail: "Your completion rate is low. Try breaking large tasks into smaller, manageable chunks.",
			Level:  LevelHigh,
		})
	}

	if n := pendingHighCount(items); n > 0 {
		out = append(out, Suggestion{
			Title:  "Focus on High Priority Tasks",
			Detail: fmt.Sprintf("You have %d high priority tasks pending. Consider tackling these first.", n),
			Level:  LevelHigh,
		})
	}

	switch streak := stats.Streak(items, now); {
	case streak == 0:
		out = append(out, Suggestion{
			Title:  "Start Your Streak",
			Detail: "Complete a task today to start building your completion streak!",
			Level:  LevelMedium,
		})
	case streak >= 7:
		out = append(out, Suggestion{
			Title:  "Excellent Streak!",
			Detail: fmt.Sprintf("Amazing! You have a %d-day streak. Keep up the great work!", streak),
			Level:  LevelLow,
		})
	}

	if len(out) < 3 {
		out = append(out, Suggestion{
			Title:  "Time Blocking",
			Detail: "Try dedicating specific time blocks to different categories of tasks.",
			Level:  LevelLow,
		})
	}
	return out
}

func pendingHighCount(items []model.Task) int {
	n := 0
	for _, t := range items {
		if !t.Completed && t.Priority == model.PriorityHigh {
			n++
		}
	}
	return n
}
