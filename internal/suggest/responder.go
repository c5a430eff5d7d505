package suggest

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/stats"
)

// Responder answers free-form assistant messages. Keyword rules consult the
// current task snapshot; everything else draws from a canned pool through an
// injected rand source so replies are reproducible in tests.
type Responder struct {
	rng *rand.Rand
}

func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

var cannedReplies = []string{
	"I'm here to help you stay productive! Try breaking down large tasks into smaller ones.",
	"Consider using the Pomodoro technique - 25 minutes of focused work, then 5 minutes break.",
	"Based on your tasks, I suggest focusing on high priority items first. You've got this!",
	"Time blocking can really help! Dedicate specific hours to different task categories.",
	"Remember to celebrate small wins! Each completed task is progress toward your goals.",
	"Try batch processing similar tasks together for better efficiency.",
	"Don't forget to take breaks! Your brain needs rest to maintain peak productivity.",
}

func (r *Responder) Reply(message string, items []model.Task) string {
	lower := strings.ToLower(message)
	summary := stats.Counts(items)

	switch {
	case strings.Contains(lower, "help") || strings.Contains(lower, "stuck"):
		if summary.Pending > 0 {
			return "I see you have pending tasks! Try breaking them into smaller steps or tackling the highest priority ones first."
		}
		return "I'm here to help you stay productive! What specific challenge are you facing with your tasks?"
	case strings.Contains(lower, "motivation") || strings.Contains(lower, "motivated"):
		if summary.Completed > 0 {
			return fmt.Sprintf("You've already completed %d tasks! That's progress worth celebrating. Keep going!", summary.Completed)
		}
		return "Remember, every big achievement starts with small steps. Complete just one task to build momentum!"
	case strings.Contains(lower, "priority") || strings.Contains(lower, "important"):
		if n := pendingHighCount(items); n > 0 {
			return fmt.Sprintf("You have %d high priority tasks waiting. Focus on those first for maximum impact!", n)
		}
		return "Consider marking your most important tasks as high priority to stay focused on what matters most."
	}
	return cannedReplies[r.rng.Intn(len(cannedReplies))]
}
