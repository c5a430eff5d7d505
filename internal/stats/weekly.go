package stats

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/model"
)

// DaySeries is one local calendar day of the trailing week.
type DaySeries struct {
	Label     string    // short weekday name
	Date      time.Time // local midnight opening the day
	Completed int       // completed tasks whose UpdatedAt falls in the day
	Created   int       // tasks whose CreatedAt falls in the day
}

// WeeklySeries covers the trailing seven calendar days including today,
// oldest first. Day boundaries are taken from now's wall-clock date, so the
// series is a snapshot, not stable across days.
func WeeklySeries(items []model.Task, now time.Time) []DaySeries {
	out := make([]DaySeries, 0, 7)
	for i := 6; i >= 0; i-- {
		day := midnight(now.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)
		d := DaySeries{Label: day.Weekday().String()[:3], Date: day}
		for _, t := range items {
			if t.Completed && within(t.UpdatedAt.In(now.Location()), day, next) {
				d.Completed++
			}
			if within(t.CreatedAt.In(now.Location()), day, next) {
				d.Created++
			}
		}
		out = append(out, d)
	}
	return out
}

// Streak counts consecutive calendar days, today backward, each with at
// least one completed task. The walk stops at the first empty day; gaps are
// not skipped.
func Streak(items []model.Task, now time.Time) int {
	days := make(map[time.Time]struct{})
	for _, t := range items {
		if t.Completed {
			days[midnight(t.UpdatedAt.In(now.Location()))] = struct{}{}
		}
	}
	streak := 0
	for day := midnight(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
