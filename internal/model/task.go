package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidCategory = errors.New("model: invalid task category")
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Weight is the sort weight of a priority. Valid input paths never produce an
// unrecognized priority, but old persisted records must keep sorting, so
// anything else weighs zero.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryStudy, CategoryHealth:
		return true
	default:
		return false
	}
}

// Icon maps a category to its list glyph. Unrecognized categories keep their
// raw value in the record and fall back to a generic glyph here.
func (c Category) Icon() string {
	switch c {
	case CategoryPersonal:
		return "⌂"
	case CategoryWork:
		return "⚒"
	case CategoryStudy:
		return "✎"
	case CategoryHealth:
		return "♥"
	default:
		return "•"
	}
}

// Categories lists the recognized categories in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryStudy, CategoryHealth}
}

// Priorities lists the recognized priorities from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Task is the sole persisted entity. UpdatedAt doubles as the completion
// marker for completed tasks: there is no separate completedAt field, so
// toggling a task back and forth moves that marker.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Category    Category  `json:"category"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return errors.New("model: task updated_at precedes created_at")
	}
	return nil
}
