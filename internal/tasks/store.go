package tasks

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/storage"
)

var ErrNotFound = errors.New("tasks: task not found")

// StorageKey is where the encoded collection lives in the shim.
const StorageKey = "taskflow_tasks"

// Store owns the in-memory task collection exclusively; consumers only ever
// see copies. Every mutation persists the full collection through the shim
// before returning, so there is no dirty state to flush.
type Store struct {
	shim  *storage.Shim
	items []model.Task
	now   func() time.Time
	newID func() string
}

func NewStore(shim *storage.Shim) *Store {
	return NewStoreWithClock(shim, time.Now, uuid.NewString)
}

// NewStoreWithClock injects the clock and id source, for tests and replay.
func NewStoreWithClock(shim *storage.Shim, now func() time.Time, newID func() string) *Store {
	return &Store{
		shim:  shim,
		items: make([]model.Task, 0),
		now:   now,
		newID: newID,
	}
}

// Load replaces the in-memory collection with the persisted one. An absent or
// undecodable value leaves the store empty rather than failing.
func (s *Store) Load() {
	items := make([]model.Task, 0)
	s.shim.LoadJSON(StorageKey, &items)
	s.items = items
}

// Create validates the title, stamps and appends a new task, and persists.
func (s *Store) Create(title, description string, priority model.Priority, category model.Category) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, &model.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	now := s.now()
	task := model.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Category:    category,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items = append(s.items, task)
	s.persist()
	return task, nil
}

// Fields carries the optional values an update may merge into a task. Nil
// fields are left alone; CreatedAt is never touched.
type Fields struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Category    *model.Category
}

// Update merges fields into the task with the given id and re-stamps
// UpdatedAt. The store is unchanged on any error.
func (s *Store) Update(id string, fields Fields) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	task := s.items[i]
	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return model.Task{}, &model.ValidationError{Field: "title", Reason: "must not be empty"}
		}
		task.Title = title
	}
	if fields.Description != nil {
		task.Description = strings.TrimSpace(*fields.Description)
	}
	if fields.Priority != nil {
		task.Priority = *fields.Priority
	}
	if fields.Category != nil {
		task.Category = *fields.Category
	}
	task.UpdatedAt = s.now()
	s.items[i] = task
	s.persist()
	return task, nil
}

// ToggleComplete flips the completed flag and re-stamps UpdatedAt, which for
// a completed task also serves as its completion marker.
func (s *Store) ToggleComplete(id string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	task := s.items[i]
	task.Completed = !task.Completed
	task.UpdatedAt = s.now()
	s.items[i] = task
	s.persist()
	return task, nil
}

// Delete removes the task with the given id and persists the remainder.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist()
	return nil
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.items[i], nil
}

// Tasks returns a snapshot of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// Clear drops every task and persists the empty collection.
func (s *Store) Clear() {
	s.items = s.items[:0]
	s.persist()
}

// Export renders the collection as indented JSON, for backups.
func (s *Store) Export() (string, error) {
	bs, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// ByCategory returns the tasks whose category equals c.
func (s *Store) ByCategory(c model.Category) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.items {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// ByPriority returns the tasks whose priority equals p.
func (s *Store) ByPriority(p model.Priority) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.items {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// CompletedToday returns the tasks completed during the current local
// calendar day.
func (s *Store) CompletedToday() []model.Task {
	now := s.now()
	out := make([]model.Task, 0)
	for _, t := range s.items {
		if t.Completed && sameDay(t.UpdatedAt, now) {
			out = append(out, t)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (s *Store) index(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() {
	s.shim.SaveJSON(StorageKey, s.items)
}
