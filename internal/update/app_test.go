package update

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/session"
	"github.com/taskflowhq/taskflow/internal/storage"
	"github.com/taskflowhq/taskflow/internal/tasks"
)

func testAnchor() time.Time {
	return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
}

type testClock struct {
	current time.Time
}

func (c *testClock) now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

func newTestModel() (Model, *tasks.Store) {
	shim := storage.NewShim(nil)
	clock := &testClock{current: testAnchor()}
	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	store := tasks.NewStoreWithClock(shim, clock.now, nextID)
	sess := session.NewManagerWithClock(shim, clock.now, nextID)
	cfg := DefaultRuntimeConfig()
	cfg.AssistantSeed = 1
	m := NewModelWithConfig(store, sess, cfg)
	m.now = clock.now
	return m, store
}

func typeRunes(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel()
	if m.CurrentView != ViewTasks {
		t.Fatalf("expected default view %q, got %q", ViewTasks, m.CurrentView)
	}
	if m.Filter != tasks.FilterAll {
		t.Fatalf("expected default filter %q, got %q", tasks.FilterAll, m.Filter)
	}
	if m.Keys.Quit != "q" || m.Keys.Help != "?" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
}

func TestWelcomeNotificationOnFirstVisit(t *testing.T) {
	shim := storage.NewShim(nil)
	store := tasks.NewStore(shim)
	sess := session.NewManager(shim)

	m := NewModel(store, sess)
	if len(m.Notifications) != 1 || m.Notifications[0].Title != "Welcome" {
		t.Fatalf("expected welcome notification, got %+v", m.Notifications)
	}

	again := NewModel(store, sess)
	if len(again.Notifications) != 0 {
		t.Fatalf("expected no welcome on revisit, got %+v", again.Notifications)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m, _ := newTestModel()
	next := typeRunes(t, m, "2")
	if next.CurrentView != ViewProgress {
		t.Fatalf("expected progress view, got %q", next.CurrentView)
	}

	next = typeRunes(t, next, "4")
	if next.CurrentView != ViewAssistant {
		t.Fatalf("expected assistant view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(SwitchViewMsg{View: ViewAnalytics})
	next := updated.(Model)
	if next.CurrentView != ViewAnalytics {
		t.Fatalf("expected analytics view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewAnalytics {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m, _ := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestTasksKeyNavigationToggleAndDelete(t *testing.T) {
	m, store := newTestModel()
	older, _ := store.Create("older", "", model.PriorityMedium, model.CategoryWork)
	newer, _ := store.Create("newer", "", model.PriorityMedium, model.CategoryWork)
	m.syncCursor()

	// same priority, so newest-first
	if m.SelectedTaskID != newer.ID {
		t.Fatalf("expected %q selected, got %q", newer.ID, m.SelectedTaskID)
	}

	next := typeRunes(t, m, "j")
	if next.SelectedTaskID != older.ID {
		t.Fatalf("expected %q after j, got %q", older.ID, next.SelectedTaskID)
	}

	next = pressKey(t, next, tea.KeySpace)
	toggled, err := store.Get(older.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("expected %q completed after space, got %+v (%v)", older.ID, toggled, err)
	}

	next = typeRunes(t, next, "d")
	if store.Len() != 1 {
		t.Fatalf("expected 1 task after delete, got %d", store.Len())
	}
	if next.SelectedTaskID != newer.ID {
		t.Fatalf("expected selection back on %q, got %q", newer.ID, next.SelectedTaskID)
	}
}

func TestFilterKeyCycles(t *testing.T) {
	m, _ := newTestModel()
	next := typeRunes(t, m, "f")
	if next.Filter != tasks.FilterPending {
		t.Fatalf("expected pending filter, got %q", next.Filter)
	}
	if next.Status.Text != "filter: pending" {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	next = typeRunes(t, next, "f")
	next = typeRunes(t, next, "f")
	next = typeRunes(t, next, "f")
	if next.Filter != tasks.FilterAll {
		t.Fatalf("expected cycle back to all, got %q", next.Filter)
	}
}

func TestFormCreateTaskFlow(t *testing.T) {
	m, store := newTestModel()
	next := typeRunes(t, m, "a")
	if !next.form.active {
		t.Fatal("expected form active after a")
	}

	next = typeRunes(t, next, "Ship it")
	next = pressKey(t, next, tea.KeyEnter)
	if next.form.active {
		t.Fatal("expected form closed after submit")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", store.Len())
	}
	created := store.Tasks()[0]
	if created.Title != "Ship it" {
		t.Fatalf("unexpected title: %q", created.Title)
	}
	if created.Priority != model.PriorityMedium || created.Category != model.CategoryPersonal {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if next.Status.Text != "Task added successfully!" {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestFormRejectsBlankTitle(t *testing.T) {
	m, store := newTestModel()
	next := typeRunes(t, m, "a")
	next = pressKey(t, next, tea.KeyEnter)
	if !next.form.active {
		t.Fatal("expected form still open after invalid submit")
	}
	if store.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", store.Len())
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestFormArrowsCyclePriorityAndCategory(t *testing.T) {
	m, store := newTestModel()
	next := typeRunes(t, m, "a")
	next = typeRunes(t, next, "Review budget")

	next = pressKey(t, next, tea.KeyTab) // description
	next = pressKey(t, next, tea.KeyTab) // priority
	next = pressKey(t, next, tea.KeyRight)
	if model.Priorities()[next.form.priority] != model.PriorityLow {
		t.Fatalf("expected low priority, got %q", model.Priorities()[next.form.priority])
	}

	next = pressKey(t, next, tea.KeyTab) // category
	next = pressKey(t, next, tea.KeyRight)
	if model.Categories()[next.form.category] != model.CategoryWork {
		t.Fatalf("expected work category, got %q", model.Categories()[next.form.category])
	}

	next = pressKey(t, next, tea.KeyEnter)
	created := store.Tasks()[0]
	if created.Priority != model.PriorityLow || created.Category != model.CategoryWork {
		t.Fatalf("unexpected cycled values: %+v", created)
	}
}

func TestFormEditUpdatesTask(t *testing.T) {
	m, store := newTestModel()
	task, _ := store.Create("draft", "", model.PriorityLow, model.CategoryStudy)
	m.syncCursor()

	next := typeRunes(t, m, "e")
	if !next.form.active || next.form.editingID != task.ID {
		t.Fatalf("expected edit form for %q, got %+v", task.ID, next.form)
	}
	next = typeRunes(t, next, " v2")
	next = pressKey(t, next, tea.KeyEnter)

	edited, _ := store.Get(task.ID)
	if edited.Title != "draft v2" {
		t.Fatalf("unexpected title after edit: %q", edited.Title)
	}
	if edited.CreatedAt != task.CreatedAt {
		t.Fatal("expected createdAt unchanged by edit")
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m, store := newTestModel()
	next := typeRunes(t, m, "/")
	if !next.palette.active {
		t.Fatal("expected palette active after /")
	}

	next.palette.input.SetValue("add Ship report pri:high cat:work")
	next = pressKey(t, next, tea.KeyEnter)
	if next.palette.active {
		t.Fatal("expected palette closed after enter")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", store.Len())
	}
	created := store.Tasks()[0]
	if created.Title != "Ship report" || created.Priority != model.PriorityHigh || created.Category != model.CategoryWork {
		t.Fatalf("unexpected task from palette: %+v", created)
	}
	if !strings.Contains(next.Status.Text, "added") {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestPaletteDoneByIDPrefix(t *testing.T) {
	m, store := newTestModel()
	task, _ := store.Create("finish report", "", model.PriorityHigh, model.CategoryWork)

	next := typeRunes(t, m, "/")
	next.palette.input.SetValue("done " + task.ID[:6])
	next = pressKey(t, next, tea.KeyEnter)

	toggled, _ := store.Get(task.ID)
	if !toggled.Completed {
		t.Fatalf("expected task completed via prefix, got %+v", toggled)
	}
}

func TestPaletteRejectsUnknownCommand(t *testing.T) {
	m, store := newTestModel()
	next := typeRunes(t, m, "/")
	next.palette.input.SetValue("frobnicate now")
	next = pressKey(t, next, tea.KeyEnter)

	if store.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", store.Len())
	}
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "unknown_command") {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestPaletteLoginLogout(t *testing.T) {
	m, _ := newTestModel()
	next := typeRunes(t, m, "/")
	next.palette.input.SetValue("login maya@example.com secret123")
	next = pressKey(t, next, tea.KeyEnter)

	if !strings.Contains(next.Status.Text, "Welcome back, maya!") {
		t.Fatalf("unexpected login status: %+v", next.Status)
	}

	next = typeRunes(t, next, "/")
	next.palette.input.SetValue("logout")
	next = pressKey(t, next, tea.KeyEnter)
	if next.Status.Text != "You have been logged out." {
		t.Fatalf("unexpected logout status: %+v", next.Status)
	}
}

func TestAssistantChatRoundTrip(t *testing.T) {
	m, store := newTestModel()
	store.Create("deep work", "", model.PriorityHigh, model.CategoryWork)

	next := typeRunes(t, m, "4")
	next = pressKey(t, next, tea.KeyEnter) // focus chat input
	if !next.chat.input.Focused() {
		t.Fatal("expected chat input focused")
	}

	next = typeRunes(t, next, "what is important today?")
	next = pressKey(t, next, tea.KeyEnter)
	if len(next.chat.log) != 2 {
		t.Fatalf("expected question and reply, got %d entries", len(next.chat.log))
	}
	if next.chat.log[0].text != "what is important today?" || !next.chat.log[0].fromUser {
		t.Fatalf("unexpected transcript head: %+v", next.chat.log[0])
	}
	if !strings.Contains(next.chat.log[1].text, "1 high priority tasks waiting") {
		t.Fatalf("expected high priority reply, got %q", next.chat.log[1].text)
	}
}

func TestNotificationExpiry(t *testing.T) {
	m, _ := newTestModel()
	m.Notifications = nil
	current := testAnchor()
	m.now = func() time.Time { return current }
	m.notify("Task", "saved", "info")

	current = current.Add(time.Second)
	updated, _ := m.Update(ExpireNotificationsMsg{})
	next := updated.(Model)
	if len(next.Notifications) != 1 {
		t.Fatalf("expected notification kept within ttl, got %+v", next.Notifications)
	}

	current = current.Add(10 * time.Second)
	updated, _ = next.Update(ExpireNotificationsMsg{})
	next = updated.(Model)
	if len(next.Notifications) != 0 {
		t.Fatalf("expected notifications expired, got %+v", next.Notifications)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m, store := newTestModel()
	store.Create("write release notes", "", model.PriorityHigh, model.CategoryWork)
	m.syncCursor()
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "view: Tasks") {
		t.Fatalf("expected view header in output: %q", out)
	}
	if !strings.Contains(out, "write release notes") {
		t.Fatalf("expected task title in output: %q", out)
	}
	if !strings.Contains(out, "all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "guest session") {
		t.Fatalf("expected guest session line in output: %q", out)
	}
}

func TestViewQuitting(t *testing.T) {
	m, _ := newTestModel()
	m.Quitting = true
	if m.View() != "goodbye\n" {
		t.Fatalf("unexpected quit view: %q", m.View())
	}
}
