package update

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/taskflowhq/taskflow/internal/session"
	"github.com/taskflowhq/taskflow/internal/suggest"
	"github.com/taskflowhq/taskflow/internal/tasks"
)

type View string

const (
	ViewTasks     View = "Tasks"
	ViewProgress  View = "Progress"
	ViewAnalytics View = "Analytics"
	ViewAssistant View = "Assistant"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks     string
	Progress  string
	Analytics string
	Assistant string
	Help      string
	Quit      string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPriority
	fieldCategory
)

func (f formField) String() string {
	switch f {
	case fieldTitle:
		return "title"
	case fieldDescription:
		return "description"
	case fieldPriority:
		return "priority"
	default:
		return "category"
	}
}

type formState struct {
	active    bool
	editingID string
	title     textinput.Model
	desc      textarea.Model
	priority  int // index into model.Priorities()
	category  int // index into model.Categories()
	field     formField
}

type paletteState struct {
	active bool
	input  textinput.Model
}

type chatEntry struct {
	fromUser bool
	text     string
}

type chatState struct {
	input textinput.Model
	log   []chatEntry
}

type Model struct {
	CurrentView    View
	Filter         tasks.FilterMode
	Cursor         int
	SelectedTaskID string
	Status         StatusBar
	Notifications  []Notification
	HelpVisible    bool
	Quitting       bool
	LastError      error
	Keys           GlobalKeyMap

	store     *tasks.Store
	session   *session.Manager
	responder *suggest.Responder
	cfg       RuntimeConfig
	now       func() time.Time

	form          formState
	palette       paletteState
	chat          chatState
	rateBar       progress.Model
	saveSpinner   spinner.Model
	spinnerActive bool
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ExpireNotificationsMsg prunes notifications older than the configured TTL.
type ExpireNotificationsMsg struct{}

type SaveFlashDoneMsg struct{}

func NewModel(store *tasks.Store, sess *session.Manager) Model {
	return NewModelWithConfig(store, sess, DefaultRuntimeConfig())
}

func NewModelWithConfig(store *tasks.Store, sess *session.Manager, cfg RuntimeConfig) Model {
	m := Model{
		CurrentView: ViewTasks,
		Filter:      tasks.FilterAll,
		store:       store,
		session:     sess,
		cfg:         cfg,
		now:         time.Now,
		Keys: GlobalKeyMap{
			Tasks:     "1",
			Progress:  "2",
			Analytics: "3",
			Assistant: "4",
			Help:      "?",
			Quit:      "q",
		},
	}

	var rng *rand.Rand
	if cfg.AssistantSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.AssistantSeed))
	}
	m.responder = suggest.NewResponder(rng)

	m.form.title = textinput.New()
	m.form.title.Placeholder = "task title"
	m.form.title.CharLimit = 120
	m.form.desc = textarea.New()
	m.form.desc.Placeholder = "notes (optional)"
	m.form.desc.SetHeight(3)
	m.form.desc.ShowLineNumbers = false

	m.palette.input = textinput.New()
	m.palette.input.Placeholder = "add buy milk pri:high cat:personal"

	m.chat.input = textinput.New()
	m.chat.input.Placeholder = "ask the assistant"

	m.rateBar = progress.New(progress.WithDefaultGradient())
	m.saveSpinner = spinner.New()
	m.saveSpinner.Spinner = spinner.Dot
	m.helpModel = help.New()

	m.syncCursor()
	if sess != nil && sess.FirstVisit() {
		m.notify("Welcome", "Welcome to TaskFlow! Start by adding your first task.", "info")
	}
	return m
}

// notify appends a transient notification; expiry is driven by the update
// loop's tick.
func (m *Model) notify(title, body, level string) {
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now(),
	})
}
