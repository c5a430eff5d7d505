package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflowhq/taskflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if len(m.Notifications) > 0 {
		cmds = append(cmds, m.expireNotificationsCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case SwitchViewMsg:
		switch msg.View {
		case ViewTasks, ViewProgress, ViewAnalytics, ViewAssistant:
			m.CurrentView = msg.View
			m.syncCursor()
		}
		return m, nil

	case SetStatusMsg:
		m.setStatus(msg.Text, msg.IsError)
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = msg.Err
		m.setStatus(msg.Err.Error(), true)
		m.notify("Error", msg.Err.Error(), "error")
		return m, m.expireNotificationsCmd()

	case ExpireNotificationsMsg:
		m.expireNotifications()
		if len(m.Notifications) > 0 {
			return m, m.expireNotificationsCmd()
		}
		return m, nil

	case SaveFlashDoneMsg:
		m.spinnerActive = false
		return m, nil

	case spinner.TickMsg:
		if !m.spinnerActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.saveSpinner, cmd = m.saveSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// modal surfaces take the keyboard before global bindings
	if m.palette.active {
		next, cmd := m.handlePaletteKey(msg)
		return next, cmd
	}
	if m.form.active {
		next, cmd := m.handleFormKey(msg)
		return next, cmd
	}
	if m.CurrentView == ViewAssistant && m.chat.input.Focused() {
		next, cmd := m.handleChatKey(msg)
		return next, cmd
	}

	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Tasks:
		m.CurrentView = ViewTasks
		m.syncCursor()
		return m, nil
	case m.Keys.Progress:
		m.CurrentView = ViewProgress
		return m, nil
	case m.Keys.Analytics:
		m.CurrentView = ViewAnalytics
		return m, nil
	case m.Keys.Assistant:
		m.CurrentView = ViewAssistant
		return m, nil
	case "/":
		m.palette.active = true
		m.palette.input.SetValue("")
		m.palette.input.Focus()
		return m, textinput.Blink
	}

	switch m.CurrentView {
	case ViewTasks:
		next, cmd := m.handleTasksKey(msg)
		return next, cmd
	case ViewAssistant:
		if m.cfg.AssistantEnabled && (msg.String() == "i" || msg.String() == "enter") {
			m.chat.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "goodbye\n"
	}

	var left, right string
	switch m.CurrentView {
	case ViewTasks:
		left = m.renderTasksPane()
		right = m.renderTasksSidePane()
	case ViewProgress:
		left = m.renderProgressPane()
		right = m.renderWeeklyPane()
	case ViewAnalytics:
		left = m.renderInsightsPane()
		right = m.renderSuggestionsPane()
	case ViewAssistant:
		left = m.renderAssistantPane()
		right = m.renderSuggestionsPane()
	}

	status := m.Status.Text
	if m.Status.IsError && status != "" && !strings.Contains(strings.ToLower(status), "error") {
		status = "error: " + status
	}
	if m.spinnerActive {
		status = m.saveSpinner.View() + " saving… " + status
	}

	footer := fmt.Sprintf("%s tasks · %s progress · %s analytics · %s assistant · / command · %s help · %s quit",
		m.Keys.Tasks, m.Keys.Progress, m.Keys.Analytics, m.Keys.Assistant, m.Keys.Help, m.Keys.Quit)

	out := views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("taskflow | view: %s | %s", m.CurrentView, m.renderSessionLine()),
		LeftPane:     left,
		RightPane:    right,
		StatusLine:   status,
		Footer:       footer,
		Notification: m.renderNotificationsView(),
	})
	if pal := m.renderPaletteView(); pal != "" {
		out += "\n" + pal
	}
	out += m.renderHelpIfVisible()
	return out
}
