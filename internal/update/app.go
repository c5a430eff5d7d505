package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflowhq/taskflow/internal/commands"
	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/stats"
	"github.com/taskflowhq/taskflow/internal/suggest"
	"github.com/taskflowhq/taskflow/internal/tasks"
	"github.com/taskflowhq/taskflow/internal/views"
)

const timestampLayout = "2006-01-02 15:04"

// visibleTasks is the list handed to the task screen: filtered by the active
// mode, then sorted.
func (m Model) visibleTasks() []model.Task {
	if m.store == nil {
		return nil
	}
	return tasks.View(m.store.Tasks(), m.Filter)
}

// syncCursor clamps the cursor to the visible list and refreshes the
// selected id.
func (m *Model) syncCursor() {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		m.Cursor = 0
		m.SelectedTaskID = ""
		return
	}
	if m.Cursor >= len(visible) {
		m.Cursor = len(visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.SelectedTaskID = visible[m.Cursor].ID
}

func (m *Model) setStatus(text string, isErr bool) {
	m.Status = StatusBar{Text: text, IsError: isErr}
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.Cursor++
		m.syncCursor()
	case "k", "up":
		m.Cursor--
		m.syncCursor()
	case "f":
		m.cycleFilter()
	case "a", "n":
		m.startCreateForm()
	case "e":
		if task, err := m.selectedTask(); err == nil {
			m.startEditForm(task)
		}
	case " ", "x":
		if m.SelectedTaskID != "" {
			return m.toggleSelected()
		}
	case "d":
		if m.SelectedTaskID != "" {
			return m.deleteSelected()
		}
	}
	return m, nil
}

func (m Model) selectedTask() (model.Task, error) {
	if m.SelectedTaskID == "" {
		return model.Task{}, tasks.ErrNotFound
	}
	return m.store.Get(m.SelectedTaskID)
}

func (m Model) toggleSelected() (Model, tea.Cmd) {
	task, err := m.store.ToggleComplete(m.SelectedTaskID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	if task.Completed {
		m.setStatus("Task completed! Great job!", false)
	} else {
		m.setStatus("Task marked as pending", false)
	}
	m.notify("Task", m.Status.Text, "success")
	m.syncCursor()
	return m, m.expireNotificationsCmd()
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	if err := m.store.Delete(m.SelectedTaskID); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.setStatus("Task deleted successfully!", false)
	m.notify("Task", m.Status.Text, "info")
	m.syncCursor()
	return m, m.expireNotificationsCmd()
}

func (m *Model) cycleFilter() {
	modes := tasks.FilterModes()
	for i, mode := range modes {
		if mode == m.Filter {
			m.Filter = modes[(i+1)%len(modes)]
			m.Cursor = 0
			m.syncCursor()
			m.setStatus(fmt.Sprintf("filter: %s", m.Filter), false)
			return
		}
	}
	m.Filter = tasks.FilterAll
}

func (m *Model) startCreateForm() {
	m.form.active = true
	m.form.editingID = ""
	m.form.field = fieldTitle
	m.form.priority = indexOfPriority(model.PriorityMedium)
	m.form.category = indexOfCategory(model.CategoryPersonal)
	m.form.title.SetValue("")
	m.form.desc.SetValue("")
	m.form.title.Focus()
	m.form.desc.Blur()
}

func (m *Model) startEditForm(task model.Task) {
	m.startCreateForm()
	m.form.editingID = task.ID
	m.form.title.SetValue(task.Title)
	m.form.desc.SetValue(task.Description)
	m.form.priority = indexOfPriority(task.Priority)
	m.form.category = indexOfCategory(task.Category)
}

func indexOfPriority(p model.Priority) int {
	for i, candidate := range model.Priorities() {
		if candidate == p {
			return i
		}
	}
	return 1 // medium
}

func indexOfCategory(c model.Category) int {
	for i, candidate := range model.Categories() {
		if candidate == c {
			return i
		}
	}
	return 0
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.active = false
		m.setStatus("edit cancelled", false)
		return m, nil
	case "tab":
		m.advanceFormField(1)
		return m, nil
	case "shift+tab":
		m.advanceFormField(-1)
		return m, nil
	case "enter":
		// enter inserts a newline while editing notes
		if m.form.field != fieldDescription {
			return m.submitForm()
		}
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.form.field {
		case fieldPriority:
			n := len(model.Priorities())
			m.form.priority = (m.form.priority + delta + n) % n
			return m, nil
		case fieldCategory:
			n := len(model.Categories())
			m.form.category = (m.form.category + delta + n) % n
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.field {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDescription:
		m.form.desc, cmd = m.form.desc.Update(msg)
	}
	return m, cmd
}

func (m *Model) advanceFormField(delta int) {
	next := (int(m.form.field) + delta + 4) % 4
	m.form.field = formField(next)
	m.form.title.Blur()
	m.form.desc.Blur()
	switch m.form.field {
	case fieldTitle:
		m.form.title.Focus()
	case fieldDescription:
		m.form.desc.Focus()
	}
}

func (m Model) submitForm() (Model, tea.Cmd) {
	priority := model.Priorities()[m.form.priority]
	category := model.Categories()[m.form.category]
	title := m.form.title.Value()
	desc := m.form.desc.Value()

	if m.form.editingID == "" {
		task, err := m.store.Create(title, desc, priority, category)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.setStatus("Task added successfully!", false)
		m.SelectedTaskID = task.ID
	} else {
		_, err := m.store.Update(m.form.editingID, tasks.Fields{
			Title:       &title,
			Description: &desc,
			Priority:    &priority,
			Category:    &category,
		})
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.setStatus("Task updated successfully!", false)
	}
	m.form.active = false
	m.notify("Task", m.Status.Text, "success")
	m.syncCursor()
	m.spinnerActive = true
	return m, tea.Batch(
		m.saveSpinner.Tick,
		tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return SaveFlashDoneMsg{} }),
		m.expireNotificationsCmd(),
	)
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.palette.active = false
		m.palette.input.Blur()
		return m, nil
	case "enter":
		input := m.palette.input.Value()
		m.palette.active = false
		m.palette.input.Blur()
		m.runCommand(input)
		m.syncCursor()
		return m, m.expireNotificationsCmd()
	}
	var cmd tea.Cmd
	m.palette.input, cmd = m.palette.input.Update(msg)
	return m, cmd
}

// runCommand parses and dispatches a palette line against the store and
// session, reporting the outcome on the status bar.
func (m *Model) runCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	result, err := commands.Execute(cmd, commands.Handlers{
		Add:      m.commandAdd,
		Done:     m.commandDone,
		Delete:   m.commandDelete,
		Filter:   m.commandFilter,
		Login:    m.commandLogin,
		Register: m.commandRegister,
		Logout:   m.commandLogout,
		Export:   m.commandExport,
		Clear:    m.commandClear,
	})
	if err != nil {
		m.LastError = err
		m.setStatus(err.Error(), true)
		m.notify("Error", err.Error(), "error")
		return
	}
	m.setStatus(result.Message, false)
	m.notify("Command", result.Message, "info")
}

func (m *Model) commandAdd(args commands.AddArgs) (commands.Result, error) {
	priority := model.PriorityMedium
	if args.Priority != "" {
		priority = model.Priority(args.Priority)
		if !priority.IsValid() {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", args.Priority)}
		}
	}
	category := model.CategoryPersonal
	if args.Category != "" {
		category = model.Category(args.Category)
		if !category.IsValid() {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", args.Category)}
		}
	}
	task, err := m.store.Create(args.Title, "", priority, category)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: "added: " + task.Title}, nil
}

func (m *Model) commandDone(args commands.DoneArgs) (commands.Result, error) {
	id, err := m.resolveTarget(args.Target)
	if err != nil {
		return commands.Result{}, err
	}
	task, err := m.store.ToggleComplete(id)
	if err != nil {
		return commands.Result{}, err
	}
	state := "pending"
	if task.Completed {
		state = "completed"
	}
	return commands.Result{Message: fmt.Sprintf("%s: %s", state, task.Title)}, nil
}

func (m *Model) commandDelete(args commands.DeleteArgs) (commands.Result, error) {
	id, err := m.resolveTarget(args.Target)
	if err != nil {
		return commands.Result{}, err
	}
	task, err := m.store.Get(id)
	if err != nil {
		return commands.Result{}, err
	}
	if err := m.store.Delete(id); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: "deleted: " + task.Title}, nil
}

func (m *Model) commandFilter(args commands.FilterArgs) (commands.Result, error) {
	mode := tasks.FilterMode(args.Mode)
	known := false
	for _, candidate := range tasks.FilterModes() {
		if candidate == mode {
			known = true
		}
	}
	if !known {
		// unknown modes render as "all", but the palette is explicit about it
		mode = tasks.FilterAll
	}
	m.Filter = mode
	m.Cursor = 0
	return commands.Result{Message: fmt.Sprintf("filter: %s", mode)}, nil
}

func (m *Model) commandLogin(args commands.LoginArgs) (commands.Result, error) {
	user, err := m.session.Login(args.Email, args.Password)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("Welcome back, %s!", user.Name)}, nil
}

func (m *Model) commandRegister(args commands.RegisterArgs) (commands.Result, error) {
	user, err := m.session.Register(args.Name, args.Email, args.Password, args.Confirm)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("Welcome to TaskFlow, %s!", user.Name)}, nil
}

func (m *Model) commandLogout() (commands.Result, error) {
	m.session.Logout()
	return commands.Result{Message: "You have been logged out."}, nil
}

func (m *Model) commandExport() (commands.Result, error) {
	out, err := m.store.Export()
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("exported %d tasks (%d bytes)", m.store.Len(), len(out))}, nil
}

func (m *Model) commandClear() (commands.Result, error) {
	n := m.store.Len()
	m.store.Clear()
	m.Cursor = 0
	return commands.Result{Message: fmt.Sprintf("cleared %d tasks", n)}, nil
}

// resolveTarget accepts a full task id or a unique prefix of one.
func (m *Model) resolveTarget(target string) (string, error) {
	if _, err := m.store.Get(target); err == nil {
		return target, nil
	}
	match := ""
	for _, t := range m.store.Tasks() {
		if strings.HasPrefix(t.ID, target) {
			if match != "" {
				return "", &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("ambiguous task id: %s", target)}
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", tasks.ErrNotFound
	}
	return match, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chat.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chat.input.Value())
		if text == "" {
			return m, nil
		}
		m.chat.input.SetValue("")
		m.chat.log = append(m.chat.log, chatEntry{fromUser: true, text: text})
		reply := m.responder.Reply(text, m.store.Tasks())
		m.chat.log = append(m.chat.log, chatEntry{fromUser: false, text: reply})
		return m, nil
	}
	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m Model) expireNotificationsCmd() tea.Cmd {
	ttl := time.Duration(m.cfg.NotificationSeconds) * time.Second
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg { return ExpireNotificationsMsg{} })
}

func (m *Model) expireNotifications() {
	ttl := time.Duration(m.cfg.NotificationSeconds) * time.Second
	cutoff := m.now().Add(-ttl)
	kept := m.Notifications[:0]
	for _, n := range m.Notifications {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	m.Notifications = kept
}

func taskItemData(t model.Task) views.TaskItemData {
	return views.TaskItemData{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		CategoryRaw: string(t.Category),
		Icon:        t.Category.Icon(),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(timestampLayout),
		UpdatedAt:   t.UpdatedAt.Format(timestampLayout),
	}
}

func (m Model) renderTasksPane() string {
	visible := m.visibleTasks()
	items := make([]views.TaskItemData, 0, len(visible))
	for _, t := range visible {
		items = append(items, taskItemData(t))
	}
	return views.RenderTaskList(views.TaskListData{
		Filter:     string(m.Filter),
		Items:      items,
		SelectedID: m.SelectedTaskID,
	})
}

func (m Model) renderTasksSidePane() string {
	if m.form.active {
		return views.RenderTaskForm(views.FormData{
			EditingID:   m.form.editingID,
			TitleView:   m.form.title.View(),
			DescView:    m.form.desc.View(),
			Priority:    string(model.Priorities()[m.form.priority]),
			Category:    string(model.Categories()[m.form.category]),
			ActiveField: m.form.field.String(),
		})
	}
	task, err := m.selectedTask()
	if err != nil {
		return views.RenderTaskDetail(views.TaskDetailData{Empty: "detail:\n(no selection)"})
	}
	item := taskItemData(task)
	return views.RenderTaskDetail(views.TaskDetailData{Item: &item})
}

func (m Model) renderProgressPane() string {
	snapshot := m.store.Tasks()
	summary := stats.Counts(snapshot)
	hist := stats.CategoryHistogram(snapshot)
	categories := make([]views.CategoryBarData, 0, len(hist))
	for _, c := range hist {
		categories = append(categories, views.CategoryBarData{
			Label: string(c.Category),
			Icon:  c.Category.Icon(),
			Count: c.Count,
		})
	}
	return views.RenderProgressPanel(views.ProgressData{
		Completed:      summary.Completed,
		Pending:        summary.Pending,
		Total:          summary.Total,
		CompletionRate: summary.CompletionRate,
		RateBarView:    m.rateBar.ViewAs(float64(summary.CompletionRate) / 100),
		Streak:         stats.Streak(snapshot, m.now()),
		Categories:     categories,
	})
}

func (m Model) renderWeeklyPane() string {
	series := stats.WeeklySeries(m.store.Tasks(), m.now())
	days := make([]views.WeekdayData, 0, len(series))
	for _, d := range series {
		days = append(days, views.WeekdayData{Label: d.Label, Completed: d.Completed, Created: d.Created})
	}
	return views.RenderWeeklyChart(views.WeeklyChartData{Days: days})
}

func (m Model) renderInsightsPane() string {
	insights := stats.Insights(m.store.Tasks(), m.now())
	items := make([]views.InsightData, 0, len(insights))
	for _, in := range insights {
		items = append(items, views.InsightData{Title: in.Title, Detail: in.Detail, Value: in.Value})
	}
	return views.RenderInsights(items)
}

func (m Model) renderSuggestionsPane() string {
	suggestions := suggest.Build(m.store.Tasks(), m.now())
	items := make([]views.SuggestionData, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, views.SuggestionData{Title: s.Title, Detail: s.Detail, Level: string(s.Level)})
	}
	return views.RenderSuggestions(items)
}

func (m Model) renderAssistantPane() string {
	if !m.cfg.AssistantEnabled {
		return "assistant:\n(disabled; set TASKFLOW_ASSISTANT=on to enable)"
	}
	transcript := make([]views.ChatEntryData, 0, len(m.chat.log))
	for _, entry := range m.chat.log {
		transcript = append(transcript, views.ChatEntryData{FromUser: entry.fromUser, Text: entry.text})
	}
	return views.RenderAssistant(views.AssistantData{
		Transcript: transcript,
		InputView:  m.chat.input.View(),
	})
}

func (m Model) renderSessionLine() string {
	data := views.SessionData{}
	if m.session != nil && m.session.LoggedIn() {
		user := m.session.Current()
		data = views.SessionData{LoggedIn: true, Name: user.Name, Email: user.Email}
	}
	return views.RenderSessionLine(data)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderPaletteView() string {
	return views.RenderCommandPalette(m.palette.active, m.palette.input.View())
}
