package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID          string
	Title       string
	Description string
	Priority    string
	CategoryRaw string
	Icon        string
	Completed   bool
	CreatedAt   string
	UpdatedAt   string
}

type TaskListData struct {
	Filter     string
	Items      []TaskItemData
	SelectedID string
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tasks (%s):\n", data.Filter)
	b.WriteString("actions: [a]dd [e]dit [space]toggle [d]elete [f]ilter\n")
	if len(data.Items) == 0 {
		b.WriteString("\nno tasks here yet — press a to add one")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.ID == data.SelectedID {
			cursor = "> "
		}
		box := "[ ]"
		title := item.Title
		if item.Completed {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		badge := priorityStyle(item.Priority).Render(item.Priority)
		fmt.Fprintf(&b, "%s%s %s %s %s %s\n", cursor, box, item.Icon, title, badge, item.CategoryRaw)
	}
	return strings.TrimSpace(b.String())
}

type TaskDetailData struct {
	Item  *TaskItemData
	Empty string
}

func RenderTaskDetail(data TaskDetailData) string {
	if data.Item == nil {
		return data.Empty
	}
	item := data.Item
	var b strings.Builder
	b.WriteString("detail:\n")
	fmt.Fprintf(&b, "title: %s\n", item.Title)
	if item.Description != "" {
		fmt.Fprintf(&b, "notes: %s\n", item.Description)
	}
	fmt.Fprintf(&b, "priority: %s\n", priorityStyle(item.Priority).Render(item.Priority))
	fmt.Fprintf(&b, "category: %s %s\n", item.Icon, item.CategoryRaw)
	state := "pending"
	if item.Completed {
		state = "completed"
	}
	fmt.Fprintf(&b, "state: %s\n", state)
	fmt.Fprintf(&b, "created: %s\n", item.CreatedAt)
	if item.UpdatedAt != item.CreatedAt {
		fmt.Fprintf(&b, "updated: %s\n", item.UpdatedAt)
	}
	return strings.TrimSpace(b.String())
}

type FormData struct {
	EditingID   string
	TitleView   string
	DescView    string
	Priority    string
	Category    string
	ActiveField string
}

func RenderTaskForm(data FormData) string {
	var b strings.Builder
	if data.EditingID == "" {
		b.WriteString("new task:\n")
	} else {
		b.WriteString("edit task:\n")
	}
	b.WriteString("actions: [tab]next field [enter]save [esc]cancel\n\n")
	fmt.Fprintf(&b, "%s title: %s\n", fieldMarker(data.ActiveField, "title"), data.TitleView)
	fmt.Fprintf(&b, "%s notes: %s\n", fieldMarker(data.ActiveField, "description"), data.DescView)
	fmt.Fprintf(&b, "%s priority: %s (←/→)\n", fieldMarker(data.ActiveField, "priority"), priorityStyle(data.Priority).Render(data.Priority))
	fmt.Fprintf(&b, "%s category: %s (←/→)\n", fieldMarker(data.ActiveField, "category"), data.Category)
	return strings.TrimSpace(b.String())
}

func fieldMarker(active, field string) string {
	if active == field {
		return ">"
	}
	return " "
}

type ProgressData struct {
	Completed      int
	Pending        int
	Total          int
	CompletionRate int
	RateBarView    string
	Streak         int
	Categories     []CategoryBarData
}

type CategoryBarData struct {
	Label string
	Icon  string
	Count int
}

func RenderProgressPanel(data ProgressData) string {
	var b strings.Builder
	b.WriteString("progress:\n")
	fmt.Fprintf(&b, "completed: %d  pending: %d  total: %d\n", data.Completed, data.Pending, data.Total)
	fmt.Fprintf(&b, "completion: %d%%\n%s\n", data.CompletionRate, data.RateBarView)
	fmt.Fprintf(&b, "streak: %d day(s)\n\n", data.Streak)
	b.WriteString("categories:\n")
	max := 0
	for _, c := range data.Categories {
		if c.Count > max {
			max = c.Count
		}
	}
	for _, c := range data.Categories {
		fmt.Fprintf(&b, "%s %-8s %s %d\n", c.Icon, c.Label, bar(c.Count, max, 20), c.Count)
	}
	return strings.TrimSpace(b.String())
}

type WeekdayData struct {
	Label     string
	Completed int
	Created   int
}

type WeeklyChartData struct {
	Days []WeekdayData
}

// RenderWeeklyChart draws the trailing week as paired horizontal bars,
// completions over creations.
func RenderWeeklyChart(data WeeklyChartData) string {
	max := 1
	for _, d := range data.Days {
		if d.Completed > max {
			max = d.Completed
		}
		if d.Created > max {
			max = d.Created
		}
	}
	var b strings.Builder
	b.WriteString("weekly activity (✔ done, + created):\n")
	for _, d := range data.Days {
		fmt.Fprintf(&b, "%s ✔ %s %d\n", d.Label, bar(d.Completed, max, 24), d.Completed)
		fmt.Fprintf(&b, "    + %s %d\n", bar(d.Created, max, 24), d.Created)
	}
	return strings.TrimSpace(b.String())
}

func bar(value, max, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

type InsightData struct {
	Title  string
	Detail string
	Value  string
}

func RenderInsights(items []InsightData) string {
	var b strings.Builder
	b.WriteString("insights:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s: %s\n  %s\n", item.Title, item.Value, item.Detail)
	}
	return strings.TrimSpace(b.String())
}

type SuggestionData struct {
	Title  string
	Detail string
	Level  string
}

func RenderSuggestions(items []SuggestionData) string {
	var b strings.Builder
	b.WriteString("suggestions:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s\n  %s\n", priorityStyle(item.Level).Render("▍"), item.Title, item.Detail)
	}
	return strings.TrimSpace(b.String())
}

type ChatEntryData struct {
	FromUser bool
	Text     string
}

type AssistantData struct {
	Transcript []ChatEntryData
	InputView  string
}

func RenderAssistant(data AssistantData) string {
	var b strings.Builder
	b.WriteString("assistant:\n")
	if len(data.Transcript) == 0 {
		b.WriteString(RenderMarkdown("Ask me about **priorities**, **motivation**, or say you are *stuck*.") + "\n")
	}
	for _, entry := range data.Transcript {
		if entry.FromUser {
			fmt.Fprintf(&b, "you: %s\n", entry.Text)
		} else {
			fmt.Fprintf(&b, "bot: %s\n", entry.Text)
		}
	}
	b.WriteString("\n" + data.InputView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command palette:\n" + inputView + "\ncommands: add done delete filter login register logout export clear"
}

func RenderNotification(level, body string) string {
	return fmt.Sprintf("[%s] %s", level, body)
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "help (%s):\n", data.CurrentView)
	for _, line := range data.Bindings {
		b.WriteString(line + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

type SessionData struct {
	LoggedIn bool
	Name     string
	Email    string
}

func RenderSessionLine(data SessionData) string {
	if !data.LoggedIn {
		return "guest session — /login <email> <password> or /register <name> <email> <password> <confirm>"
	}
	return fmt.Sprintf("signed in as %s <%s>", data.Name, data.Email)
}
