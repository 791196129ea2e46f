package tui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/services/task"
)

// Focus positions inside the task form
const (
	focusTitle = iota
	focusContent
)

// taskForm edits a task's title and content. Status and the priority flags
// are toggled from normal mode, so the form carries them through untouched.
type taskForm struct {
	editingID int64
	groupID   int64
	status    models.Status
	important bool
	urgent    bool

	title   textinput.Model
	content textarea.Model
	focus   int
}

// newTaskForm builds a form for a new task in the given group
func newTaskForm(groupID int64, important, urgent bool) *taskForm {
	f := &taskForm{
		groupID:   groupID,
		status:    models.StatusTodo,
		important: important,
		urgent:    urgent,
	}
	f.initInputs("", "")
	return f
}

// editTaskForm builds a form preloaded with an existing task
func editTaskForm(t *models.Task) *taskForm {
	f := &taskForm{
		editingID: t.ID,
		groupID:   t.GroupID,
		status:    t.Status,
		important: t.Important,
		urgent:    t.Urgent,
	}
	f.initInputs(t.Title, t.Content)
	return f
}

func (f *taskForm) initInputs(title, content string) {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.SetValue(title)
	f.title = ti

	ta := textarea.New()
	ta.Placeholder = "Notes (markdown)"
	ta.SetHeight(6)
	ta.SetValue(content)
	f.content = ta
}

// focusCmd focuses the active field and blurs the other
func (f *taskForm) focusCmd() tea.Cmd {
	if f.focus == focusTitle {
		f.content.Blur()
		return f.title.Focus()
	}
	f.title.Blur()
	return f.content.Focus()
}

// update forwards a message to the focused field
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == focusTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

// request assembles the upsert request from the form state
func (f *taskForm) request() task.UpsertTaskRequest {
	return task.UpsertTaskRequest{
		ID:        f.editingID,
		GroupID:   f.groupID,
		Title:     f.title.Value(),
		Content:   f.content.Value(),
		Status:    string(f.status),
		Important: f.important,
		Urgent:    f.urgent,
	}
}

// groupInput is the one-line prompt for creating or renaming a group
type groupInput struct {
	editingID int64
	prompt    string
	input     textinput.Model
}

func newGroupInput(editingID int64, prompt, value string) *groupInput {
	ti := textinput.New()
	ti.Placeholder = "Group name"
	ti.SetValue(value)
	return &groupInput{editingID: editingID, prompt: prompt, input: ti}
}

func (g *groupInput) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

// openAddTask opens an empty task form. In cards mode the new task starts
// in the selected quadrant.
func (m Model) openAddTask() (tea.Model, tea.Cmd) {
	groupID := m.defaultGroupID()
	if groupID == 0 {
		m.setStatus("create a group before adding tasks")
		return m, nil
	}

	important, urgent := false, false
	if m.settings.ViewMode == models.ViewModeCards {
		important = m.pane == models.QuadrantUrgentImportant || m.pane == models.QuadrantImportant
		urgent = m.pane == models.QuadrantUrgentImportant || m.pane == models.QuadrantUrgent
	}

	m.form = newTaskForm(groupID, important, urgent)
	m.mode = ModeTaskForm
	return m, m.form.focusCmd()
}

// openEditTask opens the form preloaded with the selected task
func (m Model) openEditTask() (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}
	m.form = editTaskForm(t)
	m.mode = ModeTaskForm
	return m, m.form.focusCmd()
}

// defaultGroupID picks the group a new task lands in: the filtered group,
// else the first one
func (m *Model) defaultGroupID() int64 {
	if g := m.currentGroup(); g != nil {
		return g.ID
	}
	if len(m.groups) > 0 {
		return m.groups[0].ID
	}
	return 0
}

// handleTaskFormKey handles keys while the task form is open
func (m Model) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = ModeNormal
		return m, nil
	case m.cfg.KeyMappings.SaveForm:
		return m.submitTaskForm()
	case "tab", "shift+tab":
		if m.form.focus == focusTitle {
			m.form.focus = focusContent
		} else {
			m.form.focus = focusTitle
		}
		return m, m.form.focusCmd()
	case "enter":
		// Enter moves on from the title; inside the notes it's a newline
		if m.form.focus == focusTitle {
			m.form.focus = focusContent
			return m, m.form.focusCmd()
		}
	}
	return m, m.form.update(msg)
}

// submitTaskForm validates through the service and closes the form
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	saved, err := m.svcs.Tasks.UpsertTask(m.ctx, m.form.request())
	if err != nil {
		// Leave the form open so nothing typed is lost
		m.setStatus(userFacingError("save task", err))
		return m, nil
	}

	m.form = nil
	m.mode = ModeNormal
	m.setStatus("saved " + strings.TrimSpace(saved.Title))
	if err := m.refresh(); err != nil {
		m.reportError("reload board", err)
	}
	return m, nil
}

// openCreateGroup prompts for a new group name
func (m Model) openCreateGroup() (tea.Model, tea.Cmd) {
	m.input = newGroupInput(0, "New group", "")
	m.mode = ModeGroupInput
	return m, m.input.input.Focus()
}

// openRenameGroup prompts for a new name for the filtered group
func (m Model) openRenameGroup() (tea.Model, tea.Cmd) {
	g := m.currentGroup()
	if g == nil {
		m.setStatus("select a group to rename it")
		return m, nil
	}
	m.input = newGroupInput(g.ID, "Rename group", g.Name)
	m.mode = ModeGroupInput
	return m, m.input.input.Focus()
}

// handleGroupInputKey handles keys while the group prompt is open
func (m Model) handleGroupInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input = nil
		m.mode = ModeNormal
		return m, nil
	case "enter":
		return m.submitGroupInput()
	}
	return m, m.input.update(msg)
}

// submitGroupInput creates or renames the group through the service
func (m Model) submitGroupInput() (tea.Model, tea.Cmd) {
	saved, err := m.svcs.Groups.UpsertGroup(m.ctx, m.input.editingID, m.input.input.Value())
	if err != nil {
		m.setStatus(userFacingError("save group", err))
		return m, nil
	}

	m.input = nil
	m.mode = ModeNormal
	m.setStatus("saved group " + saved.Name)
	if err := m.refresh(); err != nil {
		m.reportError("reload board", err)
	}
	return m, nil
}
