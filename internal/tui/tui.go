// Package tui provides a Bubble Tea terminal user interface for Turbo Garage.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/turbogarage/garage/internal/collection"
	"github.com/turbogarage/garage/internal/config"
	"github.com/turbogarage/garage/internal/model"
	"github.com/turbogarage/garage/internal/persist"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// State represents the current UI state.
//
// Navigation is two-level: StateCategories lists categories,
// StateItems shows one category's cars. StateForm and StateConfirm are
// overlays entered from either level and return to where they came from.
type State int

const (
	StateCategories State = iota
	StateItems
	StateForm
	StateConfirm
)

// Form field order within the add/edit form.
const (
	fieldName = iota
	fieldYear
	fieldCollection
	fieldNumber
	fieldVariant
	fieldColor
	fieldImage
	fieldCount
)

// eventLog keeps the most recent change events for display.
type eventLog struct {
	entries []collection.ChangeEvent
}

func (l *eventLog) add(e collection.ChangeEvent) {
	l.entries = append(l.entries, e)
	if len(l.entries) > 5 {
		l.entries = l.entries[len(l.entries)-5:]
	}
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	manager  *collection.Manager
	settings *config.Settings
	events   *eventLog

	// Category level
	cursor int

	// Item level
	category   string
	itemCursor int
	filterMode model.AcquisitionFilter

	// Search
	searchInput textinput.Model
	searching   bool

	// Add/edit form
	inputs    []textinput.Model
	focused   int
	editingID string
	formErr   string

	// Delete confirmation
	deleteTarget model.Car

	width  int
	height int
}

// NewModel creates a new TUI model around an initialized Manager.
func NewModel(manager *collection.Manager, settings *config.Settings, events *eventLog) Model {
	search := textinput.New()
	search.Placeholder = "search cars..."
	search.CharLimit = 80
	search.Width = 30

	inputs := make([]textinput.Model, fieldCount)
	labels := []string{"name", "year", "collection", "series number", "variant", "color", "image file path"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}

	return Model{
		state:       StateCategories,
		manager:     manager,
		settings:    settings,
		events:      events,
		filterMode:  model.FilterAll,
		searchInput: search,
		inputs:      inputs,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateCategories, StateItems:
			return m.updateBrowse(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateConfirm:
			return m.updateConfirm(msg)
		}
	}

	return m, nil
}

// updateBrowse handles keys for both browse levels.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.searchInput.Blur()
			m.clampCursors()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.clampCursors()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == StateCategories && m.cursor > 0 {
			m.cursor--
		} else if m.state == StateItems && m.itemCursor > 0 {
			m.itemCursor--
		}

	case "down", "j":
		if m.state == StateCategories && m.cursor < len(m.manager.Categories())-1 {
			m.cursor++
		} else if m.state == StateItems && m.itemCursor < len(m.visibleCars())-1 {
			m.itemCursor++
		}

	case "enter":
		if m.state == StateCategories {
			cats := m.manager.Categories()
			if len(cats) > 0 {
				m.category = cats[m.cursor]
				m.itemCursor = 0
				m.state = StateItems
			}
		}

	case "esc", "backspace":
		if m.state == StateItems {
			m.category = ""
			m.state = StateCategories
		}

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.filterMode = nextFilter(m.filterMode)
		m.clampCursors()

	case "a":
		return m.openForm(model.Car{
			Year:       m.settings.DefaultYear,
			Collection: m.category,
		}, "")

	case "e":
		if car, ok := m.selectedCar(); ok {
			return m.openForm(car, car.ID)
		}

	case "d":
		if car, ok := m.selectedCar(); ok {
			m.deleteTarget = car
			m.state = StateConfirm
		}

	case "o", " ":
		if car, ok := m.selectedCar(); ok {
			m.manager.ToggleAcquired(car.ID)
		}

	case "f":
		if car, ok := m.selectedCar(); ok {
			m.manager.ToggleFavorite(car.ID)
		}
	}

	return m, nil
}

// updateForm handles keys inside the add/edit form.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = m.returnState()
		m.formErr = ""
		return m, nil

	case "tab", "down":
		m.focusField((m.focused + 1) % fieldCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.focusField((m.focused + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case "enter":
		if m.focused < fieldCount-1 {
			m.focusField(m.focused + 1)
			return m, textinput.Blink
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// updateConfirm handles the delete confirmation prompt.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.manager.Delete(m.deleteTarget.ID, nil)
		m.clampCursors()
	case "ctrl+c":
		return m, tea.Quit
	}
	// Any other key denies; either way the prompt closes.
	m.deleteTarget = model.Car{}
	m.state = m.returnState()
	return m, nil
}

// openForm pre-fills and shows the add/edit form.
func (m Model) openForm(car model.Car, editingID string) (tea.Model, tea.Cmd) {
	m.editingID = editingID
	m.formErr = ""

	m.inputs[fieldName].SetValue(car.Name)
	if car.Year != 0 {
		m.inputs[fieldYear].SetValue(strconv.Itoa(car.Year))
	} else {
		m.inputs[fieldYear].SetValue("")
	}
	m.inputs[fieldCollection].SetValue(car.Collection)
	m.inputs[fieldNumber].SetValue(car.Number)
	m.inputs[fieldVariant].SetValue(car.Variant)
	m.inputs[fieldColor].SetValue(car.Color)
	m.inputs[fieldImage].SetValue("")

	m.focusField(fieldName)
	m.state = StateForm
	return m, textinput.Blink
}

// submitForm validates and commits the form.
//
// Validation failure keeps the form open for correction; the store is
// untouched either way until Save succeeds.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	year, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldYear].Value()))

	car := model.Car{
		ID:         m.editingID,
		Name:       strings.TrimSpace(m.inputs[fieldName].Value()),
		Year:       year,
		Collection: strings.TrimSpace(m.inputs[fieldCollection].Value()),
		Number:     strings.TrimSpace(m.inputs[fieldNumber].Value()),
		Variant:    strings.TrimSpace(m.inputs[fieldVariant].Value()),
		Color:      strings.TrimSpace(m.inputs[fieldColor].Value()),
	}

	if m.editingID != "" {
		if prev, ok := m.manager.Get(m.editingID); ok {
			car.Favorite = prev.Favorite
			car.Acquired = prev.Acquired
			car.Image = prev.Image
		}
	}

	imagePath := strings.TrimSpace(m.inputs[fieldImage].Value())
	if imagePath != "" {
		uri, err := m.manager.AttachImage(imagePath)
		if err != nil {
			m.formErr = fmt.Sprintf("image: %v", err)
			return m, nil
		}
		car.Image = uri
	}

	if _, err := m.manager.Save(car); err != nil {
		m.formErr = "name, year and collection are required"
		return m, nil
	}

	m.editingID = ""
	m.formErr = ""
	m.state = m.returnState()
	m.clampCursors()
	return m, nil
}

func (m *Model) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// returnState is where overlays go back to.
func (m Model) returnState() State {
	if m.category != "" {
		return StateItems
	}
	return StateCategories
}

// visibleCars applies the active filters for the item level.
func (m Model) visibleCars() []model.Car {
	return m.manager.Filter(collection.Query{
		Category: m.category,
		Filter:   m.filterMode,
		Search:   m.searchInput.Value(),
	})
}

func (m Model) selectedCar() (model.Car, bool) {
	if m.state != StateItems {
		return model.Car{}, false
	}
	cars := m.visibleCars()
	if len(cars) == 0 || m.itemCursor >= len(cars) {
		return model.Car{}, false
	}
	return cars[m.itemCursor], true
}

func (m *Model) clampCursors() {
	if n := len(m.manager.Categories()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	if n := len(m.visibleCars()); m.itemCursor >= n {
		if n == 0 {
			m.itemCursor = 0
		} else {
			m.itemCursor = n - 1
		}
	}
}

func nextFilter(f model.AcquisitionFilter) model.AcquisitionFilter {
	switch f {
	case model.FilterAll:
		return model.FilterAcquired
	case model.FilterAcquired:
		return model.FilterNotAcquired
	default:
		return model.FilterAll
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏎  Turbo Garage"))
	b.WriteString("\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n\n")

	switch m.state {
	case StateCategories:
		b.WriteString(m.viewCategories())
	case StateItems:
		b.WriteString(m.viewItems())
	case StateForm:
		b.WriteString(m.viewForm())
	case StateConfirm:
		b.WriteString(m.viewConfirm())
	}

	if logs := m.viewEvents(); logs != "" {
		b.WriteString("\n")
		b.WriteString(logs)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewStats() string {
	stats := m.manager.Stats()
	line := fmt.Sprintf("🏁 %d cars  ✅ %d acquired  🛒 %d missing  ♥ %d favorites  📦 %d categories",
		stats.Total, stats.Acquired, stats.Missing(), stats.Favorites, stats.Categories)

	filter := ""
	switch m.filterMode {
	case model.FilterAcquired:
		filter = "  [showing acquired]"
	case model.FilterNotAcquired:
		filter = "  [showing missing]"
	}

	search := ""
	if m.searching {
		search = "\n" + subtitleStyle.Render("search: ") + m.searchInput.View()
	} else if m.searchInput.Value() != "" {
		search = "\n" + dimStyle.Render(fmt.Sprintf("search: %q", m.searchInput.Value()))
	}

	return infoStyle.Render(line) + warningStyle.Render(filter) + search
}

func (m Model) viewCategories() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Categories"))
	b.WriteString("\n\n")

	cats := m.manager.Categories()
	if len(cats) == 0 {
		b.WriteString(dimStyle.Render("No categories. The seed catalog may have failed to load."))
		b.WriteString("\n")
		return b.String()
	}

	for i, cat := range cats {
		count := m.manager.CategoryCount(cat, m.settings.DefaultYear)
		line := fmt.Sprintf("%s (%d)", cat, count)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewItems() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.category))
	b.WriteString("\n\n")

	cars := m.visibleCars()
	if len(cars) == 0 {
		b.WriteString(dimStyle.Render("No cars match. Try another filter or search."))
		b.WriteString("\n")
		return b.String()
	}

	for i, car := range cars {
		mark := "🛒"
		if car.Acquired {
			mark = "✅"
		}
		line := fmt.Sprintf("%s %s", mark, car.Name)
		if car.Number != "" {
			line += dimStyle.Render(" #" + car.Number)
		}
		if car.Variant != "" {
			line += warningStyle.Render(" · " + car.Variant)
		}
		if car.Favorite {
			line += favoriteStyle.Render(" ♥")
		}
		if car.Image != "" {
			line += dimStyle.Render(" 📷")
		}

		if i == m.itemCursor {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	title := "Add Car"
	if m.editingID != "" {
		title = "Edit Car"
	}
	b.WriteString(subtitleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Name *", "Year *", "Collection *", "Number", "Variant", "Color", "Image"}
	for i, input := range m.inputs {
		b.WriteString(fmt.Sprintf("%-14s %s\n", labels[i], input.View()))
	}

	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.formErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewConfirm() string {
	return boxStyle.Render(fmt.Sprintf(
		"Remove %s from your collection?\n\ny: yes • any other key: no",
		m.deleteTarget.Name,
	))
}

func (m Model) viewEvents() string {
	if m.events == nil || len(m.events.entries) == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range m.events.entries {
		var style lipgloss.Style
		prefix := "•"
		switch e.Level {
		case collection.LevelError:
			style = errorStyle
			prefix = "✗"
		case collection.LevelWarning:
			style = warningStyle
			prefix = "!"
		case collection.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case collection.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + e.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateCategories:
		return "↑/↓: move • enter: open • a: add • tab: filter • /: search • q: quit"
	case StateItems:
		return "↑/↓: move • o: toggle owned • f: favorite • e: edit • d: delete • a: add • tab: filter • /: search • esc: back"
	case StateForm:
		return "enter: next/save • tab: next field • esc: cancel"
	case StateConfirm:
		return "y: confirm • any other key: cancel"
	}
	return ""
}

// Run starts the TUI application.
//
// Startup order is deliberate: the persisted snapshot is resolved against
// the seed catalog synchronously, before the first frame renders.
func Run(settings *config.Settings) error {
	mirror, err := persist.Open(settings.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open collection database: %w", err)
	}
	defer mirror.Close()

	events := &eventLog{}
	manager := collection.NewManager(settings, mirror, events.add)
	if err := manager.Initialize(); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(manager, settings, events), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
