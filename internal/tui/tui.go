// Package tui is the terminal client. One root model drives the screens:
// login (remote mode only), the collection menu, a record list with
// create/edit/delete, the record form, a delete confirmation, a record
// detail view, and the collection statistics overview.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arraboard/arraboard/internal/adapter"
	"github.com/arraboard/arraboard/internal/board"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/models"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenList
	screenDetail
	screenForm
	screenConfirm
	screenStats
)

// collectionLabels maps collection names onto the menu labels the product
// ships with.
var collectionLabels = map[string]string{
	models.CollectionContacts:       "Névjegyek",
	models.CollectionPasswords:      "Jelszavak",
	models.CollectionLinks:          "Linkek",
	models.CollectionNotes:          "Jegyzetek",
	models.CollectionTasks:          "Teendők",
	models.CollectionTaskCategories: "Teendő kategóriák",
	models.CollectionTransactions:   "Pénzügyek",
	models.CollectionSubscriptions:  "Előfizetések",
	models.CollectionProjects:       "Projektek",
	models.CollectionProjectTasks:   "Kanban kártyák",
	models.CollectionCalendar:       "Naptár",
	models.CollectionGoals:          "Célok",
	models.CollectionFiles:          "Fájlok",
}

type menuItem struct {
	collection string
}

func (i menuItem) Title() string       { return collectionLabels[i.collection] }
func (i menuItem) Description() string { return i.collection }
func (i menuItem) FilterValue() string { return collectionLabels[i.collection] + " " + i.collection }

type itemsLoadedMsg struct {
	collection string
	items      []boardItem
}

type loadFailedMsg struct{ err error }

type loginDoneMsg struct{ err error }

type savedMsg struct{ collection string }

type saveFailedMsg struct{ err error }

type editLoadedMsg struct {
	id     string
	values map[string]string
}

type deleteDoneMsg struct{ err error }

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type downloadDoneMsg struct {
	path string
	err  error
}

// Model is the bubbletea root model.
type Model struct {
	board   *board.Board
	adapter *adapter.ServerAdapter
	logger  *logger.Logger

	screen     screen
	menu       list.Model
	records    list.Model
	collection string
	detail     boardItem
	form       formModel
	confirm    boardItem
	stats      models.DashboardStats

	loginInput    textinput.Model
	passwordInput textinput.Model
	loginFocused  int

	status string
	errMsg string
	width  int
	height int
}

// NewModel builds the root model. adapter is nil in local mode, which skips
// the login screen entirely.
func NewModel(b *board.Board, serverAdapter *adapter.ServerAdapter, log *logger.Logger) Model {
	items := make([]list.Item, 0, len(collectionLabels))
	for _, collection := range models.Collections {
		if _, ok := collectionLabels[collection]; ok {
			items = append(items, menuItem{collection: collection})
		}
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "ArraBoard"

	records := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	loginInput := textinput.New()
	loginInput.Placeholder = "felhasználónév"
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "jelszó"
	passwordInput.EchoMode = textinput.EchoPassword

	m := Model{
		board:         b,
		adapter:       serverAdapter,
		logger:        log,
		menu:          menu,
		records:       records,
		loginInput:    loginInput,
		passwordInput: passwordInput,
		screen:        screenMenu,
	}
	if serverAdapter != nil && serverAdapter.Token() == "" {
		m.screen = screenLogin
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return textinput.Blink
	}
	return nil
}

func (m Model) loadCollection(collection string) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		items, err := loadItems(context.Background(), b, collection)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return itemsLoadedMsg{collection: collection, items: items}
	}
}

func (m Model) submitForm() tea.Cmd {
	b, a, form := m.board, m.adapter, m.form
	return func() tea.Msg {
		var err error
		if form.editing {
			err = updateRecord(context.Background(), b, form.collection, form.recordID, form.values())
		} else {
			err = createRecord(context.Background(), b, a, form.collection, form.values())
		}
		if err != nil {
			return saveFailedMsg{err: err}
		}
		return savedMsg{collection: form.collection}
	}
}

func (m Model) loadEditValues(id string) tea.Cmd {
	b, collection := m.board, m.collection
	return func() tea.Msg {
		values, err := editValues(context.Background(), b, collection, id)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return editLoadedMsg{id: id, values: values}
	}
}

func (m Model) deleteConfirmed() tea.Cmd {
	b, a, collection, id := m.board, m.adapter, m.collection, m.confirm.id
	return func() tea.Msg {
		return deleteDoneMsg{err: deleteRecord(context.Background(), b, a, collection, id)}
	}
}

func (m Model) loadStats() tea.Cmd {
	b, a := m.board, m.adapter
	return func() tea.Msg {
		if a != nil {
			stats, err := a.Stats(context.Background())
			return statsLoadedMsg{stats: stats, err: err}
		}
		stats, err := b.Counts(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) downloadDetail() tea.Cmd {
	a, item := m.adapter, m.detail
	return func() tea.Msg {
		path, err := downloadFile(context.Background(), a, ".", item.id, item.title)
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m Model) login() tea.Cmd {
	a := m.adapter
	login := m.loginInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		return loginDoneMsg{err: a.Login(context.Background(), login, password)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.menu.SetSize(msg.Width-frameW, msg.Height-frameH)
		m.records.SetSize(msg.Width-frameW, msg.Height-frameH)
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			m.errMsg = "sikertelen bejelentkezés"
			return m, nil
		}
		m.errMsg = ""
		m.screen = screenMenu
		return m, nil

	case itemsLoadedMsg:
		listItems := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			listItems[i] = item
		}
		m.collection = msg.collection
		m.records.Title = collectionLabels[msg.collection]
		m.records.SetItems(listItems)
		m.screen = screenList
		m.errMsg = ""
		return m, nil

	case loadFailedMsg:
		m.errMsg = msg.err.Error()
		m.logger.Error().Err(msg.err).Msg("loading collection")
		return m, nil

	case editLoadedMsg:
		m.form = newEditFormModel(m.collection, msg.id, msg.values)
		m.screen = screenForm
		m.errMsg = ""
		return m, textinput.Blink

	case savedMsg:
		m.screen = screenList
		m.status = "mentve"
		m.errMsg = ""
		return m, m.loadCollection(msg.collection)

	case saveFailedMsg:
		m.errMsg = msg.err.Error()
		return m, nil

	case deleteDoneMsg:
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.logger.Error().Err(msg.err).Msg("deleting record")
			return m, nil
		}
		m.status = "törölve"
		m.errMsg = ""
		return m, m.loadCollection(m.collection)

	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.screen = screenStats
		m.errMsg = ""
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil {
			m.errMsg = "letöltés sikertelen"
			m.logger.Error().Err(msg.err).Msg("downloading file content")
			return m, nil
		}
		m.status = "letöltve: " + msg.path
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveList(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		switch msg.String() {
		case "tab", "shift+tab":
			m.loginFocused = 1 - m.loginFocused
			if m.loginFocused == 0 {
				m.loginInput.Focus()
				m.passwordInput.Blur()
			} else {
				m.loginInput.Blur()
				m.passwordInput.Focus()
			}
			return m, textinput.Blink
		case "enter":
			if m.loginInput.Value() == "" || m.passwordInput.Value() == "" {
				m.errMsg = "add meg a felhasználónevet és a jelszót"
				return m, nil
			}
			m.status = "bejelentkezés..."
			return m, m.login()
		case "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.loginFocused == 0 {
			m.loginInput, cmd = m.loginInput.Update(msg)
		} else {
			m.passwordInput, cmd = m.passwordInput.Update(msg)
		}
		return m, cmd

	case screenMenu:
		if m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "s":
			return m, m.loadStats()
		case "enter":
			if item, ok := m.menu.SelectedItem().(menuItem); ok {
				m.status = ""
				return m, m.loadCollection(item.collection)
			}
		}

	case screenList:
		if m.records.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			m.screen = screenMenu
			m.errMsg = ""
			m.status = ""
			return m, nil
		case "enter":
			if item, ok := m.records.SelectedItem().(boardItem); ok {
				m.detail = item
				m.screen = screenDetail
			}
			return m, nil
		case "r":
			return m, m.loadCollection(m.collection)
		case "n":
			m.form = newFormModel(m.collection)
			m.screen = screenForm
			m.errMsg = ""
			m.status = ""
			return m, textinput.Blink
		case "e":
			// summary rows carry no id and cannot be edited
			if item, ok := m.records.SelectedItem().(boardItem); ok && item.id != "" {
				return m, m.loadEditValues(item.id)
			}
			return m, nil
		case "d":
			if item, ok := m.records.SelectedItem().(boardItem); ok && item.id != "" {
				m.confirm = item
				m.screen = screenConfirm
			}
			return m, nil
		}

	case screenForm:
		switch msg.String() {
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "tab", "down":
			m.form = m.form.focusField(m.form.focus + 1)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.form = m.form.focusField(m.form.focus - 1)
			return m, textinput.Blink
		case "enter":
			m.status = "mentés..."
			return m, m.submitForm()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd

	case screenConfirm:
		switch msg.String() {
		case "y", "i":
			return m, m.deleteConfirmed()
		case "n", "esc":
			m.screen = screenList
			return m, nil
		}
		return m, nil

	case screenStats:
		switch msg.String() {
		case "esc", "enter", "q":
			m.screen = screenMenu
			return m, nil
		}
		return m, nil

	case screenDetail:
		switch msg.String() {
		case "esc", "enter":
			m.screen = screenList
			m.status = ""
			return m, nil
		case "d":
			if m.collection == models.CollectionFiles {
				m.status = "letöltés..."
				return m, m.downloadDetail()
			}
			return m, nil
		case "c":
			if m.detail.secret != "" {
				if err := clipboard.WriteAll(m.detail.secret); err != nil {
					m.errMsg = "vágólap nem elérhető"
				} else {
					m.status = "jelszó a vágólapon"
				}
			}
			return m, nil
		}
	}

	return m.updateActiveList(msg)
}

func (m Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenList:
		m.records, cmd = m.records.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		var b strings.Builder
		b.WriteString(titleStyle.Render("ArraBoard — bejelentkezés"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Felhasználónév") + "\n" + m.loginInput.View() + "\n\n")
		b.WriteString(labelStyle.Render("Jelszó") + "\n" + m.passwordInput.View() + "\n")
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render(m.errMsg))
		}
		if m.status != "" {
			b.WriteString("\n" + statusStyle.Render(m.status))
		}
		b.WriteString(helpStyle.Render("\ntab: váltás · enter: belépés · esc: kilépés"))
		return docStyle.Render(b.String())

	case screenMenu:
		view := m.menu.View()
		if m.errMsg != "" {
			view += "\n" + errorStyle.Render(m.errMsg)
		}
		view += helpStyle.Render("\ns: statisztika · enter: megnyitás · q: kilépés")
		return docStyle.Render(view)

	case screenList:
		view := m.records.View()
		if m.status != "" {
			view += "\n" + statusStyle.Render(m.status)
		}
		if m.errMsg != "" {
			view += "\n" + errorStyle.Render(m.errMsg)
		}
		view += helpStyle.Render("\nenter: részletek · n: új · e: szerkesztés · d: törlés · r: frissítés · esc: vissza")
		return docStyle.Render(view)

	case screenForm:
		view := m.form.View()
		if m.errMsg != "" {
			view += "\n" + errorStyle.Render(m.errMsg)
		}
		return docStyle.Render(view)

	case screenConfirm:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Törlés"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Biztosan törlöd: %q?\n", m.confirm.title))
		b.WriteString(helpStyle.Render("\ny: igen · n: mégse"))
		return docStyle.Render(b.String())

	case screenStats:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Statisztika"))
		b.WriteString("\n\n")
		for _, collection := range models.Collections {
			label, ok := collectionLabels[collection]
			if !ok {
				label = collection
			}
			b.WriteString(fmt.Sprintf("%-20s %d\n", label, m.stats.Collections[collection]))
		}
		b.WriteString(fmt.Sprintf("\n%-20s %d\n", "Összesen", m.stats.Total))
		b.WriteString(helpStyle.Render("\nesc: vissza"))
		return docStyle.Render(b.String())

	case screenDetail:
		var b strings.Builder
		b.WriteString(titleStyle.Render(m.detail.title))
		b.WriteString("\n")
		b.WriteString(m.detail.detail)
		if m.status != "" {
			b.WriteString("\n\n" + statusStyle.Render(m.status))
		}
		if m.errMsg != "" {
			b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
		}
		help := "\nesc: vissza"
		if m.detail.secret != "" {
			help = "\nc: jelszó másolása · esc: vissza"
		}
		if m.collection == models.CollectionFiles {
			help = "\nd: letöltés · esc: vissza"
		}
		b.WriteString(helpStyle.Render(help))
		return docStyle.Render(b.String())
	}

	return ""
}

// Run starts the terminal UI and blocks until the user quits.
func Run(b *board.Board, serverAdapter *adapter.ServerAdapter, log *logger.Logger) error {
	program := tea.NewProgram(NewModel(b, serverAdapter, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
