package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/board"
	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	return board.NewLocalBoard(t.TempDir(), utils.NewIDGenerator(), logger.Nop())
}

func TestNewModel_LocalModeSkipsLogin(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())
	assert.Equal(t, screenMenu, m.screen)
}

func TestMenu_CoversEveryLabelledCollection(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())
	assert.Len(t, m.menu.Items(), len(collectionLabels))
}

func TestItemsLoaded_SwitchesToListScreen(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())

	updated, _ := m.Update(itemsLoadedMsg{
		collection: models.CollectionContacts,
		items:      []boardItem{{id: "id-1", title: "Kiss Anna"}},
	})
	model := updated.(Model)

	assert.Equal(t, screenList, model.screen)
	assert.Equal(t, models.CollectionContacts, model.collection)
	require.Len(t, model.records.Items(), 1)
}

func TestEsc_ReturnsFromListToMenu(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())
	m.screen = screenList

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, updated.(Model).screen)
}

func TestDetail_EnterAndBack(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())
	updated, _ := m.Update(itemsLoadedMsg{
		collection: models.CollectionNotes,
		items:      []boardItem{{id: "id-1", title: "jegyzet", detail: "tartalom"}},
	})
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	assert.Equal(t, screenDetail, model.screen)
	assert.Equal(t, "jegyzet", model.detail.title)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, updated.(Model).screen)
}

func TestLoadItems_Transactions(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := b.Transactions.Create(ctx, &models.Transaction{
		Title:    "bérlet",
		Amount:   8950,
		Date:     now,
		Category: models.CategoryPersonal,
		Type:     models.TransactionExpense,
	})
	require.NoError(t, err)

	items, err := loadItems(ctx, b, models.CollectionTransactions)
	require.NoError(t, err)

	// First row is the monthly summary, then the entries.
	require.Len(t, items, 2)
	assert.Equal(t, "Havi egyenleg", items[0].title)
	assert.Equal(t, "bérlet", items[1].title)
	assert.Contains(t, items[1].desc, "8950 Ft")
}

func TestLoadItems_PasswordsCarrySecret(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	_, err := b.Passwords.Create(ctx, &models.Password{Name: "gmail", URL: "https://mail.google.com", Password: "titok123"})
	require.NoError(t, err)

	items, err := loadItems(ctx, b, models.CollectionPasswords)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "titok123", items[0].secret)
	assert.NotContains(t, items[0].detail, "titok123", "detail view masks the password")
}

func TestLoadItems_UnknownCollection(t *testing.T) {
	_, err := loadItems(context.Background(), newBoard(t), "gadgets")
	assert.Error(t, err)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestList_CreateFlow(t *testing.T) {
	b := newBoard(t)
	m := NewModel(b, nil, logger.Nop())
	m.screen = screenList
	m.collection = models.CollectionTaskCategories

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)
	require.Equal(t, screenForm, m.screen)
	assert.False(t, m.form.editing)

	m.form.inputs[0].SetValue("Ház")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	saved, ok := cmd().(savedMsg)
	require.True(t, ok)
	assert.Equal(t, models.CollectionTaskCategories, saved.collection)

	categories, err := b.TaskCategories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Ház", categories[0].Name)
}

func TestList_EditFlow(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	contact, err := b.AddContact(ctx, forms.ContactForm{
		Name:  "Kiss Anna",
		Email: "anna@example.hu",
		Phone: "+36 30 111 2222",
	})
	require.NoError(t, err)

	m := NewModel(b, nil, logger.Nop())
	m.collection = models.CollectionContacts

	loaded, ok := m.loadEditValues(contact.ID)().(editLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, "Kiss Anna", loaded.values["name"])

	updated, _ := m.Update(loaded)
	m = updated.(Model)
	require.Equal(t, screenForm, m.screen)
	assert.True(t, m.form.editing)
	assert.Equal(t, "Kiss Anna", m.form.inputs[0].Value())

	m.form.inputs[0].SetValue("Nagy Anna")
	updated, submit := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	_, ok = submit().(savedMsg)
	require.True(t, ok)

	contacts, err := b.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Nagy Anna", contacts[0].Name)
	assert.Equal(t, "anna@example.hu", contacts[0].Email)
}

func TestList_DeleteFlowWithConfirm(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	note, err := b.AddNote(ctx, forms.NoteForm{Title: "emlék", Content: "piactér"})
	require.NoError(t, err)

	m := NewModel(b, nil, logger.Nop())
	updated, _ := m.Update(itemsLoadedMsg{
		collection: models.CollectionNotes,
		items:      []boardItem{{id: note.ID, title: note.Title}},
	})
	m = updated.(Model)

	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	require.Equal(t, screenConfirm, m.screen)
	assert.Equal(t, note.ID, m.confirm.id)

	// backing out leaves the record alone
	updated, _ = m.Update(keyMsg("n"))
	assert.Equal(t, screenList, updated.(Model).screen)
	notes, err := b.Notes.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	m.screen = screenConfirm
	_, cmd := m.Update(keyMsg("y"))
	done, ok := cmd().(deleteDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	notes, err = b.Notes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestForm_ValidationErrorStaysOnForm(t *testing.T) {
	m := NewModel(newBoard(t), nil, logger.Nop())
	m.screen = screenList
	m.collection = models.CollectionGoals

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)
	m.form.inputs[0].SetValue("bicikli")
	m.form.inputs[1].SetValue("120000")
	m.form.inputs[2].SetValue("sürgős")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	failed, ok := cmd().(saveFailedMsg)
	require.True(t, ok)
	require.Error(t, failed.err)

	updated, _ = m.Update(failed)
	m = updated.(Model)
	assert.Equal(t, screenForm, m.screen)
	assert.NotEmpty(t, m.errMsg)
}

func TestMenu_StatsOverview(t *testing.T) {
	b := newBoard(t)
	_, err := b.AddTaskCategory(context.Background(), forms.TaskCategoryForm{Name: "Ház"})
	require.NoError(t, err)

	m := NewModel(b, nil, logger.Nop())
	_, cmd := m.Update(keyMsg("s"))
	require.NotNil(t, cmd)

	loaded, ok := cmd().(statsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	updated, _ := m.Update(loaded)
	m = updated.(Model)
	assert.Equal(t, screenStats, m.screen)
	assert.Equal(t, 1, m.stats.Total)
	assert.Equal(t, 1, m.stats.Collections[models.CollectionTaskCategories])
}

func TestCreateRecord_FileUploadLocalMode(t *testing.T) {
	b := newBoard(t)
	path := filepath.Join(t.TempDir(), "jegyzet.txt")
	require.NoError(t, os.WriteFile(path, []byte("tartalom"), 0o600))

	err := createRecord(context.Background(), b, nil, models.CollectionFiles, map[string]string{
		"name": "jegyzet.txt",
		"path": path,
	})
	require.NoError(t, err)

	files, err := b.Files.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "jegyzet.txt", files[0].Name)
	assert.Equal(t, int64(len("tartalom")), files[0].Size)
}

func TestLoadItems_ProjectTasks(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	project, err := b.AddProject(ctx, forms.ProjectForm{Title: "Felújítás"})
	require.NoError(t, err)
	_, err = b.AddProjectTask(ctx, forms.ProjectTaskForm{ProjectID: project.ID, Title: "festés", Status: "todo"})
	require.NoError(t, err)

	items, err := loadItems(ctx, b, models.CollectionProjectTasks)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "todo", items[0].desc)
	assert.Contains(t, items[0].detail, project.ID)
}

func TestFormModel_FocusWrapsBothWays(t *testing.T) {
	m := newFormModel(models.CollectionPasswords)
	require.Len(t, m.inputs, 3)

	m = m.focusField(m.focus + 1)
	assert.Equal(t, 1, m.focus)
	m = m.focusField(m.focus - 2)
	assert.Equal(t, 2, m.focus, "focus wraps below zero")
	m = m.focusField(m.focus + 1)
	assert.Equal(t, 0, m.focus, "focus wraps past the last field")
}
