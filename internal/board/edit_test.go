package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/models"
)

func TestUpdateContact_ChangesAndPreserves(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	created, err := b.AddContact(ctx, forms.ContactForm{
		Name:  "Kiss Anna",
		Email: "anna@example.hu",
		Phone: "+36 30 111 2222",
		Notes: "fontos ügyfél",
	})
	require.NoError(t, err)

	updated, err := b.UpdateContact(ctx, created.ID, forms.ContactForm{
		Name:  "Nagy Anna",
		Email: "anna@example.hu",
		Phone: "+36 30 111 2222",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Nagy Anna", updated.Name)
	assert.Equal(t, "fontos ügyfél", updated.Notes, "blank patch fields keep stored values")
}

func TestUpdateGoal_RejectsUnknownPriority(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	created, err := b.AddGoal(ctx, forms.GoalForm{Title: "bicikli", Price: "120000", Priority: "magas"})
	require.NoError(t, err)

	_, err = b.UpdateGoal(ctx, created.ID, forms.GoalForm{Title: "bicikli", Price: "120000", Priority: "sürgős"})
	assert.ErrorIs(t, err, forms.ErrValidation)

	goals, err := b.Goals.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, models.PriorityHigh, goals[0].Priority, "rejected edits never reach the store")
}

func TestUpdateNote_MissingID(t *testing.T) {
	b := newLocalBoard(t)

	_, err := b.UpdateNote(context.Background(), "no-such-id", forms.NoteForm{Title: "emlék"})
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestUpdateProjectTask_MovesKanbanColumn(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	project, err := b.AddProject(ctx, forms.ProjectForm{Title: "Felújítás"})
	require.NoError(t, err)
	card, err := b.AddProjectTask(ctx, forms.ProjectTaskForm{ProjectID: project.ID, Title: "festés", Status: "todo"})
	require.NoError(t, err)

	_, err = b.UpdateProjectTask(ctx, card.ID, forms.ProjectTaskForm{ProjectID: project.ID, Title: "festés", Status: "doing"})
	require.NoError(t, err)

	columns, err := b.Kanban(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, columns[models.StatusTodo])
	assert.Len(t, columns[models.StatusDoing], 1)
}

func TestAddFile_ValidatesName(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	meta, err := b.AddFile(ctx, forms.FileForm{Name: "szamla.pdf", Size: 2048, ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, int64(2048), meta.Size)

	_, err = b.AddFile(ctx, forms.FileForm{Size: 10})
	assert.ErrorIs(t, err, forms.ErrValidation)
}

func TestCounts_TalliesEveryCollection(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	_, err := b.AddTaskCategory(ctx, forms.TaskCategoryForm{Name: "Ház"})
	require.NoError(t, err)
	_, err = b.AddNote(ctx, forms.NoteForm{Title: "emlék"})
	require.NoError(t, err)
	_, err = b.AddNote(ctx, forms.NoteForm{Title: "lista"})
	require.NoError(t, err)

	stats, err := b.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Collections[models.CollectionNotes])
	assert.Equal(t, 1, stats.Collections[models.CollectionTaskCategories])
	assert.Equal(t, 0, stats.Collections[models.CollectionGoals], "empty collections still appear")
	assert.Len(t, stats.Collections, len(models.Collections))
}
