package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/models"
)

func TestAddContact_ValidatesBeforeStoring(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	contact, err := b.AddContact(ctx, forms.ContactForm{
		Name:  "  Kiss Anna  ",
		Email: "anna@example.hu",
		Phone: "+36301234567",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Kiss Anna", contact.Name, "inputs are trimmed")

	_, err = b.AddContact(ctx, forms.ContactForm{Email: "nevtelen@example.hu", Phone: "+361"})
	assert.ErrorIs(t, err, forms.ErrValidation)

	all, err := b.Contacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "rejected forms never reach the store")
}

func TestAddTransaction_ParsesAmountAndDate(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	transaction, err := b.AddTransaction(ctx, forms.TransactionForm{
		Title:    "bérlet",
		Amount:   "8950",
		Date:     "2024-03-15",
		Category: "personal",
		Type:     "expense",
	})
	require.NoError(t, err)
	assert.Equal(t, 8950.0, transaction.Amount)
	assert.Equal(t, 2024, transaction.Date.Year())

	_, err = b.AddTransaction(ctx, forms.TransactionForm{
		Title:    "hibás",
		Amount:   "sok",
		Date:     "2024-03-15",
		Category: "personal",
		Type:     "expense",
	})
	assert.ErrorIs(t, err, forms.ErrValidation)
}

func TestAddGoal_EnforcesPriorityEnum(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	goal, err := b.AddGoal(ctx, forms.GoalForm{Title: "bicikli", Price: "250000", Priority: "magas"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, goal.Priority)

	_, err = b.AddGoal(ctx, forms.GoalForm{Title: "konzol", Price: "180000", Priority: "urgent"})
	assert.ErrorIs(t, err, forms.ErrValidation)
}

func TestAddProjectTask_DefaultsAndEnum(t *testing.T) {
	b := newLocalBoard(t)
	ctx := context.Background()

	project, err := b.AddProject(ctx, forms.ProjectForm{Title: "konyha"})
	require.NoError(t, err)

	task, err := b.AddProjectTask(ctx, forms.ProjectTaskForm{
		ProjectID: project.ID,
		Title:     "csempe",
		Status:    "todo",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, task.Status)

	columns, err := b.Kanban(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, columns[models.StatusTodo], 1)
}
