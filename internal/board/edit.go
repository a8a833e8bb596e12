package board

import (
	"context"

	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/models"
)

// Form-backed editing. The full form is validated and the result applied
// as a patch, so edits obey the same required-field and enum rules as
// creation. Fields the validated form leaves at their zero value keep the
// stored value.

// UpdateContact validates the edited contact and stores it under id.
func (b *Board) UpdateContact(ctx context.Context, id string, form forms.ContactForm) (*models.Contact, error) {
	contact, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Contacts.Update(ctx, id, contact)
}

// UpdatePassword validates the edited password entry and stores it under id.
func (b *Board) UpdatePassword(ctx context.Context, id string, form forms.PasswordForm) (*models.Password, error) {
	password, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Passwords.Update(ctx, id, password)
}

// UpdateLink validates the edited link and stores it under id.
func (b *Board) UpdateLink(ctx context.Context, id string, form forms.LinkForm) (*models.Link, error) {
	link, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Links.Update(ctx, id, link)
}

// UpdateNote validates the edited note and stores it under id.
func (b *Board) UpdateNote(ctx context.Context, id string, form forms.NoteForm) (*models.Note, error) {
	note, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Notes.Update(ctx, id, note)
}

// UpdateTask validates the edited task and stores it under id.
func (b *Board) UpdateTask(ctx context.Context, id string, form forms.TaskForm) (*models.Task, error) {
	task, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Tasks.Update(ctx, id, task)
}

// UpdateTaskCategory validates the edited task category and stores it under id.
func (b *Board) UpdateTaskCategory(ctx context.Context, id string, form forms.TaskCategoryForm) (*models.TaskCategory, error) {
	category, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.TaskCategories.Update(ctx, id, category)
}

// UpdateTransaction validates the edited finance entry and stores it under id.
func (b *Board) UpdateTransaction(ctx context.Context, id string, form forms.TransactionForm) (*models.Transaction, error) {
	transaction, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Transactions.Update(ctx, id, transaction)
}

// UpdateSubscription validates the edited subscription and stores it under id.
func (b *Board) UpdateSubscription(ctx context.Context, id string, form forms.SubscriptionForm) (*models.Subscription, error) {
	subscription, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Subscriptions.Update(ctx, id, subscription)
}

// UpdateProject validates the edited project and stores it under id.
func (b *Board) UpdateProject(ctx context.Context, id string, form forms.ProjectForm) (*models.Project, error) {
	project, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Projects.Update(ctx, id, project)
}

// UpdateProjectTask validates the edited kanban card and stores it under id.
func (b *Board) UpdateProjectTask(ctx context.Context, id string, form forms.ProjectTaskForm) (*models.ProjectTask, error) {
	task, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.ProjectTasks.Update(ctx, id, task)
}

// UpdateCalendarTodo validates the edited calendar entry and stores it under id.
func (b *Board) UpdateCalendarTodo(ctx context.Context, id string, form forms.CalendarTodoForm) (*models.CalendarTodo, error) {
	todo, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Calendar.Update(ctx, id, todo)
}

// UpdateGoal validates the edited goal and stores it under id.
func (b *Board) UpdateGoal(ctx context.Context, id string, form forms.GoalForm) (*models.Goal, error) {
	goal, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Goals.Update(ctx, id, goal)
}

// UpdateFile validates the edited file metadata and stores it under id.
// Only the user-editable fields change; size and content type keep their
// measured values.
func (b *Board) UpdateFile(ctx context.Context, id string, form forms.FileForm) (*models.FileMeta, error) {
	meta, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Files.Update(ctx, id, meta)
}
