package board

import (
	"context"

	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/models"
)

// Form-backed creation. Every write that originates from user input passes
// through the matching form, so required-field and enum rules hold no
// matter which backend stores the record.

// AddContact validates and stores a new contact.
func (b *Board) AddContact(ctx context.Context, form forms.ContactForm) (*models.Contact, error) {
	contact, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Contacts.Create(ctx, contact)
}

// AddPassword validates and stores a new password entry.
func (b *Board) AddPassword(ctx context.Context, form forms.PasswordForm) (*models.Password, error) {
	password, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Passwords.Create(ctx, password)
}

// AddLink validates and stores a new link.
func (b *Board) AddLink(ctx context.Context, form forms.LinkForm) (*models.Link, error) {
	link, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Links.Create(ctx, link)
}

// AddNote validates and stores a new note.
func (b *Board) AddNote(ctx context.Context, form forms.NoteForm) (*models.Note, error) {
	note, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Notes.Create(ctx, note)
}

// AddTask validates and stores a new task.
func (b *Board) AddTask(ctx context.Context, form forms.TaskForm) (*models.Task, error) {
	task, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Tasks.Create(ctx, task)
}

// AddTaskCategory validates and stores a new task category.
func (b *Board) AddTaskCategory(ctx context.Context, form forms.TaskCategoryForm) (*models.TaskCategory, error) {
	category, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.TaskCategories.Create(ctx, category)
}

// AddTransaction validates and stores a new finance entry.
func (b *Board) AddTransaction(ctx context.Context, form forms.TransactionForm) (*models.Transaction, error) {
	transaction, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Transactions.Create(ctx, transaction)
}

// AddSubscription validates and stores a new subscription.
func (b *Board) AddSubscription(ctx context.Context, form forms.SubscriptionForm) (*models.Subscription, error) {
	subscription, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Subscriptions.Create(ctx, subscription)
}

// AddProject validates and stores a new project board.
func (b *Board) AddProject(ctx context.Context, form forms.ProjectForm) (*models.Project, error) {
	project, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Projects.Create(ctx, project)
}

// AddProjectTask validates and stores a new kanban card.
func (b *Board) AddProjectTask(ctx context.Context, form forms.ProjectTaskForm) (*models.ProjectTask, error) {
	task, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.ProjectTasks.Create(ctx, task)
}

// AddCalendarTodo validates and stores a new calendar entry.
func (b *Board) AddCalendarTodo(ctx context.Context, form forms.CalendarTodoForm) (*models.CalendarTodo, error) {
	todo, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Calendar.Create(ctx, todo)
}

// AddGoal validates and stores a new goal.
func (b *Board) AddGoal(ctx context.Context, form forms.GoalForm) (*models.Goal, error) {
	goal, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Goals.Create(ctx, goal)
}

// AddFile validates and stores uploaded-file metadata. The raw content
// travels outside the record store.
func (b *Board) AddFile(ctx context.Context, form forms.FileForm) (*models.FileMeta, error) {
	meta, err := form.Validate()
	if err != nil {
		return nil, err
	}
	return b.Files.Create(ctx, meta)
}
