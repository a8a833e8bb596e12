package forms

import (
	"slices"
	"strings"

	"github.com/arraboard/arraboard/models"
)

// ContactForm maps address-book input. Required: name, email, phone.
type ContactForm struct {
	Name  string
	Email string
	Phone string
	Notes string
}

func (f ContactForm) Validate() (*models.Contact, error) {
	if err := firstBlank(
		field{"name", f.Name},
		field{"email", f.Email},
		field{"phone", f.Phone},
	); err != nil {
		return nil, err
	}

	return &models.Contact{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Phone: strings.TrimSpace(f.Phone),
		Notes: strings.TrimSpace(f.Notes),
	}, nil
}

// PasswordForm maps credential input. Required: name, url, password.
type PasswordForm struct {
	Name     string
	URL      string
	Password string
}

func (f PasswordForm) Validate() (*models.Password, error) {
	if err := firstBlank(
		field{"name", f.Name},
		field{"url", f.URL},
		field{"password", f.Password},
	); err != nil {
		return nil, err
	}

	return &models.Password{
		Name:     strings.TrimSpace(f.Name),
		URL:      strings.TrimSpace(f.URL),
		Password: strings.TrimSpace(f.Password),
	}, nil
}

// LinkForm maps bookmark input. Required: name, url, category.
type LinkForm struct {
	Name     string
	URL      string
	Category string
}

func (f LinkForm) Validate() (*models.Link, error) {
	if err := firstBlank(
		field{"name", f.Name},
		field{"url", f.URL},
		field{"category", f.Category},
	); err != nil {
		return nil, err
	}

	return &models.Link{
		Name:     strings.TrimSpace(f.Name),
		URL:      strings.TrimSpace(f.URL),
		Category: strings.TrimSpace(f.Category),
	}, nil
}

// NoteForm maps note input. Required: title; content may be empty.
type NoteForm struct {
	Title   string
	Content string
}

func (f NoteForm) Validate() (*models.Note, error) {
	if err := firstBlank(field{"title", f.Title}); err != nil {
		return nil, err
	}

	return &models.Note{
		Title:   strings.TrimSpace(f.Title),
		Content: strings.TrimSpace(f.Content),
	}, nil
}

// TaskForm maps to-do input. Required: title and the owning category.
type TaskForm struct {
	Title      string
	CategoryID string
	Completed  bool
}

func (f TaskForm) Validate() (*models.Task, error) {
	if err := firstBlank(
		field{"title", f.Title},
		field{"category_id", f.CategoryID},
	); err != nil {
		return nil, err
	}

	return &models.Task{
		Title:      strings.TrimSpace(f.Title),
		CategoryID: strings.TrimSpace(f.CategoryID),
		Completed:  f.Completed,
	}, nil
}

// TaskCategoryForm maps task-category input. Required: name.
type TaskCategoryForm struct {
	Name string
}

func (f TaskCategoryForm) Validate() (*models.TaskCategory, error) {
	if err := firstBlank(field{"name", f.Name}); err != nil {
		return nil, err
	}

	return &models.TaskCategory{Name: strings.TrimSpace(f.Name)}, nil
}

// TransactionForm maps finance input. Required: title, amount, date.
// Type and category are checked against their enums.
type TransactionForm struct {
	Title    string
	Amount   string
	Date     string
	Category string
	Type     string
}

func (f TransactionForm) Validate() (*models.Transaction, error) {
	if err := firstBlank(
		field{"title", f.Title},
		field{"amount", f.Amount},
		field{"date", f.Date},
	); err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("date", f.Date)
	if err != nil {
		return nil, err
	}

	txType := models.TransactionType(strings.TrimSpace(f.Type))
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		return nil, &EnumError{Field: "type", Value: f.Type}
	}

	category := models.TransactionCategory(strings.TrimSpace(f.Category))
	if !slices.Contains(models.TransactionCategories, category) {
		return nil, &EnumError{Field: "category", Value: f.Category}
	}

	return &models.Transaction{
		Title:    strings.TrimSpace(f.Title),
		Amount:   amount,
		Date:     date,
		Category: category,
		Type:     txType,
	}, nil
}

// SubscriptionForm maps recurring-payment input. Required: name, url,
// expiry date, amount.
type SubscriptionForm struct {
	Name       string
	URL        string
	ExpiryDate string
	Amount     string
}

func (f SubscriptionForm) Validate() (*models.Subscription, error) {
	if err := firstBlank(
		field{"name", f.Name},
		field{"url", f.URL},
		field{"expiry_date", f.ExpiryDate},
		field{"amount", f.Amount},
	); err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}

	expiry, err := parseDate("expiry_date", f.ExpiryDate)
	if err != nil {
		return nil, err
	}

	return &models.Subscription{
		Name:       strings.TrimSpace(f.Name),
		URL:        strings.TrimSpace(f.URL),
		ExpiryDate: expiry,
		Amount:     amount,
	}, nil
}

// ProjectForm maps kanban-board input. Required: title.
type ProjectForm struct {
	Title string
}

func (f ProjectForm) Validate() (*models.Project, error) {
	if err := firstBlank(field{"title", f.Title}); err != nil {
		return nil, err
	}

	return &models.Project{Title: strings.TrimSpace(f.Title)}, nil
}

// ProjectTaskForm maps kanban-card input. Required: title, status.
type ProjectTaskForm struct {
	ProjectID string
	Title     string
	Status    string
}

func (f ProjectTaskForm) Validate() (*models.ProjectTask, error) {
	if err := firstBlank(
		field{"title", f.Title},
		field{"status", f.Status},
	); err != nil {
		return nil, err
	}

	status := models.ProjectTaskStatus(strings.TrimSpace(f.Status))
	if !slices.Contains(models.ProjectTaskStatuses, status) {
		return nil, &EnumError{Field: "status", Value: f.Status}
	}

	return &models.ProjectTask{
		ProjectID: strings.TrimSpace(f.ProjectID),
		Title:     strings.TrimSpace(f.Title),
		Status:    status,
	}, nil
}

// GoalForm maps wishlist input. Required: title, price, priority.
type GoalForm struct {
	Title    string
	Price    string
	Priority string
}

func (f GoalForm) Validate() (*models.Goal, error) {
	if err := firstBlank(
		field{"title", f.Title},
		field{"price", f.Price},
		field{"priority", f.Priority},
	); err != nil {
		return nil, err
	}

	price, err := parseAmount("price", f.Price)
	if err != nil {
		return nil, err
	}

	priority := models.GoalPriority(strings.TrimSpace(f.Priority))
	if !slices.Contains(models.GoalPriorities, priority) {
		return nil, &EnumError{Field: "priority", Value: f.Priority}
	}

	return &models.Goal{
		Title:    strings.TrimSpace(f.Title),
		Price:    price,
		Priority: priority,
	}, nil
}

// CalendarTodoForm maps calendar input. Required: title, date.
type CalendarTodoForm struct {
	Title string
	Date  string
}

func (f CalendarTodoForm) Validate() (*models.CalendarTodo, error) {
	if err := firstBlank(
		field{"title", f.Title},
		field{"date", f.Date},
	); err != nil {
		return nil, err
	}

	date, err := parseDate("date", f.Date)
	if err != nil {
		return nil, err
	}

	return &models.CalendarTodo{
		Title: strings.TrimSpace(f.Title),
		Date:  date,
	}, nil
}

// FileForm maps uploaded-file metadata. Required: name. Size and content
// type are measured from the file itself, never typed by the user.
type FileForm struct {
	Name        string
	Size        int64
	ContentType string
}

func (f FileForm) Validate() (*models.FileMeta, error) {
	if err := firstBlank(field{"name", f.Name}); err != nil {
		return nil, err
	}

	return &models.FileMeta{
		Name:        strings.TrimSpace(f.Name),
		Size:        f.Size,
		ContentType: strings.TrimSpace(f.ContentType),
	}, nil
}
