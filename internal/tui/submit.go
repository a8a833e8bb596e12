package tui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arraboard/arraboard/internal/adapter"
	"github.com/arraboard/arraboard/internal/board"
	"github.com/arraboard/arraboard/internal/forms"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/models"
)

// createRecord routes a submitted form to the matching board creator. Every
// write passes through the collection's form, so required-field and enum
// rules hold before anything is stored.
func createRecord(ctx context.Context, b *board.Board, a *adapter.ServerAdapter, collection string, v map[string]string) error {
	var err error
	switch collection {
	case models.CollectionContacts:
		_, err = b.AddContact(ctx, forms.ContactForm{Name: v["name"], Email: v["email"], Phone: v["phone"], Notes: v["notes"]})
	case models.CollectionPasswords:
		_, err = b.AddPassword(ctx, forms.PasswordForm{Name: v["name"], URL: v["url"], Password: v["password"]})
	case models.CollectionLinks:
		_, err = b.AddLink(ctx, forms.LinkForm{Name: v["name"], URL: v["url"], Category: v["category"]})
	case models.CollectionNotes:
		_, err = b.AddNote(ctx, forms.NoteForm{Title: v["title"], Content: v["content"]})
	case models.CollectionTasks:
		_, err = b.AddTask(ctx, forms.TaskForm{Title: v["title"], CategoryID: v["category_id"], Completed: v["completed"] != ""})
	case models.CollectionTaskCategories:
		_, err = b.AddTaskCategory(ctx, forms.TaskCategoryForm{Name: v["name"]})
	case models.CollectionTransactions:
		_, err = b.AddTransaction(ctx, forms.TransactionForm{Title: v["title"], Amount: v["amount"], Date: v["date"], Category: v["category"], Type: v["type"]})
	case models.CollectionSubscriptions:
		_, err = b.AddSubscription(ctx, forms.SubscriptionForm{Name: v["name"], URL: v["url"], ExpiryDate: v["expiry_date"], Amount: v["amount"]})
	case models.CollectionProjects:
		_, err = b.AddProject(ctx, forms.ProjectForm{Title: v["title"]})
	case models.CollectionProjectTasks:
		_, err = b.AddProjectTask(ctx, forms.ProjectTaskForm{ProjectID: v["project_id"], Title: v["title"], Status: v["status"]})
	case models.CollectionCalendar:
		_, err = b.AddCalendarTodo(ctx, forms.CalendarTodoForm{Title: v["title"], Date: v["date"]})
	case models.CollectionGoals:
		_, err = b.AddGoal(ctx, forms.GoalForm{Title: v["title"], Price: v["price"], Priority: v["priority"]})
	case models.CollectionFiles:
		err = uploadFile(ctx, b, a, v)
	default:
		err = fmt.Errorf("unknown collection %q", collection)
	}
	return err
}

// updateRecord routes an edited form to the matching board updater.
func updateRecord(ctx context.Context, b *board.Board, collection, id string, v map[string]string) error {
	var err error
	switch collection {
	case models.CollectionContacts:
		_, err = b.UpdateContact(ctx, id, forms.ContactForm{Name: v["name"], Email: v["email"], Phone: v["phone"], Notes: v["notes"]})
	case models.CollectionPasswords:
		_, err = b.UpdatePassword(ctx, id, forms.PasswordForm{Name: v["name"], URL: v["url"], Password: v["password"]})
	case models.CollectionLinks:
		_, err = b.UpdateLink(ctx, id, forms.LinkForm{Name: v["name"], URL: v["url"], Category: v["category"]})
	case models.CollectionNotes:
		_, err = b.UpdateNote(ctx, id, forms.NoteForm{Title: v["title"], Content: v["content"]})
	case models.CollectionTasks:
		_, err = b.UpdateTask(ctx, id, forms.TaskForm{Title: v["title"], CategoryID: v["category_id"], Completed: v["completed"] != ""})
	case models.CollectionTaskCategories:
		_, err = b.UpdateTaskCategory(ctx, id, forms.TaskCategoryForm{Name: v["name"]})
	case models.CollectionTransactions:
		_, err = b.UpdateTransaction(ctx, id, forms.TransactionForm{Title: v["title"], Amount: v["amount"], Date: v["date"], Category: v["category"], Type: v["type"]})
	case models.CollectionSubscriptions:
		_, err = b.UpdateSubscription(ctx, id, forms.SubscriptionForm{Name: v["name"], URL: v["url"], ExpiryDate: v["expiry_date"], Amount: v["amount"]})
	case models.CollectionProjects:
		_, err = b.UpdateProject(ctx, id, forms.ProjectForm{Title: v["title"]})
	case models.CollectionProjectTasks:
		_, err = b.UpdateProjectTask(ctx, id, forms.ProjectTaskForm{ProjectID: v["project_id"], Title: v["title"], Status: v["status"]})
	case models.CollectionCalendar:
		_, err = b.UpdateCalendarTodo(ctx, id, forms.CalendarTodoForm{Title: v["title"], Date: v["date"]})
	case models.CollectionGoals:
		_, err = b.UpdateGoal(ctx, id, forms.GoalForm{Title: v["title"], Price: v["price"], Priority: v["priority"]})
	case models.CollectionFiles:
		_, err = b.UpdateFile(ctx, id, forms.FileForm{Name: v["name"]})
	default:
		err = fmt.Errorf("unknown collection %q", collection)
	}
	return err
}

// deleteRecord removes the record from its collection. File records also
// drop their remote content first.
func deleteRecord(ctx context.Context, b *board.Board, a *adapter.ServerAdapter, collection, id string) error {
	switch collection {
	case models.CollectionContacts:
		return b.Contacts.Delete(ctx, id)
	case models.CollectionPasswords:
		return b.Passwords.Delete(ctx, id)
	case models.CollectionLinks:
		return b.Links.Delete(ctx, id)
	case models.CollectionNotes:
		return b.Notes.Delete(ctx, id)
	case models.CollectionTasks:
		return b.Tasks.Delete(ctx, id)
	case models.CollectionTaskCategories:
		return b.TaskCategories.Delete(ctx, id)
	case models.CollectionTransactions:
		return b.Transactions.Delete(ctx, id)
	case models.CollectionSubscriptions:
		return b.Subscriptions.Delete(ctx, id)
	case models.CollectionProjects:
		return b.Projects.Delete(ctx, id)
	case models.CollectionProjectTasks:
		return b.ProjectTasks.Delete(ctx, id)
	case models.CollectionCalendar:
		return b.Calendar.Delete(ctx, id)
	case models.CollectionGoals:
		return b.Goals.Delete(ctx, id)
	case models.CollectionFiles:
		if a != nil {
			if err := a.DeleteFileContent(ctx, id); err != nil {
				return err
			}
		}
		return b.Files.Delete(ctx, id)
	}
	return fmt.Errorf("unknown collection %q", collection)
}

// editValues reads the stored record back into raw form values for
// pre-filling the edit screen.
func editValues(ctx context.Context, b *board.Board, collection, id string) (map[string]string, error) {
	switch collection {
	case models.CollectionContacts:
		return findValues(ctx, b.Contacts, id, func(c *models.Contact) map[string]string {
			return map[string]string{"name": c.Name, "email": c.Email, "phone": c.Phone, "notes": c.Notes}
		})
	case models.CollectionPasswords:
		return findValues(ctx, b.Passwords, id, func(p *models.Password) map[string]string {
			return map[string]string{"name": p.Name, "url": p.URL, "password": p.Password}
		})
	case models.CollectionLinks:
		return findValues(ctx, b.Links, id, func(l *models.Link) map[string]string {
			return map[string]string{"name": l.Name, "url": l.URL, "category": l.Category}
		})
	case models.CollectionNotes:
		return findValues(ctx, b.Notes, id, func(n *models.Note) map[string]string {
			return map[string]string{"title": n.Title, "content": n.Content}
		})
	case models.CollectionTasks:
		return findValues(ctx, b.Tasks, id, func(t *models.Task) map[string]string {
			return map[string]string{"title": t.Title, "category_id": t.CategoryID, "completed": checkValue(t.Completed)}
		})
	case models.CollectionTaskCategories:
		return findValues(ctx, b.TaskCategories, id, func(c *models.TaskCategory) map[string]string {
			return map[string]string{"name": c.Name}
		})
	case models.CollectionTransactions:
		return findValues(ctx, b.Transactions, id, func(tr *models.Transaction) map[string]string {
			return map[string]string{
				"title":    tr.Title,
				"amount":   amountValue(tr.Amount),
				"date":     dateValue(tr.Date),
				"category": string(tr.Category),
				"type":     string(tr.Type),
			}
		})
	case models.CollectionSubscriptions:
		return findValues(ctx, b.Subscriptions, id, func(s *models.Subscription) map[string]string {
			return map[string]string{"name": s.Name, "url": s.URL, "expiry_date": dateValue(s.ExpiryDate), "amount": amountValue(s.Amount)}
		})
	case models.CollectionProjects:
		return findValues(ctx, b.Projects, id, func(p *models.Project) map[string]string {
			return map[string]string{"title": p.Title}
		})
	case models.CollectionProjectTasks:
		return findValues(ctx, b.ProjectTasks, id, func(t *models.ProjectTask) map[string]string {
			return map[string]string{"project_id": t.ProjectID, "title": t.Title, "status": string(t.Status)}
		})
	case models.CollectionCalendar:
		return findValues(ctx, b.Calendar, id, func(t *models.CalendarTodo) map[string]string {
			return map[string]string{"title": t.Title, "date": dateValue(t.Date)}
		})
	case models.CollectionGoals:
		return findValues(ctx, b.Goals, id, func(g *models.Goal) map[string]string {
			return map[string]string{"title": g.Title, "price": amountValue(g.Price), "priority": string(g.Priority)}
		})
	case models.CollectionFiles:
		return findValues(ctx, b.Files, id, func(f *models.FileMeta) map[string]string {
			return map[string]string{"name": f.Name}
		})
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}

// findValues lists the store and projects the record with the given id.
func findValues[T record.Entity](ctx context.Context, s record.Store[T], id string, project func(T) map[string]string) (map[string]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.EntityID() == id {
			return project(item), nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", record.ErrNotFound, id)
}

func dateValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func amountValue(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func checkValue(checked bool) string {
	if checked {
		return "x"
	}
	return ""
}

// uploadFile stores the metadata record, then pushes the raw content to
// the server in remote mode. Local mode keeps metadata only.
func uploadFile(ctx context.Context, b *board.Board, a *adapter.ServerAdapter, v map[string]string) error {
	content, err := os.ReadFile(v["path"])
	if err != nil {
		return err
	}

	name := v["name"]
	if name == "" {
		name = filepath.Base(v["path"])
	}

	meta, err := b.AddFile(ctx, forms.FileForm{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: mime.TypeByExtension(filepath.Ext(v["path"])),
	})
	if err != nil {
		return err
	}

	if a != nil {
		return a.UploadFileContent(ctx, meta.ID, content)
	}
	return nil
}

// downloadFile fetches remote content and writes it to dir under the
// stored name. Returns the written path.
func downloadFile(ctx context.Context, a *adapter.ServerAdapter, dir, id, name string) (string, error) {
	if a == nil {
		return "", fmt.Errorf("file content lives on the server, remote mode required")
	}

	content, err := a.DownloadFileContent(ctx, id)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = id
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
