package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/arraboard/arraboard/internal/board"
	"github.com/arraboard/arraboard/models"
)

// boardItem is one row of the record list, already flattened for display.
// secret holds the value the clipboard shortcut copies (password entries
// only).
type boardItem struct {
	id     string
	title  string
	desc   string
	detail string
	secret string
}

func (i boardItem) Title() string       { return i.title }
func (i boardItem) Description() string { return i.desc }
func (i boardItem) FilterValue() string { return i.title + " " + i.desc }

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.0f Ft", amount)
}

// loadItems flattens one collection into list rows. The switch is the
// single place the TUI knows about concrete record shapes.
func loadItems(ctx context.Context, b *board.Board, collection string) ([]boardItem, error) {
	switch collection {
	case models.CollectionContacts:
		contacts, err := b.Contacts.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(contacts))
		for _, c := range contacts {
			items = append(items, boardItem{
				id:    c.ID,
				title: c.Name,
				desc:  c.Email,
				detail: fmt.Sprintf("Név: %s\nEmail: %s\nTelefon: %s\nJegyzet: %s",
					c.Name, c.Email, c.Phone, c.Notes),
			})
		}
		return items, nil

	case models.CollectionPasswords:
		passwords, err := b.Passwords.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(passwords))
		for _, p := range passwords {
			items = append(items, boardItem{
				id:     p.ID,
				title:  p.Name,
				desc:   p.URL,
				detail: fmt.Sprintf("Név: %s\nURL: %s\nJelszó: ********", p.Name, p.URL),
				secret: p.Password,
			})
		}
		return items, nil

	case models.CollectionLinks:
		links, err := b.Links.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(links))
		for _, l := range links {
			items = append(items, boardItem{
				id:     l.ID,
				title:  l.Name,
				desc:   l.Category,
				detail: fmt.Sprintf("Név: %s\nURL: %s\nKategória: %s", l.Name, l.URL, l.Category),
			})
		}
		return items, nil

	case models.CollectionNotes:
		notes, err := b.SearchNotes(ctx, "")
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(notes))
		for _, n := range notes {
			items = append(items, boardItem{
				id:     n.ID,
				title:  n.Title,
				desc:   formatDate(n.CreatedAt),
				detail: fmt.Sprintf("%s\n\n%s", n.Title, n.Content),
			})
		}
		return items, nil

	case models.CollectionTasks:
		tasks, err := b.Tasks.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(tasks))
		for _, task := range tasks {
			mark := "[ ]"
			if task.Completed {
				mark = "[x]"
			}
			items = append(items, boardItem{
				id:     task.ID,
				title:  mark + " " + task.Title,
				desc:   formatDate(task.CreatedAt),
				detail: fmt.Sprintf("%s %s", mark, task.Title),
			})
		}
		return items, nil

	case models.CollectionTaskCategories:
		categories, err := b.TaskCategories.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(categories))
		for _, c := range categories {
			items = append(items, boardItem{id: c.ID, title: c.Name, detail: c.Name})
		}
		return items, nil

	case models.CollectionTransactions:
		now := time.Now()
		transactions, summary, err := b.FinanceMonth(ctx, now.Year(), now.Month(), "all")
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(transactions)+1)
		items = append(items, boardItem{
			title: "Havi egyenleg",
			desc:  formatAmount(summary.Balance),
			detail: fmt.Sprintf("Bevétel: %s\nKiadás: %s\nEgyenleg: %s",
				formatAmount(summary.Income), formatAmount(summary.Expense), formatAmount(summary.Balance)),
		})
		for _, tr := range transactions {
			items = append(items, boardItem{
				id:    tr.ID,
				title: tr.Title,
				desc:  fmt.Sprintf("%s · %s", formatDate(tr.Date), formatAmount(tr.Amount)),
				detail: fmt.Sprintf("Megnevezés: %s\nÖsszeg: %s\nDátum: %s\nKategória: %s\nTípus: %s",
					tr.Title, formatAmount(tr.Amount), formatDate(tr.Date), tr.Category, tr.Type),
			})
		}
		return items, nil

	case models.CollectionSubscriptions:
		subs, err := b.UpcomingSubscriptions(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(subs))
		for _, sub := range subs {
			items = append(items, boardItem{
				id:    sub.ID,
				title: sub.Name,
				desc:  "lejár: " + formatDate(sub.ExpiryDate),
				detail: fmt.Sprintf("Név: %s\nURL: %s\nLejárat: %s\nDíj: %s",
					sub.Name, sub.URL, formatDate(sub.ExpiryDate), formatAmount(sub.Amount)),
			})
		}
		return items, nil

	case models.CollectionProjects:
		projects, err := b.Projects.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(projects))
		for _, p := range projects {
			columns, err := b.Kanban(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("todo %d · doing %d · done %d",
				len(columns[models.StatusTodo]), len(columns[models.StatusDoing]), len(columns[models.StatusDone]))
			items = append(items, boardItem{
				id:     p.ID,
				title:  p.Title,
				desc:   desc,
				detail: kanbanDetail(p.Title, columns),
			})
		}
		return items, nil

	case models.CollectionProjectTasks:
		tasks, err := b.ProjectTasks.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(tasks))
		for _, task := range tasks {
			items = append(items, boardItem{
				id:    task.ID,
				title: task.Title,
				desc:  string(task.Status),
				detail: fmt.Sprintf("Cím: %s\nStátusz: %s\nProjekt: %s",
					task.Title, task.Status, task.ProjectID),
			})
		}
		return items, nil

	case models.CollectionCalendar:
		now := time.Now()
		todos, err := b.CalendarMonth(ctx, now.Year(), now.Month())
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(todos))
		for _, todo := range todos {
			items = append(items, boardItem{
				id:     todo.ID,
				title:  todo.Title,
				desc:   formatDate(todo.Date),
				detail: fmt.Sprintf("%s\n%s", todo.Title, formatDate(todo.Date)),
			})
		}
		return items, nil

	case models.CollectionGoals:
		goals, err := b.Goals.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(goals))
		for _, g := range goals {
			items = append(items, boardItem{
				id:    g.ID,
				title: g.Title,
				desc:  fmt.Sprintf("%s · %s", g.Priority, formatAmount(g.Price)),
				detail: fmt.Sprintf("Cél: %s\nÁr: %s\nPrioritás: %s",
					g.Title, formatAmount(g.Price), g.Priority),
			})
		}
		return items, nil

	case models.CollectionFiles:
		files, err := b.Files.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]boardItem, 0, len(files))
		for _, f := range files {
			items = append(items, boardItem{
				id:    f.ID,
				title: f.Name,
				desc:  fmt.Sprintf("%d bájt", f.Size),
				detail: fmt.Sprintf("Név: %s\nMéret: %d bájt\nTípus: %s",
					f.Name, f.Size, f.ContentType),
			})
		}
		return items, nil
	}

	return nil, fmt.Errorf("unknown collection %q", collection)
}

func kanbanDetail(title string, columns map[models.ProjectTaskStatus][]*models.ProjectTask) string {
	out := title + "\n"
	for _, status := range models.ProjectTaskStatuses {
		out += fmt.Sprintf("\n%s:\n", status)
		for _, task := range columns[status] {
			out += "  - " + task.Title + "\n"
		}
	}
	return out
}
