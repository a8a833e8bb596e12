package board

import (
	"context"
	"time"

	"github.com/arraboard/arraboard/internal/query"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/models"
)

// MonthlySummary totals a month of transactions.
type MonthlySummary struct {
	Income  float64
	Expense float64
	Balance float64
}

// FinanceMonth returns the month's transactions, newest last, restricted to
// one category (query.AllCategories passes everything), together with the
// income/expense totals of the filtered set.
func (b *Board) FinanceMonth(ctx context.Context, year int, month time.Month, category string) ([]*models.Transaction, MonthlySummary, error) {
	all, err := b.Transactions.List(ctx)
	if err != nil {
		return nil, MonthlySummary{}, err
	}

	inMonth := query.ByMonth(all, year, month, func(t *models.Transaction) time.Time { return t.Date })
	filtered := query.ByCategory(inMonth, category, func(t *models.Transaction) string { return string(t.Category) })
	sorted := query.SortByTimeAsc(filtered, func(t *models.Transaction) time.Time { return t.Date })

	var summary MonthlySummary
	for _, t := range sorted {
		switch t.Type {
		case models.TransactionIncome:
			summary.Income += t.Amount
		case models.TransactionExpense:
			summary.Expense += t.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense

	return sorted, summary, nil
}

// GoalsByPriority returns the goals of one priority bucket. An empty
// priority or query.AllCategories returns every goal.
func (b *Board) GoalsByPriority(ctx context.Context, priority string) ([]*models.Goal, error) {
	all, err := b.Goals.List(ctx)
	if err != nil {
		return nil, err
	}
	if priority == "" {
		priority = query.AllCategories
	}
	return query.ByCategory(all, priority, func(g *models.Goal) string { return string(g.Priority) }), nil
}

// Kanban returns the project's tasks grouped into board columns. Every
// status appears in the map, empty columns included.
func (b *Board) Kanban(ctx context.Context, projectID string) (map[models.ProjectTaskStatus][]*models.ProjectTask, error) {
	all, err := b.ProjectTasks.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make(map[models.ProjectTaskStatus][]*models.ProjectTask, len(models.ProjectTaskStatuses))
	for _, status := range models.ProjectTaskStatuses {
		columns[status] = make([]*models.ProjectTask, 0)
	}
	for _, task := range all {
		if task.ProjectID != projectID {
			continue
		}
		columns[task.Status] = append(columns[task.Status], task)
	}

	return columns, nil
}

// CalendarMonth returns the month's todos in date order.
func (b *Board) CalendarMonth(ctx context.Context, year int, month time.Month) ([]*models.CalendarTodo, error) {
	all, err := b.Calendar.List(ctx)
	if err != nil {
		return nil, err
	}

	inMonth := query.ByMonth(all, year, month, func(t *models.CalendarTodo) time.Time { return t.Date })
	return query.SortByTimeAsc(inMonth, func(t *models.CalendarTodo) time.Time { return t.Date }), nil
}

// TasksInCategory returns the tasks belonging to one task category.
func (b *Board) TasksInCategory(ctx context.Context, categoryID string) ([]*models.Task, error) {
	all, err := b.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByCategory(all, categoryID, func(t *models.Task) string { return t.CategoryID }), nil
}

// UpcomingSubscriptions returns subscriptions ordered by renewal date,
// soonest first.
func (b *Board) UpcomingSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	all, err := b.Subscriptions.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortByTimeAsc(all, func(s *models.Subscription) time.Time { return s.ExpiryDate }), nil
}

// SearchContacts returns contacts matching the free-text term, any field.
func (b *Board) SearchContacts(ctx context.Context, term string) ([]*models.Contact, error) {
	all, err := b.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(all, term), nil
}

// SearchLinks returns links matching the free-text term, restricted to one
// category afterwards.
func (b *Board) SearchLinks(ctx context.Context, term, category string) ([]*models.Link, error) {
	all, err := b.Links.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := query.Search(all, term)
	if category == "" {
		category = query.AllCategories
	}
	return query.ByCategory(matched, category, func(l *models.Link) string { return l.Category }), nil
}

// SearchNotes returns notes matching the free-text term, newest first.
func (b *Board) SearchNotes(ctx context.Context, term string) ([]*models.Note, error) {
	all, err := b.Notes.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := query.Search(all, term)
	return query.SortByTimeDesc(matched, func(n *models.Note) time.Time { return n.CreatedAt }), nil
}

// SearchPasswords returns password entries matching the free-text term.
func (b *Board) SearchPasswords(ctx context.Context, term string) ([]*models.Password, error) {
	all, err := b.Passwords.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(all, term), nil
}

// Counts tallies every collection of the board. Mirrors the shape the
// server's stats endpoint reports, so either source can feed the same
// overview screen.
func (b *Board) Counts(ctx context.Context) (models.DashboardStats, error) {
	counts := make(map[string]int, len(models.Collections))
	if err := countInto(ctx, counts, models.CollectionContacts, b.Contacts); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionPasswords, b.Passwords); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionLinks, b.Links); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionNotes, b.Notes); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionTasks, b.Tasks); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionTaskCategories, b.TaskCategories); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionTransactions, b.Transactions); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionSubscriptions, b.Subscriptions); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionProjects, b.Projects); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionProjectTasks, b.ProjectTasks); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionCalendar, b.Calendar); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionGoals, b.Goals); err != nil {
		return models.DashboardStats{}, err
	}
	if err := countInto(ctx, counts, models.CollectionFiles, b.Files); err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{Collections: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func countInto[T record.Entity](ctx context.Context, counts map[string]int, collection string, s record.Store[T]) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	counts[collection] = len(items)
	return nil
}
