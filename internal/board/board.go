// Package board glues the feature collections together: one typed store per
// feature over a shared backend, plus the derived views the UI renders
// (monthly finance summaries, kanban columns, calendar months, priority
// buckets).
package board

import (
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

// Board exposes every feature collection as a typed record store. All
// stores of one Board share the same backend, so a Board is either fully
// local or fully remote.
type Board struct {
	Contacts       record.Store[*models.Contact]
	Passwords      record.Store[*models.Password]
	Links          record.Store[*models.Link]
	Notes          record.Store[*models.Note]
	Tasks          record.Store[*models.Task]
	TaskCategories record.Store[*models.TaskCategory]
	Transactions   record.Store[*models.Transaction]
	Subscriptions  record.Store[*models.Subscription]
	Projects       record.Store[*models.Project]
	ProjectTasks   record.Store[*models.ProjectTask]
	Calendar       record.Store[*models.CalendarTodo]
	Goals          record.Store[*models.Goal]
	Files          record.Store[*models.FileMeta]
}

// NewLocalBoard keeps every collection in a JSON blob file under dir.
func NewLocalBoard(dir string, ids *utils.IDGenerator, log *logger.Logger) *Board {
	return &Board{
		Contacts:       record.NewLocalStore[*models.Contact](dir, models.CollectionContacts, ids, log),
		Passwords:      record.NewLocalStore[*models.Password](dir, models.CollectionPasswords, ids, log),
		Links:          record.NewLocalStore[*models.Link](dir, models.CollectionLinks, ids, log),
		Notes:          record.NewLocalStore[*models.Note](dir, models.CollectionNotes, ids, log),
		Tasks:          record.NewLocalStore[*models.Task](dir, models.CollectionTasks, ids, log),
		TaskCategories: record.NewLocalStore[*models.TaskCategory](dir, models.CollectionTaskCategories, ids, log),
		Transactions:   record.NewLocalStore[*models.Transaction](dir, models.CollectionTransactions, ids, log),
		Subscriptions:  record.NewLocalStore[*models.Subscription](dir, models.CollectionSubscriptions, ids, log),
		Projects:       record.NewLocalStore[*models.Project](dir, models.CollectionProjects, ids, log),
		ProjectTasks:   record.NewLocalStore[*models.ProjectTask](dir, models.CollectionProjectTasks, ids, log),
		Calendar:       record.NewLocalStore[*models.CalendarTodo](dir, models.CollectionCalendar, ids, log),
		Goals:          record.NewLocalStore[*models.Goal](dir, models.CollectionGoals, ids, log),
		Files:          record.NewLocalStore[*models.FileMeta](dir, models.CollectionFiles, ids, log),
	}
}

// NewRemoteBoard backs every collection by the ArraBoard server behind
// client.
func NewRemoteBoard(client record.RemoteClient, ids *utils.IDGenerator, log *logger.Logger) *Board {
	return &Board{
		Contacts:       record.NewRemoteStore[*models.Contact](client, models.CollectionContacts, ids, log),
		Passwords:      record.NewRemoteStore[*models.Password](client, models.CollectionPasswords, ids, log),
		Links:          record.NewRemoteStore[*models.Link](client, models.CollectionLinks, ids, log),
		Notes:          record.NewRemoteStore[*models.Note](client, models.CollectionNotes, ids, log),
		Tasks:          record.NewRemoteStore[*models.Task](client, models.CollectionTasks, ids, log),
		TaskCategories: record.NewRemoteStore[*models.TaskCategory](client, models.CollectionTaskCategories, ids, log),
		Transactions:   record.NewRemoteStore[*models.Transaction](client, models.CollectionTransactions, ids, log),
		Subscriptions:  record.NewRemoteStore[*models.Subscription](client, models.CollectionSubscriptions, ids, log),
		Projects:       record.NewRemoteStore[*models.Project](client, models.CollectionProjects, ids, log),
		ProjectTasks:   record.NewRemoteStore[*models.ProjectTask](client, models.CollectionProjectTasks, ids, log),
		Calendar:       record.NewRemoteStore[*models.CalendarTodo](client, models.CollectionCalendar, ids, log),
		Goals:          record.NewRemoteStore[*models.Goal](client, models.CollectionGoals, ids, log),
		Files:          record.NewRemoteStore[*models.FileMeta](client, models.CollectionFiles, ids, log),
	}
}
