package query

import (
	"testing"
	"time"

	"github.com/arraboard/arraboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContacts() []*models.Contact {
	return []*models.Contact{
		{Name: "Kiss Anna", Email: "anna@example.com", Phone: "+36301234567"},
		{Name: "Nagy Béla", Email: "bela@example.com", Phone: "+36201112222"},
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	got := Search(sampleContacts(), "anna")
	require.Len(t, got, 1)
	assert.Equal(t, "Kiss Anna", got[0].Name)
}

func TestSearch_MatchesAnyField(t *testing.T) {
	got := Search(sampleContacts(), "+3620")
	require.Len(t, got, 1)
	assert.Equal(t, "Nagy Béla", got[0].Name)
}

func TestSearch_EmptyTermMatchesAll(t *testing.T) {
	contacts := sampleContacts()
	assert.Len(t, Search(contacts, ""), 2)
	assert.Len(t, Search(contacts, "   "), 2)
}

func TestSearch_Idempotent(t *testing.T) {
	contacts := sampleContacts()

	once := Search(contacts, "example")
	twice := Search(once, "example")

	assert.Equal(t, once, twice)
}

func TestSearch_PreservesOrderAndInput(t *testing.T) {
	contacts := sampleContacts()

	got := Search(contacts, "example")
	require.Len(t, got, 2)
	assert.Equal(t, "Kiss Anna", got[0].Name)
	assert.Equal(t, "Nagy Béla", got[1].Name)

	// input slice must not be mutated
	assert.Len(t, contacts, 2)
}

func transactionDate(tx *models.Transaction) time.Time { return tx.Date }

func TestByMonth_IncludesAndExcludes(t *testing.T) {
	txs := []*models.Transaction{
		{Title: "fizetés", Amount: 15000, Date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), Type: models.TransactionIncome, Category: models.CategoryWork},
	}

	assert.Len(t, ByMonth(txs, 2024, time.March, transactionDate), 1)
	assert.Empty(t, ByMonth(txs, 2024, time.April, transactionDate))
}

func TestInMonth_BoundsAreInclusive(t *testing.T) {
	first := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC)

	assert.True(t, InMonth(first, 2024, time.February))
	assert.True(t, InMonth(last, 2024, time.February))
	assert.False(t, InMonth(first.Add(-time.Nanosecond), 2024, time.February))
	assert.False(t, InMonth(last.Add(time.Nanosecond), 2024, time.February))
}

func goalPriority(g *models.Goal) string { return string(g.Priority) }

func TestByCategory_ExactMatch(t *testing.T) {
	goals := []*models.Goal{
		{Title: "bicikli", Priority: models.PriorityHigh},
		{Title: "könyv", Priority: models.PriorityLow},
	}

	got := ByCategory(goals, "magas", goalPriority)
	require.Len(t, got, 1)
	assert.Equal(t, "bicikli", got[0].Title)

	// case-sensitive against the enum
	assert.Empty(t, ByCategory(goals, "Magas", goalPriority))
}

func TestByCategory_AllSentinel(t *testing.T) {
	goals := []*models.Goal{
		{Title: "bicikli", Priority: models.PriorityHigh},
		{Title: "könyv", Priority: models.PriorityLow},
	}

	assert.Len(t, ByCategory(goals, AllCategories, goalPriority), 2)
}

func TestSortByTime(t *testing.T) {
	early := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	todos := []*models.CalendarTodo{
		{Title: "later", Date: late},
		{Title: "earlier", Date: early},
	}
	dateOf := func(c *models.CalendarTodo) time.Time { return c.Date }

	asc := SortByTimeAsc(todos, dateOf)
	require.Len(t, asc, 2)
	assert.Equal(t, "earlier", asc[0].Title)

	desc := SortByTimeDesc(todos, dateOf)
	assert.Equal(t, "later", desc[0].Title)

	// projections never reorder their input
	assert.Equal(t, "later", todos[0].Title)
}
