package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arraboard/arraboard/models"
)

// formField is one labelled input of a collection form. key matches the
// form field consumed in submit.go.
type formField struct {
	key         string
	label       string
	placeholder string
	secret      bool
}

// collectionFields is the form layout per collection, in submission order.
func collectionFields(collection string) []formField {
	switch collection {
	case models.CollectionContacts:
		return []formField{
			{key: "name", label: "Név"},
			{key: "email", label: "Email"},
			{key: "phone", label: "Telefon"},
			{key: "notes", label: "Jegyzet"},
		}
	case models.CollectionPasswords:
		return []formField{
			{key: "name", label: "Név"},
			{key: "url", label: "URL"},
			{key: "password", label: "Jelszó", secret: true},
		}
	case models.CollectionLinks:
		return []formField{
			{key: "name", label: "Név"},
			{key: "url", label: "URL"},
			{key: "category", label: "Kategória"},
		}
	case models.CollectionNotes:
		return []formField{
			{key: "title", label: "Cím"},
			{key: "content", label: "Tartalom"},
		}
	case models.CollectionTasks:
		return []formField{
			{key: "title", label: "Cím"},
			{key: "category_id", label: "Kategória ID"},
			{key: "completed", label: "Kész", placeholder: "x = kész"},
		}
	case models.CollectionTaskCategories:
		return []formField{
			{key: "name", label: "Név"},
		}
	case models.CollectionTransactions:
		return []formField{
			{key: "title", label: "Megnevezés"},
			{key: "amount", label: "Összeg"},
			{key: "date", label: "Dátum", placeholder: "2006-01-02"},
			{key: "category", label: "Kategória", placeholder: "personal / work / extra"},
			{key: "type", label: "Típus", placeholder: "income / expense"},
		}
	case models.CollectionSubscriptions:
		return []formField{
			{key: "name", label: "Név"},
			{key: "url", label: "URL"},
			{key: "expiry_date", label: "Lejárat", placeholder: "2006-01-02"},
			{key: "amount", label: "Díj"},
		}
	case models.CollectionProjects:
		return []formField{
			{key: "title", label: "Cím"},
		}
	case models.CollectionProjectTasks:
		return []formField{
			{key: "project_id", label: "Projekt ID"},
			{key: "title", label: "Cím"},
			{key: "status", label: "Státusz", placeholder: "todo / doing / done"},
		}
	case models.CollectionCalendar:
		return []formField{
			{key: "title", label: "Cím"},
			{key: "date", label: "Dátum", placeholder: "2006-01-02"},
		}
	case models.CollectionGoals:
		return []formField{
			{key: "title", label: "Cél"},
			{key: "price", label: "Ár"},
			{key: "priority", label: "Prioritás", placeholder: "magas / közepes / alacsony"},
		}
	case models.CollectionFiles:
		return []formField{
			{key: "name", label: "Név"},
			{key: "path", label: "Fájl elérési út"},
		}
	}
	return nil
}

// formModel is the create/edit screen state for one collection.
type formModel struct {
	collection string
	fields     []formField
	inputs     []textinput.Model
	focus      int
	editing    bool
	recordID   string
}

func newFormModel(collection string) formModel {
	fields := collectionFields(collection)
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Placeholder = f.placeholder
		if f.secret {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return formModel{collection: collection, fields: fields, inputs: inputs}
}

// newEditFormModel pre-fills the form with the stored record's values.
func newEditFormModel(collection, id string, values map[string]string) formModel {
	m := newFormModel(collection)
	m.editing = true
	m.recordID = id
	for i, f := range m.fields {
		m.inputs[i].SetValue(values[f.key])
	}
	return m
}

// focusField moves focus to input i, wrapping at both ends.
func (m formModel) focusField(i int) formModel {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = ((i % len(m.inputs)) + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// values snapshots the raw inputs, keyed by field.
func (m formModel) values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		out[f.key] = m.inputs[i].Value()
	}
	return out
}

func (m formModel) title() string {
	if m.editing {
		return "Szerkesztés · " + collectionLabels[m.collection]
	}
	return "Új elem · " + collectionLabels[m.collection]
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		b.WriteString(labelStyle.Render(f.label) + "\n" + m.inputs[i].View() + "\n")
	}
	b.WriteString(helpStyle.Render("\ntab: következő mező · enter: mentés · esc: mégse"))
	return b.String()
}
