package tui

// Form definitions built on huh, validated before any request is issued

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"

	"github.com/ucsb-cs156/frontiers-tui/frontiers"
)

var validate = validator.New()

// validateEmail rejects anything that is not a well-formed email address.
// Validation failures surface as inline field messages; no request is issued
// for an invalid form.
func validateEmail(s string) error {
	if err := validate.Var(s, "required,email"); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validateRequired(s string) error {
	if err := validate.Var(s, "required"); err != nil {
		return fmt.Errorf("this field is required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

// activeForm is the modal form overlaying the current page. onDone runs when
// the form completes and returns the command that performs the write.
type activeForm struct {
	form   *huh.Form
	title  string
	onDone func(m *Model) tea.Cmd
}

// newCourseForm binds a create or edit course form. fields is pre-populated
// for edits.
func newCourseForm(title string, fields *frontiers.NewCourse, onDone func(m *Model) tea.Cmd) *activeForm {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course Name").
				Description("e.g. CMPSC 156").
				Validate(validateRequired).
				Value(&fields.CourseName),

			huh.NewInput().
				Title("Term").
				Description("e.g. F25").
				Validate(validateRequired).
				Value(&fields.Term),

			huh.NewInput().
				Title("School").
				Validate(validateRequired).
				Value(&fields.School),

			huh.NewInput().
				Title("Start Date").
				Validate(validateDate).
				Value(&fields.StartDate),

			huh.NewInput().
				Title("End Date").
				Validate(validateDate).
				Value(&fields.EndDate),

			huh.NewInput().
				Title("GitHub Org").
				Validate(validateRequired).
				Value(&fields.OrgName),
		),
	)
	return &activeForm{form: form, title: title, onDone: onDone}
}

// newEmailForm binds a single-email form used for role grants.
func newEmailForm(title string, email *string, onDone func(m *Model) tea.Cmd) *activeForm {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Validate(validateEmail).
				Value(email),
		),
	)
	return &activeForm{form: form, title: title, onDone: onDone}
}

// newRosterStudentForm binds a create or edit roster entry form.
func newRosterStudentForm(title string, fields *frontiers.NewRosterStudent, onDone func(m *Model) tea.Cmd) *activeForm {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student Id").
				Validate(validateRequired).
				Value(&fields.StudentID),

			huh.NewInput().
				Title("First Name").
				Validate(validateRequired).
				Value(&fields.FirstName),

			huh.NewInput().
				Title("Last Name").
				Validate(validateRequired).
				Value(&fields.LastName),

			huh.NewInput().
				Title("Email").
				Validate(validateEmail).
				Value(&fields.Email),
		),
	)
	return &activeForm{form: form, title: title, onDone: onDone}
}

// newSingleValueForm binds one required text input, used for team names,
// staff GitHub logins, and CSV paths.
func newSingleValueForm(title, label string, value *string, onDone func(m *Model) tea.Cmd) *activeForm {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				Validate(validateRequired).
				Value(value),
		),
	)
	return &activeForm{form: form, title: title, onDone: onDone}
}

// updateForm advances the active form. When the form completes it is
// dismissed and its onDone command runs; when aborted it is just dismissed.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	af := m.form
	model, cmd := af.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		af.form = f
	}

	switch af.form.State {
	case huh.StateCompleted:
		m.form = nil
		if af.onDone != nil {
			return m, af.onDone(&m)
		}
		return m, cmd
	case huh.StateAborted:
		m.form = nil
		m.setFeedback("cancelled", false)
		return m, nil
	}
	return m, cmd
}
