package tui

// Onboarding wizard for first-time instructors

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// onboardingState binds the wizard's values through pointers so they survive
// the model copies Bubble Tea makes between updates.
type onboardingState struct {
	school   *string
	provider *string
	confirm  *bool
	form     *huh.Form
}

// newOnboardingState builds the wizard: pick a school, pick an identity
// provider, confirm. Choices are stashed in the session so the course
// creation form that follows can read them.
func newOnboardingState() onboardingState {
	s := onboardingState{
		school:   new(string),
		provider: new(string),
		confirm:  new(bool),
	}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("School").
				Description("Where do you teach?").
				Options(
					huh.NewOption("UC Santa Barbara", "ucsb"),
					huh.NewOption("Oregon State University", "oregonstate"),
					huh.NewOption("Other", "other"),
				).
				Value(s.school),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sign-in Provider").
				Description("How do your students sign in?").
				Options(
					huh.NewOption("GitHub", "github"),
					huh.NewOption("Google", "google"),
				).
				Value(s.provider),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create your first course now?").
				Affirmative("Yes").
				Negative("Later").
				Value(s.confirm),
		),
	)
	return s
}

// startOnboarding switches to the wizard page.
func (m Model) startOnboarding() (tea.Model, tea.Cmd) {
	m.Onboarding = newOnboardingState()
	m.Page = PageOnboarding
	return m, m.Onboarding.form.Init()
}

// updateOnboarding advances the wizard. On completion the choices land in
// the session under the onboarding keys and the user continues to either
// the new-course form or the home page.
func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.Onboarding.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.Onboarding.form = f
	}

	switch m.Onboarding.form.State {
	case huh.StateCompleted:
		m.Session.Set(SessionOnboardingSchool, *m.Onboarding.school)
		m.Session.Set(SessionOnboardingProvider, *m.Onboarding.provider)
		if *m.Onboarding.confirm {
			m.Session.Set(SessionRedirect, "courses/new")
			return m.openNewCourseForm()
		}
		m.Page = PageHome
		return m, nil
	case huh.StateAborted:
		m.Page = PageHome
		return m, nil
	}
	return m, cmd
}
