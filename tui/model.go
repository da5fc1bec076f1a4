package tui

// Model for Bubble Tea TUI

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ucsb-cs156/frontiers-tui/auth"
	"github.com/ucsb-cs156/frontiers-tui/config"
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

const AppVersion = "v1.0.0"

// Page identifies the visible screen.
type Page int

const (
	PageLogin Page = iota
	PageHome
	PageCourses
	PageAdminRoles
	PageUsers
	PageRoster
	PageStaff
	PageTeams
	PageJobs
	PageProfile
	PageOnboarding
)

// Model is the top-level application state. One instance owns the query
// cache, the API client, and every page's sub-state.
type Model struct {
	Config  config.Config
	Session *Session
	Store   *query.Store
	Client  *frontiers.Client

	Page         Page
	WindowWidth  int
	WindowHeight int

	FeedbackMessage string
	FeedbackIsError bool

	// Authentication state
	AuthState     auth.AuthState
	DeviceCode    *auth.DeviceCodeResponse
	AuthError     error
	Authenticator *auth.Authenticator

	CurrentUser frontiers.CurrentUser
	SystemInfo  frontiers.SystemInfo

	// Page state
	Courses    coursesPageState
	AdminRoles adminRolesPageState
	Users      usersPageState
	Roster     rosterPageState
	Staff      staffPageState
	Teams      teamsPageState
	Jobs       jobsPageState
	Onboarding onboardingState

	// The course the roster/staff/teams pages are scoped to
	SelectedCourse *frontiers.Course

	form *activeForm
}

// InitialModel builds the starting state from loaded configuration.
func InitialModel(cfg config.Config) Model {
	authenticator := auth.NewAuthenticator(cfg.OAuth2)
	return Model{
		Config:        cfg,
		Session:       NewSession(),
		Store:         query.NewStore(),
		Client:        frontiers.NewClientWithAuthenticator(authenticator, cfg.BaseURL),
		Page:          PageLogin,
		WindowWidth:   80,
		WindowHeight:  24,
		AuthState:     auth.AuthStateUnknown,
		Authenticator: authenticator,
		Courses:       newCoursesPageState(),
		AdminRoles:    newAdminRolesPageState(),
		Users:         newUsersPageState(),
		Roster:        newRosterPageState(),
		Staff:         newStaffPageState(),
		Teams:         newTeamsPageState(),
		Jobs:          newJobsPageState(),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return checkAuthStatus(m.Authenticator)
}

// setFeedback records a toast-style message shown in the status line.
func (m *Model) setFeedback(msg string, isError bool) {
	m.FeedbackMessage = msg
	m.FeedbackIsError = isError
}

// helpLine returns the key hints for the current page.
func (m Model) helpLine() string {
	switch m.Page {
	case PageLogin:
		return "enter: sign in with GitHub  q: quit"
	case PageHome:
		return "c: courses  s: staff courses  r: roles  u: users  j: jobs  p: profile  q: quit"
	case PageJobs:
		return "[/]: page  v: details  t: launch test job  P: purge  esc: back  q: quit"
	case PageUsers:
		return "[/]: page  esc: back  q: quit"
	case PageCourses:
		return "o: roster  S: staff  T: teams  n: new  R: refresh  s: sort  f: filter  esc: back  q: quit"
	default:
		return "s: sort  f: filter  n: new  esc: back  q: quit"
	}
}

// feedbackLine formats the status line, empty when there is no feedback.
func (m Model) feedbackLine() string {
	if m.FeedbackMessage == "" {
		return ""
	}
	prefix := "ok"
	if m.FeedbackIsError {
		prefix = "error"
	}
	return fmt.Sprintf("[%s] %s", prefix, m.FeedbackMessage)
}
