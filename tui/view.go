package tui

// View rendering for every page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ucsb-cs156/frontiers-tui/auth"
	"github.com/ucsb-cs156/frontiers-tui/internal/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	sectionStyle  = lipgloss.NewStyle().Underline(true)
	focusedMarker = "> "
)

func (m Model) View() string {
	var body string
	switch {
	case m.form != nil:
		body = titleStyle.Render(m.form.title) + "\n" + m.form.form.View()
	case m.Page == PageLogin:
		body = m.viewLogin()
	case m.Page == PageOnboarding:
		body = titleStyle.Render("Welcome to Frontiers") + "\n" + m.Onboarding.form.View()
	case m.Page == PageHome:
		body = m.viewHome()
	case m.Page == PageCourses:
		body = m.viewTablePage("Courses", m.Courses.table, m.Courses.err, "")
	case m.Page == PageAdminRoles:
		body = m.viewAdminRoles()
	case m.Page == PageUsers:
		body = m.viewTablePage("Users", m.Users.table, m.Users.err, m.Users.paginator.View())
	case m.Page == PageRoster:
		body = m.viewCourseScopedPage("Roster", m.Roster.table, m.Roster.err)
	case m.Page == PageStaff:
		body = m.viewCourseScopedPage("Staff", m.Staff.table, m.Staff.err)
	case m.Page == PageTeams:
		body = m.viewCourseScopedPage("Teams", m.Teams.table, m.Teams.err)
	case m.Page == PageJobs:
		if m.Jobs.detail != nil {
			body = m.viewJobDetail()
		} else {
			body = m.viewTablePage("Jobs", m.Jobs.table, m.Jobs.err, m.Jobs.paginator.View())
		}
	case m.Page == PageProfile:
		body = m.viewProfile()
	}

	lines := []string{body}
	if fb := m.feedbackLine(); fb != "" {
		if m.FeedbackIsError {
			lines = append(lines, errorStyle.Render(fb))
		} else {
			lines = append(lines, okStyle.Render(fb))
		}
	}
	lines = append(lines, hintStyle.Render(m.helpLine()))
	return strings.Join(lines, "\n")
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Frontiers Console " + AppVersion))
	b.WriteString("\n\n")

	switch m.AuthState {
	case auth.AuthStateUnknown:
		b.WriteString("Checking stored credentials...\n")
	case auth.AuthStateRequired:
		b.WriteString("Sign in with GitHub to continue.\n")
	case auth.AuthStateInProgress:
		if m.DeviceCode != nil {
			b.WriteString(fmt.Sprintf("Visit %s and enter code: %s\n",
				m.DeviceCode.VerificationURI, m.DeviceCode.UserCode))
			b.WriteString("Waiting for authorization...\n")
		} else {
			b.WriteString("Requesting device code...\n")
		}
	case auth.AuthStateFailed:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Sign-in failed: %v", m.AuthError)))
		b.WriteString("\nPress enter to retry.\n")
	case auth.AuthStateCompleted:
		b.WriteString("Signed in.\n")
	}
	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Frontiers Console"))
	b.WriteString("\n")
	if m.CurrentUser.User.Email != "" {
		b.WriteString(fmt.Sprintf("Signed in as %s (%s)\n",
			util.FirstNonEmpty(m.CurrentUser.User.FullName, m.CurrentUser.User.GithubLogin),
			m.CurrentUser.User.Email))
	}
	b.WriteString("\n")
	b.WriteString("  c  Courses\n")
	b.WriteString("  s  My Staff Courses\n")
	if m.CurrentUser.HasRole("ROLE_ADMIN") {
		b.WriteString("  r  Admin & Instructor Roles\n")
		b.WriteString("  u  Users\n")
		b.WriteString("  j  Jobs\n")
	}
	b.WriteString("  p  Profile\n")
	b.WriteString("  o  Onboarding\n")
	if m.SystemInfo.SourceRepo != "" {
		b.WriteString("\n" + hintStyle.Render("server: "+m.SystemInfo.SourceRepo) + "\n")
	}
	return b.String()
}

func (m Model) viewTablePage(title string, table *DataTable, err error, pagination string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if err != nil {
		b.WriteString(errorStyle.Render("load failed, showing cached or empty data") + "\n")
	}
	b.WriteString(table.View())
	if pagination != "" {
		b.WriteString("\n" + pagination)
	}
	return b.String()
}

func (m Model) viewCourseScopedPage(title string, table *DataTable, err error) string {
	scope := ""
	if m.SelectedCourse != nil {
		scope = fmt.Sprintf(" for %s (%s)", m.SelectedCourse.CourseName, m.SelectedCourse.Term)
	}
	return m.viewTablePage(title+scope, table, err, "")
}

func (m Model) viewAdminRoles() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Admin & Instructor Roles"))
	b.WriteString("\n")
	if m.AdminRoles.err != nil {
		b.WriteString(errorStyle.Render("load failed, showing cached or empty data") + "\n")
	}

	adminHeader := sectionStyle.Render("Admins")
	instructorHeader := sectionStyle.Render("Instructors")
	if m.AdminRoles.focusInstructors {
		instructorHeader = focusedMarker + instructorHeader
	} else {
		adminHeader = focusedMarker + adminHeader
	}

	b.WriteString(adminHeader + "\n")
	b.WriteString(m.AdminRoles.adminsTable.View())
	b.WriteString("\n" + instructorHeader + "\n")
	b.WriteString(m.AdminRoles.instructorsTable.View())
	b.WriteString("\n" + hintStyle.Render("tab: switch section  n: grant role"))
	return b.String()
}

func (m Model) viewJobDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Job %d", m.Jobs.detailJobID)))
	b.WriteString("\n")
	width := 0
	for _, f := range m.Jobs.detail {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}
	for _, f := range m.Jobs.detail {
		b.WriteString(fmt.Sprintf("%-*s  %s\n", width, f.Key, f.Value))
	}
	b.WriteString("\n" + hintStyle.Render("esc: back to job list"))
	return b.String()
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n")
	u := m.CurrentUser.User
	b.WriteString(fmt.Sprintf("Name:    %s\n", u.FullName))
	b.WriteString(fmt.Sprintf("Email:   %s\n", u.Email))
	b.WriteString(fmt.Sprintf("GitHub:  %s\n", util.FirstNonEmpty(u.GithubLogin, "(not linked)")))
	b.WriteString(fmt.Sprintf("Roles:   %s\n", strings.Join(m.CurrentUser.Roles, ", ")))
	b.WriteString("\n")
	b.WriteString("  d  Disconnect GitHub\n")
	b.WriteString("  x  Sign out\n")
	return b.String()
}
