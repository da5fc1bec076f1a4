package tui

// Update logic for Bubble Tea TUI

import (
	"fmt"
	"net/http"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ucsb-cs156/frontiers-tui/auth"
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
)

const (
	// Key combinations
	quitKey = "ctrl+c"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Handle authentication messages
	case authCheckMsg, authInitiateMsg, deviceCodeMsg, authCompleteMsg:
		return m.handleAuthMessages(msg)

	case currentUserMsg:
		m.CurrentUser = msg.res.Data
		return m, nil

	case systemInfoMsg:
		m.SystemInfo = msg.res.Data
		return m, nil

	case coursesLoadedMsg:
		m.Courses.setCourses(msg.res)
		return m, nil

	case adminRolesLoadedMsg:
		m.AdminRoles.setRoles(msg)
		return m, nil

	case usersLoadedMsg:
		m.Users.setUsers(msg.res)
		return m, nil

	case rosterLoadedMsg:
		m.Roster.setStudents(msg.courseID, msg.res)
		return m, nil

	case staffLoadedMsg:
		m.Staff.setStaff(msg.courseID, msg.res)
		return m, nil

	case teamsLoadedMsg:
		m.Teams.setTeams(msg.courseID, msg.res)
		return m, nil

	case jobsLoadedMsg:
		m.Jobs.setJobs(msg.res)
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case tea.KeyMsg:
		return m.handleKeyMessages(msg)

	case tea.WindowSizeMsg:
		// Handle terminal resize
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.Page == PageOnboarding {
		return m.updateOnboarding(msg)
	}
	return m, nil
}

// handleAuthMessages processes authentication-related messages
func (m Model) handleAuthMessages(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authCheckMsg:
		if msg.hasValidToken {
			m.AuthState = auth.AuthStateCompleted
			m.Page = PageHome
			return m, tea.Batch(
				fetchCurrentUser(m.Client, m.Store),
				fetchSystemInfo(m.Client, m.Store),
			)
		}
		m.AuthState = auth.AuthStateRequired
		m.Page = PageLogin
		return m, nil

	case authInitiateMsg:
		m.AuthState = auth.AuthStateInProgress
		return m, initiateDeviceFlow(m.Authenticator)

	case deviceCodeMsg:
		if msg.err != nil {
			m.AuthState = auth.AuthStateFailed
			m.AuthError = msg.err
			return m, nil
		}
		m.DeviceCode = msg.deviceCode
		return m, pollForToken(m.Authenticator, msg.deviceCode.DeviceCode, msg.deviceCode.Interval)

	case authCompleteMsg:
		if msg.err != nil {
			m.AuthState = auth.AuthStateFailed
			m.AuthError = msg.err
			return m, nil
		}

		// Save token securely
		if err := m.Authenticator.SaveTokenSecurely(msg.token); err != nil {
			m.AuthState = auth.AuthStateFailed
			m.AuthError = fmt.Errorf("failed to save token: %w", err)
			return m, nil
		}

		m.AuthState = auth.AuthStateCompleted
		m.DeviceCode = nil
		m.AuthError = nil
		m.Page = PageHome
		return m, tea.Batch(
			fetchCurrentUser(m.Client, m.Store),
			fetchSystemInfo(m.Client, m.Store),
		)
	}
	return m, nil
}

// handleMutationDone reports the write's outcome and refetches the
// invalidated reads.
func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if frontiers.IsStatus(msg.err, http.StatusForbidden) {
			m.setFeedback(fmt.Sprintf("%s: not permitted", msg.action), true)
		} else {
			m.setFeedback(fmt.Sprintf("%s failed: %v", msg.action, msg.err), true)
		}
		return m, nil
	}
	m.setFeedback(fmt.Sprintf("%s succeeded", msg.action), false)
	return m, msg.reload
}

// handleKeyMessages processes keyboard input
func (m Model) handleKeyMessages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == quitKey {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.Page == PageOnboarding {
		return m.updateOnboarding(msg)
	}

	switch m.Page {
	case PageLogin:
		return m.handleLoginKeys(msg)
	case PageHome:
		return m.handleHomeKeys(msg)
	case PageCourses:
		return m.handleCoursesKeys(msg)
	case PageAdminRoles:
		return m.handleAdminRolesKeys(msg)
	case PageUsers:
		return m.handleUsersKeys(msg)
	case PageRoster:
		return m.handleRosterKeys(msg)
	case PageStaff:
		return m.handleStaffKeys(msg)
	case PageTeams:
		return m.handleTeamsKeys(msg)
	case PageJobs:
		return m.handleJobsKeys(msg)
	case PageProfile:
		return m.handleProfileKeys(msg)
	}
	return m, nil
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		if m.AuthState == auth.AuthStateRequired || m.AuthState == auth.AuthStateFailed {
			return m.Update(authInitiateMsg{})
		}
	}
	return m, nil
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.Page = PageCourses
		return m, fetchCourses(m.Client, m.Store, m.CurrentUser)
	case "s":
		m.Page = PageCourses
		return m, fetchStaffCourses(m.Client, m.Store)
	case "r":
		m.Page = PageAdminRoles
		return m, fetchAdminRoles(m.Client, m.Store)
	case "u":
		m.Page = PageUsers
		return m, fetchUsers(m.Client, m.Store, m.Users.paginator.APIPage(), m.Config.PageSize)
	case "j":
		m.Page = PageJobs
		return m, fetchJobs(m.Client, m.Store, m.Jobs.paginator.APIPage(), jobsPageSize)
	case "p":
		m.Page = PageProfile
		return m, fetchCurrentUser(m.Client, m.Store)
	case "o":
		return m.startOnboarding()
	}
	return m, nil
}

// backToHome is shared by every page's esc handling.
func (m Model) backToHome() (tea.Model, tea.Cmd) {
	m.Page = PageHome
	m.FeedbackMessage = ""
	return m, nil
}

func (m Model) handleCoursesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.backToHome()
	case "n":
		return m.openNewCourseForm()
	case "R":
		m.Store.Invalidate(keyCoursesAll())
		return m, fetchCourses(m.Client, m.Store, m.CurrentUser)
	case "o":
		// Open the selected course's roster
		if course, ok := m.Courses.courseAt(m.Courses.table.SelectedRow()); ok {
			m.SelectedCourse = &course
			m.Page = PageRoster
			return m, fetchRoster(m.Client, m.Store, course.ID)
		}
		return m, nil
	case "S":
		if course, ok := m.Courses.courseAt(m.Courses.table.SelectedRow()); ok {
			m.SelectedCourse = &course
			m.Page = PageStaff
			return m, fetchStaff(m.Client, m.Store, course.ID)
		}
		return m, nil
	case "T":
		if course, ok := m.Courses.courseAt(m.Courses.table.SelectedRow()); ok {
			m.SelectedCourse = &course
			m.Page = PageTeams
			return m, fetchTeams(m.Client, m.Store, course.ID)
		}
		return m, nil
	}

	cmd := m.Courses.table.Update(msg)
	if actionCmd := m.drainCourseActions(); actionCmd != nil {
		return m, actionCmd
	}
	return m, cmd
}

func (m *Model) drainCourseActions() tea.Cmd {
	for _, action := range m.Courses.queue.drain() {
		course, ok := m.Courses.courseAt(action.ctx.RowIndex)
		if !ok {
			continue
		}
		switch action.kind {
		case "delete":
			mut := deleteCourseMutation(m.Client, m.Store)
			return runMutation(mut, course.ID, "delete course", fetchCourses(m.Client, m.Store, m.CurrentUser))
		case "edit":
			return m.openEditCourseFormCmd(course)
		}
	}
	return nil
}

func (m Model) openNewCourseForm() (tea.Model, tea.Cmd) {
	fields := &frontiers.NewCourse{}
	if school, ok := m.Session.Take(SessionOnboardingSchool); ok {
		fields.School = school
	}
	m.form = newCourseForm("New Course", fields, func(mm *Model) tea.Cmd {
		mut := createCourseMutation(mm.Client, mm.Store)
		return runMutation(mut, *fields, "create course", fetchCourses(mm.Client, mm.Store, mm.CurrentUser))
	})
	m.Page = PageCourses
	return m, m.form.form.Init()
}

// openEditCourseFormCmd returns a command that installs the edit form on the
// next update cycle.
func (m *Model) openEditCourseFormCmd(course frontiers.Course) tea.Cmd {
	fields := &frontiers.NewCourse{
		CourseName: course.CourseName,
		Term:       course.Term,
		School:     course.School,
		StartDate:  course.StartDate,
		EndDate:    course.EndDate,
		OrgName:    course.OrgName,
	}
	m.form = newCourseForm("Edit Course", fields, func(mm *Model) tea.Cmd {
		mut := updateCourseMutation(mm.Client, mm.Store)
		return runMutation(mut, courseUpdate{ID: course.ID, Fields: *fields}, "update course", fetchCourses(mm.Client, mm.Store, mm.CurrentUser))
	})
	return m.form.form.Init()
}

func (m Model) handleAdminRolesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.backToHome()
	case "tab":
		m.AdminRoles.focusInstructors = !m.AdminRoles.focusInstructors
		return m, nil
	case "n":
		email := new(string)
		if m.AdminRoles.focusInstructors {
			m.form = newEmailForm("Grant Instructor Role", email, func(mm *Model) tea.Cmd {
				mut := addInstructorMutation(mm.Client, mm.Store)
				return runMutation(mut, *email, "grant instructor role", fetchAdminRoles(mm.Client, mm.Store))
			})
		} else {
			m.form = newEmailForm("Grant Admin Role", email, func(mm *Model) tea.Cmd {
				mut := addAdminMutation(mm.Client, mm.Store)
				return runMutation(mut, *email, "grant admin role", fetchAdminRoles(mm.Client, mm.Store))
			})
		}
		return m, m.form.form.Init()
	}

	cmd := m.AdminRoles.focusedTable().Update(msg)
	for _, action := range m.AdminRoles.queue.drain() {
		email, _ := action.ctx.Row["email"].(string)
		if email == "" {
			continue
		}
		switch action.kind {
		case "deleteAdmin":
			mut := deleteAdminMutation(m.Client, m.Store)
			return m, runMutation(mut, email, "revoke admin role", fetchAdminRoles(m.Client, m.Store))
		case "deleteInstructor":
			mut := deleteInstructorMutation(m.Client, m.Store)
			return m, runMutation(mut, email, "revoke instructor role", fetchAdminRoles(m.Client, m.Store))
		}
	}
	return m, cmd
}

func (m Model) handleUsersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.backToHome()
	case "[":
		if m.Users.paginator.Prev() {
			return m, fetchUsers(m.Client, m.Store, m.Users.paginator.APIPage(), m.Config.PageSize)
		}
		return m, nil
	case "]":
		if m.Users.paginator.Next() {
			return m, fetchUsers(m.Client, m.Store, m.Users.paginator.APIPage(), m.Config.PageSize)
		}
		return m, nil
	}
	return m, m.Users.table.Update(msg)
}

func (m Model) handleRosterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SelectedCourse == nil {
		return m.backToHome()
	}
	courseID := m.SelectedCourse.ID

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.Page = PageCourses
		return m, nil
	case "n":
		fields := &frontiers.NewRosterStudent{CourseID: courseID}
		m.form = newRosterStudentForm("Add Student", fields, func(mm *Model) tea.Cmd {
			mut := createRosterStudentMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, *fields, "add student", fetchRoster(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	case "u":
		path := new(string)
		m.form = newSingleValueForm("Upload Roster CSV", "CSV Path", path, func(mm *Model) tea.Cmd {
			upload, err := readCSVUpload(*path)
			if err != nil {
				readErr := err
				return func() tea.Msg {
					return mutationDoneMsg{action: "upload roster", err: readErr}
				}
			}
			mut := uploadRosterCSVMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, upload, "upload roster", fetchRoster(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	}

	cmd := m.Roster.table.Update(msg)
	if actionCmd := m.drainRosterActions(courseID); actionCmd != nil {
		return m, actionCmd
	}
	return m, cmd
}

func (m *Model) drainRosterActions(courseID int64) tea.Cmd {
	for _, action := range m.Roster.queue.drain() {
		student, ok := m.Roster.studentAt(action.ctx.RowIndex)
		if !ok {
			continue
		}
		reload := fetchRoster(m.Client, m.Store, courseID)
		switch action.kind {
		case "delete":
			return runMutation(deleteRosterStudentMutation(m.Client, m.Store, courseID), student.ID, "remove student", reload)
		case "join":
			return runMutation(joinCourseMutation(m.Client, m.Store, courseID), student.ID, "join course", reload)
		case "restore":
			return runMutation(restoreRosterStudentMutation(m.Client, m.Store, courseID), student.ID, "restore student", reload)
		case "edit":
			fields := &frontiers.NewRosterStudent{
				CourseID:  courseID,
				StudentID: student.StudentID,
				FirstName: student.FirstName,
				LastName:  student.LastName,
				Email:     student.Email,
			}
			m.form = newRosterStudentForm("Edit Student", fields, func(mm *Model) tea.Cmd {
				mut := updateRosterStudentMutation(mm.Client, mm.Store, courseID)
				return runMutation(mut, rosterStudentUpdate{ID: student.ID, Fields: *fields}, "update student", reload)
			})
			return m.form.form.Init()
		}
	}
	return nil
}

func (m Model) handleStaffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SelectedCourse == nil {
		return m.backToHome()
	}
	courseID := m.SelectedCourse.ID

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.Page = PageCourses
		return m, nil
	case "n":
		login := new(string)
		m.form = newSingleValueForm("Add Staff", "GitHub Login", login, func(mm *Model) tea.Cmd {
			mut := addStaffMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, *login, "add staff", fetchStaff(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	case "u":
		path := new(string)
		m.form = newSingleValueForm("Upload Staff CSV", "CSV Path", path, func(mm *Model) tea.Cmd {
			upload, err := readCSVUpload(*path)
			if err != nil {
				readErr := err
				return func() tea.Msg {
					return mutationDoneMsg{action: "upload staff", err: readErr}
				}
			}
			mut := uploadStaffCSVMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, upload, "upload staff", fetchStaff(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	}

	cmd := m.Staff.table.Update(msg)
	for _, action := range m.Staff.queue.drain() {
		staff, ok := m.Staff.staffAt(action.ctx.RowIndex)
		if !ok || action.kind != "delete" {
			continue
		}
		mut := deleteStaffMutation(m.Client, m.Store, courseID)
		return m, runMutation(mut, staff.ID, "remove staff", fetchStaff(m.Client, m.Store, courseID))
	}
	return m, cmd
}

func (m Model) handleTeamsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SelectedCourse == nil {
		return m.backToHome()
	}
	courseID := m.SelectedCourse.ID

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.Page = PageCourses
		return m, nil
	case "n":
		name := new(string)
		m.form = newSingleValueForm("New Team", "Team Name", name, func(mm *Model) tea.Cmd {
			mut := createTeamMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, *name, "create team", fetchTeams(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	case "a":
		team, ok := m.Teams.teamAt(m.Teams.table.SelectedRow())
		if !ok {
			return m, nil
		}
		id := new(string)
		m.form = newSingleValueForm("Add Team Member", "Roster Student ID", id, func(mm *Model) tea.Cmd {
			studentID, err := strconv.ParseInt(*id, 10, 64)
			if err != nil {
				parseErr := fmt.Errorf("invalid roster student id %q: %w", *id, err)
				return func() tea.Msg {
					return mutationDoneMsg{action: "add team member", err: parseErr}
				}
			}
			mut := addTeamMemberMutation(mm.Client, mm.Store, courseID)
			change := teamMemberChange{TeamID: team.ID, RosterStudentID: studentID}
			return runMutation(mut, change, "add team member", fetchTeams(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	case "x":
		id := new(string)
		m.form = newSingleValueForm("Remove Team Member", "Team Member ID", id, func(mm *Model) tea.Cmd {
			memberID, err := strconv.ParseInt(*id, 10, 64)
			if err != nil {
				parseErr := fmt.Errorf("invalid team member id %q: %w", *id, err)
				return func() tea.Msg {
					return mutationDoneMsg{action: "remove team member", err: parseErr}
				}
			}
			mut := removeTeamMemberMutation(mm.Client, mm.Store, courseID)
			return runMutation(mut, memberID, "remove team member", fetchTeams(mm.Client, mm.Store, courseID))
		})
		return m, m.form.form.Init()
	}

	cmd := m.Teams.table.Update(msg)
	for _, action := range m.Teams.queue.drain() {
		team, ok := m.Teams.teamAt(action.ctx.RowIndex)
		if !ok || action.kind != "delete" {
			continue
		}
		mut := deleteTeamMutation(m.Client, m.Store, courseID)
		return m, runMutation(mut, team.ID, "delete team", fetchTeams(m.Client, m.Store, courseID))
	}
	return m, cmd
}

func (m Model) handleJobsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.Jobs.detail != nil {
			m.Jobs.closeDetail()
			return m, nil
		}
		return m.backToHome()
	case "v":
		if job, ok := m.Jobs.jobAt(m.Jobs.table.SelectedRow()); ok {
			m.Jobs.showDetail(job)
		}
		return m, nil
	case "[":
		if m.Jobs.paginator.Prev() {
			return m, fetchJobs(m.Client, m.Store, m.Jobs.paginator.APIPage(), jobsPageSize)
		}
		return m, nil
	case "]":
		if m.Jobs.paginator.Next() {
			return m, fetchJobs(m.Client, m.Store, m.Jobs.paginator.APIPage(), jobsPageSize)
		}
		return m, nil
	case "t":
		mut := launchTestJobMutation(m.Client, m.Store)
		reload := fetchJobs(m.Client, m.Store, m.Jobs.paginator.APIPage(), jobsPageSize)
		return m, runMutation(mut, testJobArgs{Fail: false, SleepMs: 1000}, "launch test job", reload)
	case "P":
		mut := purgeJobsMutation(m.Client, m.Store)
		reload := fetchJobs(m.Client, m.Store, m.Jobs.paginator.APIPage(), jobsPageSize)
		return m, runMutation(mut, struct{}{}, "purge jobs", reload)
	}
	return m, m.Jobs.table.Update(msg)
}

func (m Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.backToHome()
	case "d":
		mut := disconnectGithubMutation(m.Client, m.Store)
		return m, runMutation(mut, struct{}{}, "disconnect github", fetchCurrentUser(m.Client, m.Store))
	case "x":
		if err := m.Authenticator.ClearToken(); err != nil {
			m.setFeedback(fmt.Sprintf("sign out failed: %v", err), true)
			return m, nil
		}
		m.Store.Reset()
		m.Session.Clear()
		m.AuthState = auth.AuthStateRequired
		m.Page = PageLogin
		m.setFeedback("signed out", false)
		return m, nil
	}
	return m, nil
}
