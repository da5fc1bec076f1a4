package tui

// Commands and messages for authentication and data loading

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/oauth2"

	"github.com/ucsb-cs156/frontiers-tui/auth"
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

const fetchTimeout = 30 * time.Second

// Cache keys for the read operations. Writes invalidate these so dependent
// pages refetch.
func keyCoursesAll() query.Key       { return query.Key{"/api/courses/all"} }
func keyStaffCourses() query.Key     { return query.Key{"/api/courses/staffCourses"} }
func keyAdminEmails() query.Key      { return query.Key{"/api/admin/admins/all"} }
func keyInstructorEmails() query.Key { return query.Key{"/api/admin/instructors/all"} }
func keyUsersPage(page int) query.Key {
	return query.Key{"/api/admin/users", fmt.Sprintf("%d", page)}
}
func keyRoster(courseID int64) query.Key {
	return query.Key{"/api/rosterstudents/allByCourseId", fmt.Sprintf("%d", courseID)}
}
func keyStaff(courseID int64) query.Key {
	return query.Key{"/api/coursestaff/all", fmt.Sprintf("%d", courseID)}
}
func keyTeams(courseID int64) query.Key {
	return query.Key{"/api/teams/all", fmt.Sprintf("%d", courseID)}
}
func keyJobsPage(page int) query.Key {
	return query.Key{"/api/jobs/all/pageable", fmt.Sprintf("%d", page)}
}
func keyCurrentUser() query.Key { return query.Key{"/api/currentUser"} }
func keySystemInfo() query.Key  { return query.Key{"/api/systemInfo"} }

// Message types for authentication flow
type authCheckMsg struct {
	hasValidToken bool
}

type deviceCodeMsg struct {
	deviceCode *auth.DeviceCodeResponse
	err        error
}

type authCompleteMsg struct {
	token *oauth2.Token
	err   error
}

type authInitiateMsg struct{}

// Message types for data loading
type currentUserMsg struct {
	res query.Result[frontiers.CurrentUser]
}

type systemInfoMsg struct {
	res query.Result[frontiers.SystemInfo]
}

type coursesLoadedMsg struct {
	res query.Result[[]frontiers.Course]
}

type adminRolesLoadedMsg struct {
	admins      query.Result[[]frontiers.RoleEmail]
	instructors query.Result[[]frontiers.RoleEmail]
}

type usersLoadedMsg struct {
	res query.Result[frontiers.PagedResponse[frontiers.User]]
}

type rosterLoadedMsg struct {
	courseID int64
	res      query.Result[[]frontiers.RosterStudent]
}

type staffLoadedMsg struct {
	courseID int64
	res      query.Result[[]frontiers.CourseStaff]
}

type teamsLoadedMsg struct {
	courseID int64
	res      query.Result[[]frontiers.Team]
}

type jobsLoadedMsg struct {
	res query.Result[frontiers.PagedResponse[frontiers.Job]]
}

// mutationDoneMsg reports the outcome of any write.
type mutationDoneMsg struct {
	action string
	err    error
	reload tea.Cmd
}

// Commands for authentication flow
func checkAuthStatus(authenticator *auth.Authenticator) tea.Cmd {
	return func() tea.Msg {
		hasValid := authenticator.HasValidToken()
		return authCheckMsg{hasValidToken: hasValid}
	}
}

func initiateDeviceFlow(authenticator *auth.Authenticator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deviceCode, err := authenticator.InitiateDeviceFlow(ctx)
		return deviceCodeMsg{deviceCode: deviceCode, err: err}
	}
}

func pollForToken(authenticator *auth.Authenticator, deviceCode string, interval int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		token, err := authenticator.PollForToken(ctx, deviceCode, interval)
		return authCompleteMsg{token: token, err: err}
	}
}

// Commands for data loading. Each goes through the query cache, so a page
// revisit renders instantly from cache until a write invalidates it.

func fetchCurrentUser(client *frontiers.Client, store *query.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyCurrentUser(), frontiers.CurrentUser{}, client.GetCurrentUser)
		return currentUserMsg{res: res}
	}
}

func fetchSystemInfo(client *frontiers.Client, store *query.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keySystemInfo(), frontiers.SystemInfo{}, client.GetSystemInfo)
		return systemInfoMsg{res: res}
	}
}

// fetchCourses loads the course listing scoped to the viewer's role. All
// variants share one cache key since a session only ever uses one of them.
func fetchCourses(client *frontiers.Client, store *query.Store, user frontiers.CurrentUser) tea.Cmd {
	fn := client.AllCourses
	switch {
	case user.HasRole("ROLE_ADMIN"):
		fn = client.CoursesForAdmins
	case user.HasRole("ROLE_INSTRUCTOR"):
		fn = client.CoursesForInstructors
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyCoursesAll(), []frontiers.Course{}, fn)
		return coursesLoadedMsg{res: res}
	}
}

// fetchStaffCourses loads the courses the viewer is staff on.
func fetchStaffCourses(client *frontiers.Client, store *query.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyStaffCourses(), []frontiers.Course{}, client.StaffCourses)
		return coursesLoadedMsg{res: res}
	}
}

func fetchAdminRoles(client *frontiers.Client, store *query.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		admins := query.Fetch(ctx, store, keyAdminEmails(), []frontiers.RoleEmail{}, client.AdminEmails)
		instructors := query.Fetch(ctx, store, keyInstructorEmails(), []frontiers.RoleEmail{}, client.InstructorEmails)
		return adminRolesLoadedMsg{admins: admins, instructors: instructors}
	}
}

func fetchUsers(client *frontiers.Client, store *query.Store, page, size int) tea.Cmd {
	return func() tea.Msg {
		placeholder := frontiers.PagedResponse[frontiers.User]{Page: frontiers.PageInfo{TotalPages: 1}}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyUsersPage(page), placeholder,
			func(ctx context.Context) (frontiers.PagedResponse[frontiers.User], error) {
				return client.UsersPaged(ctx, page, size, "id")
			})
		return usersLoadedMsg{res: res}
	}
}

func fetchRoster(client *frontiers.Client, store *query.Store, courseID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyRoster(courseID), []frontiers.RosterStudent{},
			func(ctx context.Context) ([]frontiers.RosterStudent, error) {
				return client.RosterStudents(ctx, courseID)
			})
		return rosterLoadedMsg{courseID: courseID, res: res}
	}
}

func fetchStaff(client *frontiers.Client, store *query.Store, courseID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyStaff(courseID), []frontiers.CourseStaff{},
			func(ctx context.Context) ([]frontiers.CourseStaff, error) {
				return client.CourseStaffForCourse(ctx, courseID)
			})
		return staffLoadedMsg{courseID: courseID, res: res}
	}
}

func fetchTeams(client *frontiers.Client, store *query.Store, courseID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyTeams(courseID), []frontiers.Team{},
			func(ctx context.Context) ([]frontiers.Team, error) {
				return client.TeamsForCourse(ctx, courseID)
			})
		return teamsLoadedMsg{courseID: courseID, res: res}
	}
}

func fetchJobs(client *frontiers.Client, store *query.Store, page, size int) tea.Cmd {
	return func() tea.Msg {
		placeholder := frontiers.PagedResponse[frontiers.Job]{Page: frontiers.PageInfo{TotalPages: 1}}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res := query.Fetch(ctx, store, keyJobsPage(page), placeholder,
			func(ctx context.Context) (frontiers.PagedResponse[frontiers.Job], error) {
				return client.JobsPaged(ctx, page, size)
			})
		return jobsLoadedMsg{res: res}
	}
}

// runMutation issues a write and reports the outcome along with a reload
// command that refetches the invalidated reads.
func runMutation[A any](m *query.Mutation[A], arg A, action string, reload tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := m.Mutate(ctx, arg)
		return mutationDoneMsg{action: action, err: err, reload: reload}
	}
}
