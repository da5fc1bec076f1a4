package frontiers

// Domain types returned by the Frontiers API

// Course represents one course managed through the console.
type Course struct {
	ID             int64  `json:"id"`
	InstallationID string `json:"installationId"`
	OrgName        string `json:"orgName"`
	CourseName     string `json:"courseName"`
	Term           string `json:"term"`
	School         string `json:"school"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	GithubAppName  string `json:"githubAppName"`
}

// RosterStudent represents a student on a course roster.
type RosterStudent struct {
	ID           int64  `json:"id"`
	CourseID     int64  `json:"courseId"`
	StudentID    string `json:"studentId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	GithubID     int64  `json:"githubId"`
	GithubLogin  string `json:"githubLogin"`
	RosterStatus string `json:"rosterStatus"`
	OrgStatus    string `json:"orgStatus"`
}

// CourseStaff represents a staff membership on a course.
type CourseStaff struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	GithubID    int64  `json:"githubId"`
	GithubLogin string `json:"githubLogin"`
	OrgStatus   string `json:"orgStatus"`
}

// Team represents a named team within a course.
type Team struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	CourseID int64        `json:"courseId"`
	Members  []TeamMember `json:"teamMembers"`
}

// TeamMember links a roster student to a team.
type TeamMember struct {
	ID              int64  `json:"id"`
	TeamID          int64  `json:"teamId"`
	RosterStudentID int64  `json:"rosterStudentId"`
	GithubLogin     string `json:"githubLogin"`
}

// Job represents one background job run on the server.
type Job struct {
	ID        int64  `json:"id"`
	CreatedBy string `json:"createdBy"`
	Status    string `json:"status"`
	Log       string `json:"log"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// User is the identity block of the current-user response.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	GithubID    int64  `json:"githubId"`
	GithubLogin string `json:"githubLogin"`
	FullName    string `json:"fullName"`
	Admin       bool   `json:"admin"`
	Instructor  bool   `json:"instructor"`
}

// CurrentUser represents session identity plus granted roles.
type CurrentUser struct {
	User  User     `json:"user"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the session carries the given authority.
func (cu CurrentUser) HasRole(role string) bool {
	for _, r := range cu.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SystemInfo carries server feature flags shown in the console.
type SystemInfo struct {
	SpringH2ConsoleEnabled bool   `json:"springH2ConsoleEnabled"`
	ShowSwaggerUILink      bool   `json:"showSwaggerUILink"`
	SourceRepo             string `json:"sourceRepo"`
	Commit                 string `json:"commitId"`
}

// PageInfo is the Spring pagination envelope metadata.
type PageInfo struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// PagedResponse is the Spring paged collection envelope.
type PagedResponse[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}
