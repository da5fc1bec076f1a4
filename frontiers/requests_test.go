package frontiers

import "testing"

func TestCreateCourseRequest(t *testing.T) {
	r := CreateCourseRequest(NewCourse{
		CourseName: "CMPSC 156",
		Term:       "F25",
		School:     "UCSB",
		StartDate:  "2025-09-25",
		EndDate:    "2025-12-12",
		OrgName:    "ucsb-cs156-f25",
	})
	if r.Method != "POST" || r.Path != "/api/courses/post" {
		t.Errorf("Unexpected request shape: %s %s", r.Method, r.Path)
	}
	if r.Params.Get("courseName") != "CMPSC 156" || r.Params.Get("orgName") != "ucsb-cs156-f25" {
		t.Errorf("Expected course fields as query parameters, got %v", r.Params)
	}
	if r.JSON != nil || r.Multipart != nil {
		t.Error("Expected no body on a query-parameter write")
	}
}

func TestUpdateCourseRequestIncludesID(t *testing.T) {
	r := UpdateCourseRequest(17, NewCourse{CourseName: "CMPSC 156"})
	if r.Method != "PUT" || r.Path != "/api/courses" {
		t.Errorf("Unexpected request shape: %s %s", r.Method, r.Path)
	}
	if r.Params.Get("id") != "17" {
		t.Errorf("Expected id=17 parameter, got %q", r.Params.Get("id"))
	}
}

func TestJoinCourseRequest(t *testing.T) {
	r := JoinCourseRequest(99)
	if r.Method != "PUT" || r.Path != "/api/rosterstudents/joinCourse" {
		t.Errorf("Unexpected request shape: %s %s", r.Method, r.Path)
	}
	if r.Params.Get("rosterStudentId") != "99" {
		t.Errorf("Expected rosterStudentId=99, got %q", r.Params.Get("rosterStudentId"))
	}
}

func TestUsersPagedRequest(t *testing.T) {
	r := UsersPagedRequest(0, 50, "id")
	if r.Method != "GET" || r.Path != "/api/admin/users" {
		t.Errorf("Unexpected request shape: %s %s", r.Method, r.Path)
	}
	if r.Params.Get("page") != "0" || r.Params.Get("size") != "50" || r.Params.Get("sort") != "id" {
		t.Errorf("Unexpected paging parameters: %v", r.Params)
	}
}

func TestCurrentUserHasRole(t *testing.T) {
	cu := CurrentUser{Roles: []string{"ROLE_USER", "ROLE_ADMIN"}}
	if !cu.HasRole("ROLE_ADMIN") {
		t.Error("Expected ROLE_ADMIN to be present")
	}
	if cu.HasRole("ROLE_INSTRUCTOR") {
		t.Error("Expected ROLE_INSTRUCTOR to be absent")
	}
}
