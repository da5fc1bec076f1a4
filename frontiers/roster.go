package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// NewRosterStudent carries the fields for creating or updating a roster entry.
type NewRosterStudent struct {
	CourseID  int64
	StudentID string
	FirstName string
	LastName  string
	Email     string
}

func (nr NewRosterStudent) params() url.Values {
	return url.Values{
		"courseId":  {fmt.Sprintf("%d", nr.CourseID)},
		"studentId": {nr.StudentID},
		"firstName": {nr.FirstName},
		"lastName":  {nr.LastName},
		"email":     {nr.Email},
	}
}

// RosterStudents returns the roster for one course.
func (c *Client) RosterStudents(ctx context.Context, courseID int64) ([]RosterStudent, error) {
	var out []RosterStudent
	err := c.DoJSON(ctx, Request{
		Method: "GET",
		Path:   "/api/rosterstudents/allByCourseId",
		Params: url.Values{"courseId": {fmt.Sprintf("%d", courseID)}},
	}, &out)
	return out, err
}

// CreateRosterStudentRequest builds the add-student write.
func CreateRosterStudentRequest(nr NewRosterStudent) Request {
	return Request{Method: "POST", Path: "/api/rosterstudents/post", Params: nr.params()}
}

// UpdateRosterStudentRequest builds the edit-student write.
func UpdateRosterStudentRequest(id int64, nr NewRosterStudent) Request {
	params := nr.params()
	params.Set("id", fmt.Sprintf("%d", id))
	return Request{Method: "PUT", Path: "/api/rosterstudents/update", Params: params}
}

// DeleteRosterStudentRequest builds the remove-student write.
func DeleteRosterStudentRequest(id int64) Request {
	return Request{Method: "DELETE", Path: "/api/rosterstudents/delete", Params: url.Values{"id": {fmt.Sprintf("%d", id)}}}
}

// RestoreRosterStudentRequest builds the restore write for a previously dropped student.
func RestoreRosterStudentRequest(id int64) Request {
	return Request{Method: "PUT", Path: "/api/rosterstudents/restore", Params: url.Values{"id": {fmt.Sprintf("%d", id)}}}
}

// JoinCourseRequest builds the write that invites the student's GitHub account
// into the course organization.
func JoinCourseRequest(rosterStudentID int64) Request {
	return Request{Method: "PUT", Path: "/api/rosterstudents/joinCourse", Params: url.Values{"rosterStudentId": {fmt.Sprintf("%d", rosterStudentID)}}}
}

// UploadRosterCSVRequest builds the multipart CSV roster upload.
// This is the one write that does not use query parameters for its payload.
func UploadRosterCSVRequest(courseID int64, filename string, csv []byte) Request {
	return Request{
		Method:    "POST",
		Path:      "/api/rosterstudents/upload/egrades",
		Params:    url.Values{"courseId": {fmt.Sprintf("%d", courseID)}},
		Multipart: &Upload{Field: "file", Filename: filename, Content: csv},
	}
}
