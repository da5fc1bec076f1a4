package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// NewCourse carries the fields for creating or updating a course.
// The server expects these as query parameters, not a JSON body.
type NewCourse struct {
	CourseName string
	Term       string
	School     string
	StartDate  string
	EndDate    string
	OrgName    string
}

func (nc NewCourse) params() url.Values {
	return url.Values{
		"courseName": {nc.CourseName},
		"term":       {nc.Term},
		"school":     {nc.School},
		"startDate":  {nc.StartDate},
		"endDate":    {nc.EndDate},
		"orgName":    {nc.OrgName},
	}
}

// AllCourses returns every course visible to the current user.
func (c *Client) AllCourses(ctx context.Context) ([]Course, error) {
	var out []Course
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/courses/all"}, &out)
	return out, err
}

// ListCourses returns the courses the current user is enrolled in.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var out []Course
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/courses/list"}, &out)
	return out, err
}

// CoursesForAdmins returns the full course list for admin users.
func (c *Client) CoursesForAdmins(ctx context.Context) ([]Course, error) {
	var out []Course
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/courses/allForAdmins"}, &out)
	return out, err
}

// StaffCourses returns courses where the current user is staff.
func (c *Client) StaffCourses(ctx context.Context) ([]Course, error) {
	var out []Course
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/courses/staffCourses"}, &out)
	return out, err
}

// CoursesForInstructors returns courses owned by the current instructor.
func (c *Client) CoursesForInstructors(ctx context.Context) ([]Course, error) {
	var out []Course
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/courses/allForInstructors"}, &out)
	return out, err
}

// CreateCourseRequest builds the create-course write.
func CreateCourseRequest(nc NewCourse) Request {
	return Request{Method: "POST", Path: "/api/courses/post", Params: nc.params()}
}

// UpdateCourseRequest builds the update-course write.
func UpdateCourseRequest(id int64, nc NewCourse) Request {
	params := nc.params()
	params.Set("id", fmt.Sprintf("%d", id))
	return Request{Method: "PUT", Path: "/api/courses", Params: params}
}

// DeleteCourseRequest builds the delete-course write.
func DeleteCourseRequest(id int64) Request {
	return Request{Method: "DELETE", Path: "/api/courses", Params: url.Values{"id": {fmt.Sprintf("%d", id)}}}
}
