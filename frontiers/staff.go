package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// CourseStaffForCourse returns the staff roster for one course.
func (c *Client) CourseStaffForCourse(ctx context.Context, courseID int64) ([]CourseStaff, error) {
	var out []CourseStaff
	err := c.DoJSON(ctx, Request{
		Method: "GET",
		Path:   "/api/coursestaff/all",
		Params: url.Values{"courseId": {fmt.Sprintf("%d", courseID)}},
	}, &out)
	return out, err
}

// AddCourseStaffRequest builds the add-staff write.
func AddCourseStaffRequest(courseID int64, githubLogin string) Request {
	return Request{
		Method: "POST",
		Path:   "/api/coursestaff/post",
		Params: url.Values{
			"courseId":    {fmt.Sprintf("%d", courseID)},
			"githubLogin": {githubLogin},
		},
	}
}

// DeleteCourseStaffRequest builds the remove-staff write.
func DeleteCourseStaffRequest(id int64) Request {
	return Request{Method: "DELETE", Path: "/api/coursestaff/delete", Params: url.Values{"id": {fmt.Sprintf("%d", id)}}}
}

// UploadStaffCSVRequest builds the multipart CSV staff upload.
func UploadStaffCSVRequest(courseID int64, filename string, csv []byte) Request {
	return Request{
		Method:    "POST",
		Path:      "/api/coursestaff/upload/csv",
		Params:    url.Values{"courseId": {fmt.Sprintf("%d", courseID)}},
		Multipart: &Upload{Field: "file", Filename: filename, Content: csv},
	}
}
