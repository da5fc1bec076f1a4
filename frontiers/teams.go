package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// TeamsForCourse returns the teams within one course.
func (c *Client) TeamsForCourse(ctx context.Context, courseID int64) ([]Team, error) {
	var out []Team
	err := c.DoJSON(ctx, Request{
		Method: "GET",
		Path:   "/api/teams/all",
		Params: url.Values{"courseId": {fmt.Sprintf("%d", courseID)}},
	}, &out)
	return out, err
}

// CreateTeamRequest builds the add-team write.
func CreateTeamRequest(courseID int64, name string) Request {
	return Request{
		Method: "POST",
		Path:   "/api/teams/post",
		Params: url.Values{
			"courseId": {fmt.Sprintf("%d", courseID)},
			"name":     {name},
		},
	}
}

// DeleteTeamRequest builds the remove-team write.
func DeleteTeamRequest(id int64) Request {
	return Request{Method: "DELETE", Path: "/api/teams", Params: url.Values{"id": {fmt.Sprintf("%d", id)}}}
}

// AddTeamMemberRequest builds the write that adds a roster student to a team.
func AddTeamMemberRequest(teamID, rosterStudentID int64) Request {
	return Request{
		Method: "POST",
		Path:   "/api/teams/addMember",
		Params: url.Values{
			"teamId":          {fmt.Sprintf("%d", teamID)},
			"rosterStudentId": {fmt.Sprintf("%d", rosterStudentID)},
		},
	}
}

// RemoveTeamMemberRequest builds the write that removes a team membership.
func RemoveTeamMemberRequest(teamMemberID int64) Request {
	return Request{Method: "DELETE", Path: "/api/teams/removeMember", Params: url.Values{"teamMemberId": {fmt.Sprintf("%d", teamMemberID)}}}
}
