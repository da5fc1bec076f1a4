package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// RoleEmail is one admin- or instructor-role grant by email address.
type RoleEmail struct {
	Email string `json:"email"`
}

// AdminEmails returns every email granted the admin role.
func (c *Client) AdminEmails(ctx context.Context) ([]RoleEmail, error) {
	var out []RoleEmail
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/admin/admins/all"}, &out)
	return out, err
}

// InstructorEmails returns every email granted the instructor role.
func (c *Client) InstructorEmails(ctx context.Context) ([]RoleEmail, error) {
	var out []RoleEmail
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/admin/instructors/all"}, &out)
	return out, err
}

// AddAdminRequest builds the grant-admin write.
func AddAdminRequest(email string) Request {
	return Request{Method: "POST", Path: "/api/admin/admins/post", Params: url.Values{"email": {email}}}
}

// DeleteAdminRequest builds the revoke-admin write.
func DeleteAdminRequest(email string) Request {
	return Request{Method: "DELETE", Path: "/api/admin/admins", Params: url.Values{"email": {email}}}
}

// AddInstructorRequest builds the grant-instructor write.
func AddInstructorRequest(email string) Request {
	return Request{Method: "POST", Path: "/api/admin/instructors/post", Params: url.Values{"email": {email}}}
}

// DeleteInstructorRequest builds the revoke-instructor write.
func DeleteInstructorRequest(email string) Request {
	return Request{Method: "DELETE", Path: "/api/admin/instructors", Params: url.Values{"email": {email}}}
}

// UsersPagedRequest builds the paged admin user listing read.
func UsersPagedRequest(page, size int, sort string) Request {
	return Request{
		Method: "GET",
		Path:   "/api/admin/users",
		Params: url.Values{
			"page": {fmt.Sprintf("%d", page)},
			"size": {fmt.Sprintf("%d", size)},
			"sort": {sort},
		},
	}
}

// UsersPaged returns one page of registered users.
func (c *Client) UsersPaged(ctx context.Context, page, size int, sort string) (PagedResponse[User], error) {
	var out PagedResponse[User]
	err := c.DoJSON(ctx, UsersPagedRequest(page, size, sort), &out)
	return out, err
}
