package tui

// Users page: paged listing of registered users

import (
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type usersPageState struct {
	table     *DataTable
	paginator Paginator
	loaded    bool
	err       error
}

func newUsersPageState() usersPageState {
	s := usersPageState{paginator: NewPaginator("OurPagination", 1)}
	s.table = NewDataTable("UsersTable", []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "email", Header: "Email", AccessorKey: "email", Sortable: true, Filterable: true, Width: 28},
		{ID: "fullName", Header: "Name", AccessorKey: "fullName", Filterable: true, Width: 20},
		{ID: "githubLogin", Header: "GitHub", AccessorKey: "githubLogin", Width: 16},
		{ID: "admin", Header: "Admin", AccessorKey: "admin", Width: 6},
		{ID: "instructor", Header: "Instructor", AccessorKey: "instructor", Width: 10},
	}, nil)
	return s
}

func (s *usersPageState) setUsers(res query.Result[frontiers.PagedResponse[frontiers.User]]) {
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.paginator.SetTotal(res.Data.Page.TotalPages)
	rows := make([]Row, len(res.Data.Content))
	for i, u := range res.Data.Content {
		rows[i] = Row{
			"id":          float64(u.ID),
			"email":       u.Email,
			"fullName":    u.FullName,
			"githubLogin": u.GithubLogin,
			"admin":       u.Admin,
			"instructor":  u.Instructor,
		}
	}
	s.table.SetRows(rows)
}
