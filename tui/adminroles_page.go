package tui

// Admin roles page: grant and revoke admin/instructor roles by email

import (
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type adminRolesPageState struct {
	adminsTable      *DataTable
	instructorsTable *DataTable
	queue            *actionQueue
	focusInstructors bool
	loaded           bool
	err              error
}

func newAdminRolesPageState() adminRolesPageState {
	s := adminRolesPageState{queue: newActionQueue()}
	s.adminsTable = NewDataTable("AdminsTable", []Column{
		{ID: "email", Header: "Email", AccessorKey: "email", Sortable: true, Filterable: true, Width: 32},
		ButtonColumn("delete", "Delete", func(cc CellContext) { s.queue.push("deleteAdmin", cc) }),
	}, nil)
	s.instructorsTable = NewDataTable("InstructorsTable", []Column{
		{ID: "email", Header: "Email", AccessorKey: "email", Sortable: true, Filterable: true, Width: 32},
		ButtonColumn("delete", "Delete", func(cc CellContext) { s.queue.push("deleteInstructor", cc) }),
	}, nil)
	return s
}

func roleEmailRows(emails []frontiers.RoleEmail) []Row {
	rows := make([]Row, len(emails))
	for i, e := range emails {
		rows[i] = Row{"email": e.Email}
	}
	return rows
}

func (s *adminRolesPageState) setRoles(msg adminRolesLoadedMsg) {
	s.loaded = msg.admins.Status == query.StatusSuccess && msg.instructors.Status == query.StatusSuccess
	s.err = msg.admins.Err
	if s.err == nil {
		s.err = msg.instructors.Err
	}
	s.adminsTable.SetRows(roleEmailRows(msg.admins.Data))
	s.instructorsTable.SetRows(roleEmailRows(msg.instructors.Data))
}

// focusedTable returns the table keyboard input goes to.
func (s *adminRolesPageState) focusedTable() *DataTable {
	if s.focusInstructors {
		return s.instructorsTable
	}
	return s.adminsTable
}

func deleteAdminMutation(client query.Doer, store *query.Store) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteAdminRequest,
		InvalidateKeys: []query.Key{keyAdminEmails()},
	}
}

func addAdminMutation(client query.Doer, store *query.Store) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client:         client,
		Store:          store,
		Build:          frontiers.AddAdminRequest,
		InvalidateKeys: []query.Key{keyAdminEmails()},
	}
}

func deleteInstructorMutation(client query.Doer, store *query.Store) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteInstructorRequest,
		InvalidateKeys: []query.Key{keyInstructorEmails()},
	}
}

func addInstructorMutation(client query.Doer, store *query.Store) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client:         client,
		Store:          store,
		Build:          frontiers.AddInstructorRequest,
		InvalidateKeys: []query.Key{keyInstructorEmails()},
	}
}
