package tui

// Staff page: staff roster of one course

import (
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type staffPageState struct {
	table    *DataTable
	queue    *actionQueue
	staff    []frontiers.CourseStaff
	courseID int64
	loaded   bool
	err      error
}

func newStaffPageState() staffPageState {
	s := staffPageState{queue: newActionQueue()}
	s.table = NewDataTable("CourseStaffTable", []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "githubLogin", Header: "GitHub", AccessorKey: "githubLogin", Sortable: true, Filterable: true, Width: 18},
		{ID: "email", Header: "Email", AccessorKey: "email", Filterable: true, Width: 26},
		{ID: "orgStatus", Header: "Org Status", AccessorKey: "orgStatus", Width: 10},
		ButtonColumn("delete", "Remove", func(cc CellContext) { s.queue.push("delete", cc) }),
	}, nil)
	return s
}

func (s *staffPageState) setStaff(courseID int64, res query.Result[[]frontiers.CourseStaff]) {
	s.courseID = courseID
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.staff = res.Data
	rows := make([]Row, len(res.Data))
	for i, cs := range res.Data {
		rows[i] = Row{
			"id":          float64(cs.ID),
			"githubLogin": cs.GithubLogin,
			"email":       cs.Email,
			"orgStatus":   cs.OrgStatus,
		}
	}
	s.table.SetRows(rows)
}

func (s *staffPageState) staffAt(rowIndex int) (frontiers.CourseStaff, bool) {
	if rowIndex < 0 || rowIndex >= len(s.staff) {
		return frontiers.CourseStaff{}, false
	}
	return s.staff[rowIndex], true
}

func deleteStaffMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteCourseStaffRequest,
		InvalidateKeys: []query.Key{keyStaff(courseID)},
	}
}

func addStaffMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client: client,
		Store:  store,
		Build: func(githubLogin string) frontiers.Request {
			return frontiers.AddCourseStaffRequest(courseID, githubLogin)
		},
		InvalidateKeys: []query.Key{keyStaff(courseID)},
	}
}

func uploadStaffCSVMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[csvUpload] {
	return &query.Mutation[csvUpload]{
		Client: client,
		Store:  store,
		Build: func(u csvUpload) frontiers.Request {
			return frontiers.UploadStaffCSVRequest(courseID, u.Filename, u.Content)
		},
		InvalidateKeys: []query.Key{keyStaff(courseID)},
	}
}
