package tui

// Roster page: students of one course, with join/restore and CSV upload

import (
	"os"
	"path/filepath"

	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type rosterPageState struct {
	table    *DataTable
	queue    *actionQueue
	students []frontiers.RosterStudent
	courseID int64
	loaded   bool
	err      error
}

func newRosterPageState() rosterPageState {
	s := rosterPageState{queue: newActionQueue()}
	s.table = NewDataTable("RosterStudentsTable", []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "studentId", Header: "Student Id", AccessorKey: "studentId", Sortable: true, Width: 10},
		{
			ID:     "fullName",
			Header: "Name",
			AccessorFn: func(r Row) any {
				last, _ := r["lastName"].(string)
				first, _ := r["firstName"].(string)
				return last + ", " + first
			},
			Filterable: true,
			Width:      20,
		},
		{ID: "email", Header: "Email", AccessorKey: "email", Sortable: true, Filterable: true, Width: 26},
		{ID: "githubLogin", Header: "GitHub", AccessorKey: "githubLogin", Width: 14},
		{ID: "rosterStatus", Header: "Roster Status", AccessorKey: "rosterStatus", Sortable: true, Width: 12},
		{ID: "orgStatus", Header: "Org Status", AccessorKey: "orgStatus", Width: 10},
		ButtonColumn("edit", "Edit", func(cc CellContext) { s.queue.push("edit", cc) }),
		ButtonColumn("delete", "Delete", func(cc CellContext) { s.queue.push("delete", cc) }),
		ButtonColumn("join", "Join", func(cc CellContext) { s.queue.push("join", cc) }),
		ButtonColumn("restore", "Restore", func(cc CellContext) { s.queue.push("restore", cc) }),
	}, nil)
	return s
}

func (s *rosterPageState) setStudents(courseID int64, res query.Result[[]frontiers.RosterStudent]) {
	s.courseID = courseID
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.students = res.Data
	rows := make([]Row, len(res.Data))
	for i, st := range res.Data {
		rows[i] = Row{
			"id":           float64(st.ID),
			"studentId":    st.StudentID,
			"firstName":    st.FirstName,
			"lastName":     st.LastName,
			"email":        st.Email,
			"githubLogin":  st.GithubLogin,
			"rosterStatus": st.RosterStatus,
			"orgStatus":    st.OrgStatus,
		}
	}
	s.table.SetRows(rows)
}

func (s *rosterPageState) studentAt(rowIndex int) (frontiers.RosterStudent, bool) {
	if rowIndex < 0 || rowIndex >= len(s.students) {
		return frontiers.RosterStudent{}, false
	}
	return s.students[rowIndex], true
}

func deleteRosterStudentMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteRosterStudentRequest,
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}

func joinCourseMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.JoinCourseRequest,
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}

func restoreRosterStudentMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.RestoreRosterStudentRequest,
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}

func createRosterStudentMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[frontiers.NewRosterStudent] {
	return &query.Mutation[frontiers.NewRosterStudent]{
		Client:         client,
		Store:          store,
		Build:          frontiers.CreateRosterStudentRequest,
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}

type rosterStudentUpdate struct {
	ID     int64
	Fields frontiers.NewRosterStudent
}

func updateRosterStudentMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[rosterStudentUpdate] {
	return &query.Mutation[rosterStudentUpdate]{
		Client: client,
		Store:  store,
		Build: func(u rosterStudentUpdate) frontiers.Request {
			return frontiers.UpdateRosterStudentRequest(u.ID, u.Fields)
		},
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}

type csvUpload struct {
	Filename string
	Content  []byte
}

// readCSVUpload loads a CSV file from disk for upload.
func readCSVUpload(path string) (csvUpload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return csvUpload{}, err
	}
	return csvUpload{Filename: filepath.Base(path), Content: content}, nil
}

func uploadRosterCSVMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[csvUpload] {
	return &query.Mutation[csvUpload]{
		Client: client,
		Store:  store,
		Build: func(u csvUpload) frontiers.Request {
			return frontiers.UploadRosterCSVRequest(courseID, u.Filename, u.Content)
		},
		InvalidateKeys: []query.Key{keyRoster(courseID)},
	}
}
