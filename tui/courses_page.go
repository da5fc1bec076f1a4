package tui

// Courses page: list, create, edit, delete

import (
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type coursesPageState struct {
	table   *DataTable
	queue   *actionQueue
	courses []frontiers.Course
	loaded  bool
	err     error
}

func newCoursesPageState() coursesPageState {
	s := coursesPageState{queue: newActionQueue()}
	s.table = NewDataTable("CoursesTable", s.columns(), nil)
	return s
}

func (s *coursesPageState) columns() []Column {
	return []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "courseName", Header: "Course Name", AccessorKey: "courseName", Sortable: true, Filterable: true, Width: 20},
		{ID: "term", Header: "Term", AccessorKey: "term", Sortable: true, Width: 6},
		{ID: "school", Header: "School", AccessorKey: "school", Filterable: true, Width: 10},
		{ID: "startDate", Header: "Start Date", AccessorKey: "startDate", Width: 12},
		{ID: "endDate", Header: "End Date", AccessorKey: "endDate", Width: 12},
		{ID: "orgName", Header: "Org", AccessorKey: "orgName", Filterable: true, Width: 16},
		ButtonColumn("edit", "Edit", func(cc CellContext) { s.queue.push("edit", cc) }),
		ButtonColumn("delete", "Delete", func(cc CellContext) { s.queue.push("delete", cc) }),
	}
}

// setCourses installs fetched rows into the table.
func (s *coursesPageState) setCourses(res query.Result[[]frontiers.Course]) {
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.courses = res.Data
	rows := make([]Row, len(res.Data))
	for i, c := range res.Data {
		rows[i] = Row{
			"id":         float64(c.ID),
			"courseName": c.CourseName,
			"term":       c.Term,
			"school":     c.School,
			"startDate":  c.StartDate,
			"endDate":    c.EndDate,
			"orgName":    c.OrgName,
		}
	}
	s.table.SetRows(rows)
}

// courseAt returns the course backing an original row index.
func (s *coursesPageState) courseAt(rowIndex int) (frontiers.Course, bool) {
	if rowIndex < 0 || rowIndex >= len(s.courses) {
		return frontiers.Course{}, false
	}
	return s.courses[rowIndex], true
}

func deleteCourseMutation(client query.Doer, store *query.Store) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteCourseRequest,
		InvalidateKeys: []query.Key{keyCoursesAll(), keyStaffCourses()},
	}
}

func createCourseMutation(client query.Doer, store *query.Store) *query.Mutation[frontiers.NewCourse] {
	return &query.Mutation[frontiers.NewCourse]{
		Client:         client,
		Store:          store,
		Build:          frontiers.CreateCourseRequest,
		InvalidateKeys: []query.Key{keyCoursesAll(), keyStaffCourses()},
	}
}

type courseUpdate struct {
	ID     int64
	Fields frontiers.NewCourse
}

func updateCourseMutation(client query.Doer, store *query.Store) *query.Mutation[courseUpdate] {
	return &query.Mutation[courseUpdate]{
		Client: client,
		Store:  store,
		Build: func(u courseUpdate) frontiers.Request {
			return frontiers.UpdateCourseRequest(u.ID, u.Fields)
		},
		InvalidateKeys: []query.Key{keyCoursesAll(), keyStaffCourses()},
	}
}
