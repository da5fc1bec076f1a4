package tui

// Teams page: teams of one course and their memberships

import (
	"strings"

	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

type teamsPageState struct {
	table    *DataTable
	queue    *actionQueue
	teams    []frontiers.Team
	courseID int64
	loaded   bool
	err      error
}

func newTeamsPageState() teamsPageState {
	s := teamsPageState{queue: newActionQueue()}
	s.table = NewDataTable("TeamsTable", []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "name", Header: "Team", AccessorKey: "name", Sortable: true, Filterable: true, Width: 20},
		{
			ID:     "members",
			Header: "Members",
			AccessorFn: func(r Row) any {
				logins, _ := r["memberLogins"].([]string)
				return strings.Join(logins, ", ")
			},
			Width: 36,
		},
		ButtonColumn("delete", "Delete", func(cc CellContext) { s.queue.push("delete", cc) }),
	}, nil)
	return s
}

func (s *teamsPageState) setTeams(courseID int64, res query.Result[[]frontiers.Team]) {
	s.courseID = courseID
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.teams = res.Data
	rows := make([]Row, len(res.Data))
	for i, t := range res.Data {
		logins := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			logins = append(logins, m.GithubLogin)
		}
		rows[i] = Row{
			"id":           float64(t.ID),
			"name":         t.Name,
			"memberLogins": logins,
		}
	}
	s.table.SetRows(rows)
}

func (s *teamsPageState) teamAt(rowIndex int) (frontiers.Team, bool) {
	if rowIndex < 0 || rowIndex >= len(s.teams) {
		return frontiers.Team{}, false
	}
	return s.teams[rowIndex], true
}

func deleteTeamMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.DeleteTeamRequest,
		InvalidateKeys: []query.Key{keyTeams(courseID)},
	}
}

func createTeamMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[string] {
	return &query.Mutation[string]{
		Client: client,
		Store:  store,
		Build: func(name string) frontiers.Request {
			return frontiers.CreateTeamRequest(courseID, name)
		},
		InvalidateKeys: []query.Key{keyTeams(courseID)},
	}
}

type teamMemberChange struct {
	TeamID          int64
	RosterStudentID int64
}

func addTeamMemberMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[teamMemberChange] {
	return &query.Mutation[teamMemberChange]{
		Client: client,
		Store:  store,
		Build: func(c teamMemberChange) frontiers.Request {
			return frontiers.AddTeamMemberRequest(c.TeamID, c.RosterStudentID)
		},
		InvalidateKeys: []query.Key{keyTeams(courseID)},
	}
}

func removeTeamMemberMutation(client query.Doer, store *query.Store, courseID int64) *query.Mutation[int64] {
	return &query.Mutation[int64]{
		Client:         client,
		Store:          store,
		Build:          frontiers.RemoveTeamMemberRequest,
		InvalidateKeys: []query.Key{keyTeams(courseID)},
	}
}
