package tui

// Jobs page: paged background job log with launch and purge

import (
	"encoding/json"

	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/internal/detail"
	"github.com/ucsb-cs156/frontiers-tui/internal/util"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

const jobsPageSize = 10

type jobsPageState struct {
	table     *DataTable
	paginator Paginator
	jobs      []frontiers.Job
	loaded    bool
	err       error

	// Flattened fields of the job being inspected, nil when no detail
	// view is open.
	detail      []detail.Field
	detailJobID int64
}

func newJobsPageState() jobsPageState {
	s := jobsPageState{paginator: NewPaginator("JobsPagination", 1)}
	s.table = NewDataTable("JobsTable", []Column{
		{ID: "id", Header: "id", AccessorKey: "id", Sortable: true, Width: 6},
		{ID: "createdBy", Header: "Created By", AccessorKey: "createdBy", Filterable: true, Width: 20},
		{ID: "createdAt", Header: "Created", AccessorKey: "createdAt", Width: 20},
		{ID: "status", Header: "Status", AccessorKey: "status", Sortable: true, Width: 10},
		{
			ID:          "log",
			Header:      "Log",
			AccessorKey: "log",
			Cell: func(cc CellContext) string {
				log, _ := cc.Row["log"].(string)
				return util.Truncate(log, 40)
			},
			Width: 42,
		},
	}, nil)
	return s
}

func (s *jobsPageState) setJobs(res query.Result[frontiers.PagedResponse[frontiers.Job]]) {
	s.loaded = res.Status == query.StatusSuccess
	s.err = res.Err
	s.jobs = res.Data.Content
	s.paginator.SetTotal(res.Data.Page.TotalPages)
	rows := make([]Row, len(res.Data.Content))
	for i, j := range res.Data.Content {
		rows[i] = Row{
			"id":        float64(j.ID),
			"createdBy": j.CreatedBy,
			"createdAt": j.CreatedAt,
			"status":    j.Status,
			"log":       j.Log,
		}
	}
	s.table.SetRows(rows)
}

// showDetail opens the flattened field view for one job.
func (s *jobsPageState) showDetail(job frontiers.Job) {
	body, err := json.Marshal(job)
	if err != nil {
		s.detail = []detail.Field{{Key: "error", Value: err.Error()}}
		s.detailJobID = job.ID
		return
	}
	s.detail = detail.FromJSON(body)
	s.detailJobID = job.ID
}

func (s *jobsPageState) closeDetail() {
	s.detail = nil
	s.detailJobID = 0
}

func (s *jobsPageState) jobAt(rowIndex int) (frontiers.Job, bool) {
	if rowIndex < 0 || rowIndex >= len(s.jobs) {
		return frontiers.Job{}, false
	}
	return s.jobs[rowIndex], true
}

type testJobArgs struct {
	Fail    bool
	SleepMs int
}

func launchTestJobMutation(client query.Doer, store *query.Store) *query.Mutation[testJobArgs] {
	return &query.Mutation[testJobArgs]{
		Client: client,
		Store:  store,
		Build: func(a testJobArgs) frontiers.Request {
			return frontiers.LaunchTestJobRequest(a.Fail, a.SleepMs)
		},
		InvalidateKeys: jobPageKeys(),
	}
}

func purgeJobsMutation(client query.Doer, store *query.Store) *query.Mutation[struct{}] {
	return &query.Mutation[struct{}]{
		Client: client,
		Store:  store,
		Build: func(struct{}) frontiers.Request {
			return frontiers.PurgeJobsRequest()
		},
		InvalidateKeys: jobPageKeys(),
	}
}

// jobPageKeys covers the first ten pages of the job listing.
func jobPageKeys() []query.Key {
	keys := make([]query.Key, 0, 10)
	for p := 0; p < 10; p++ {
		keys = append(keys, keyJobsPage(p))
	}
	return keys
}
