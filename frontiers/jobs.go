package frontiers

import (
	"context"
	"fmt"
	"net/url"
)

// JobsPagedRequest builds the paged job listing read.
func JobsPagedRequest(page, size int, sort string) Request {
	return Request{
		Method: "GET",
		Path:   "/api/jobs/all/pageable",
		Params: url.Values{
			"page": {fmt.Sprintf("%d", page)},
			"size": {fmt.Sprintf("%d", size)},
			"sort": {sort},
		},
	}
}

// JobsPaged returns one page of background jobs, newest first.
func (c *Client) JobsPaged(ctx context.Context, page, size int) (PagedResponse[Job], error) {
	var out PagedResponse[Job]
	err := c.DoJSON(ctx, JobsPagedRequest(page, size, "id,desc"), &out)
	return out, err
}

// LaunchTestJobRequest builds the write that launches the server's test job.
func LaunchTestJobRequest(fail bool, sleepMs int) Request {
	return Request{
		Method: "POST",
		Path:   "/api/jobs/launch/testjob",
		Params: url.Values{
			"fail":    {fmt.Sprintf("%t", fail)},
			"sleepMs": {fmt.Sprintf("%d", sleepMs)},
		},
	}
}

// PurgeJobsRequest builds the write that deletes all job log records.
func PurgeJobsRequest() Request {
	return Request{Method: "DELETE", Path: "/api/jobs/all"}
}
