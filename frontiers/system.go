package frontiers

import "context"

// GetCurrentUser returns the session identity and roles.
func (c *Client) GetCurrentUser(ctx context.Context) (CurrentUser, error) {
	var out CurrentUser
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/currentUser"}, &out)
	return out, err
}

// GetSystemInfo returns server feature flags.
func (c *Client) GetSystemInfo(ctx context.Context) (SystemInfo, error) {
	var out SystemInfo
	err := c.DoJSON(ctx, Request{Method: "GET", Path: "/api/systemInfo"}, &out)
	return out, err
}

// DisconnectGithubRequest builds the write that unlinks the user's GitHub identity.
func DisconnectGithubRequest() Request {
	return Request{Method: "DELETE", Path: "/api/github/disconnect"}
}
