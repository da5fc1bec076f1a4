package tui

// Profile page mutations

import (
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/query"
)

func disconnectGithubMutation(client query.Doer, store *query.Store) *query.Mutation[struct{}] {
	return &query.Mutation[struct{}]{
		Client: client,
		Store:  store,
		Build: func(struct{}) frontiers.Request {
			return frontiers.DisconnectGithubRequest()
		},
		InvalidateKeys: []query.Key{keyCurrentUser()},
	}
}
