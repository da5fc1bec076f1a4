package tui

// Queue connecting table button callbacks to the update loop

// tableAction is one button press captured from a DataTable callback.
type tableAction struct {
	kind string
	ctx  CellContext
}

// actionQueue collects button presses. Page states hold a pointer to one so
// callbacks survive the model value copies Bubble Tea makes.
type actionQueue struct {
	actions []tableAction
}

func newActionQueue() *actionQueue {
	return &actionQueue{}
}

func (q *actionQueue) push(kind string, ctx CellContext) {
	q.actions = append(q.actions, tableAction{kind: kind, ctx: ctx})
}

// drain returns the queued actions and empties the queue.
func (q *actionQueue) drain() []tableAction {
	out := q.actions
	q.actions = nil
	return out
}
