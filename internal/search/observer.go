package search

// Observer receives progress notifications from a search. Implementations must be
// safe for concurrent use when the searcher runs with more than one worker.
type Observer interface {
	// SearchStarted is called once, with the roots forming the first frontier.
	SearchStarted(goal string, roots []string)
	// FrontierWidened is called after every failed round with the size of the next frontier.
	FrontierWidened(round int, size int)
	// GoalFound is called once with the path of the located file.
	GoalFound(path string)
	// SearchExhausted is called when the frontier runs empty without a result.
	SearchExhausted(rounds int)
	// ListFailed is called when a directory could not be listed. The search continues.
	ListFailed(dir string, err error)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) SearchStarted(string, []string) {
}

func (NopObserver) FrontierWidened(int, int) {
}

func (NopObserver) GoalFound(string) {
}

func (NopObserver) SearchExhausted(int) {
}

func (NopObserver) ListFailed(string, error) {
}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) SearchStarted(goal string, roots []string) {
	for _, o := range m {
		o.SearchStarted(goal, roots)
	}
}

func (m MultiObserver) FrontierWidened(round int, size int) {
	for _, o := range m {
		o.FrontierWidened(round, size)
	}
}

func (m MultiObserver) GoalFound(path string) {
	for _, o := range m {
		o.GoalFound(path)
	}
}

func (m MultiObserver) SearchExhausted(rounds int) {
	for _, o := range m {
		o.SearchExhausted(rounds)
	}
}

func (m MultiObserver) ListFailed(dir string, err error) {
	for _, o := range m {
		o.ListFailed(dir, err)
	}
}
