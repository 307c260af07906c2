package connection

import "sync"

// Result is the outcome of one question sent to the answer service
type Result struct {
	Text string
	Err  error
}

// Pending tracks questions that are waiting for an answer, keyed by request ID
type Pending struct {
	waiters map[string]chan Result
	mu      sync.Mutex
}

// NewPending creates an empty pending table
func NewPending() *Pending {
	return &Pending{
		waiters: make(map[string]chan Result),
	}
}

// Add registers a request and returns the channel its result will arrive on
func (p *Pending) Add(id string) <-chan Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Result, 1)
	p.waiters[id] = ch
	return ch
}

// Resolve delivers r to the waiter for id. It reports false for unknown IDs.
func (p *Pending) Resolve(id string, r Result) bool {
	p.mu.Lock()
	ch, ok := p.waiters[id]
	delete(p.waiters, id)
	p.mu.Unlock()

	if !ok {
		return false
	}
	ch <- r
	return true
}

// Remove forgets a request without delivering anything
func (p *Pending) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.waiters, id)
}

// FailAll resolves every outstanding request with err
func (p *Pending) FailAll(err error) {
	p.mu.Lock()
	waiters := p.waiters
	p.waiters = make(map[string]chan Result)
	p.mu.Unlock()

	for _, ch := range waiters {
		ch <- Result{Err: err}
	}
}

// Len returns the number of outstanding requests
func (p *Pending) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters)
}
