package watch

import "sync"

// TestSource is a Source whose channels are driven directly by tests
type TestSource struct {
	changes chan Event
	errors  chan error
	closed  bool
	mu      sync.Mutex
}

// NewTestSource creates a test source with buffered channels
func NewTestSource() *TestSource {
	return &TestSource{
		changes: make(chan Event, 16),
		errors:  make(chan error, 4),
	}
}

func (ts *TestSource) Changes() <-chan Event {
	return ts.changes
}

func (ts *TestSource) Errors() <-chan error {
	return ts.errors
}

func (ts *TestSource) Close() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.closed {
		return nil
	}
	ts.closed = true
	close(ts.changes)
	close(ts.errors)
	return nil
}

// Closed reports whether Close has been called
func (ts *TestSource) Closed() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.closed
}

// SendChange delivers a change event
func (ts *TestSource) SendChange(e Event) {
	ts.changes <- e
}

// SendError delivers an error
func (ts *TestSource) SendError(err error) {
	ts.errors <- err
}
