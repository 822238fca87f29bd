// Package service wraps the API client with the per-entity state the UI
// consumes: a single in-flight flag, the last failure message, and outcome
// notifications. Services follow the app's single-threaded event model and
// are not safe for concurrent use; concurrent calls would share one loading
// flag rather than stack.
package service

import "github.com/ceyizapp/ceyiz/internal/notify"

// UpdateOptions configures a mutation. Notify controls whether the outcome
// raises a user-facing notification; silent updates still record the error
// and return it to the caller.
type UpdateOptions struct {
	Notify bool
}

// state is the per-service request bookkeeping shared by all operations.
type state struct {
	notifier notify.Notifier
	loading  bool
	err      string
}

// Loading reports whether a request from this service is in flight.
func (s *state) Loading() bool {
	return s.loading
}

// Err returns the last failure message, or empty after a success.
func (s *state) Err() string {
	return s.err
}

func (s *state) begin() {
	s.loading = true
	s.err = ""
}

func (s *state) finish(err error) error {
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	return err
}
