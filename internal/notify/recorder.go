package notify

import "fmt"

// Recorder captures notifications for tests.
type Recorder struct {
	Successes []string
	Errors    []string
	Warnings  []string
	Infos     []string
}

func (r *Recorder) Success(format string, args ...any) {
	r.Successes = append(r.Successes, fmt.Sprintf(format, args...))
}

func (r *Recorder) Error(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) Info(format string, args ...any) {
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}
