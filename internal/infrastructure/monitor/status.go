package monitor

import "time"

// Status is the outcome of the most recent store probe.
type Status struct {
	Backend   string        `json:"backend"`
	Online    bool          `json:"online"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency_ns"`
	Failures  int           `json:"consecutive_failures"`
	LastCheck time.Time     `json:"last_check"`
	Since     time.Time     `json:"since"`
}

// Checked reports whether a probe has completed.
func (s Status) Checked() bool {
	return !s.LastCheck.IsZero()
}

// next derives the status that follows a probe started at `at`.
// Since moves only when the store changes between online and offline.
func (s Status) next(at time.Time, latency time.Duration, err error) Status {
	out := Status{
		Backend:   s.Backend,
		Online:    err == nil,
		Latency:   latency,
		LastCheck: at,
		Since:     s.Since,
	}
	if err != nil {
		out.Error = err.Error()
		out.Failures = s.Failures + 1
	}
	if !s.Checked() || s.Online != out.Online {
		out.Since = at
	}
	return out
}
