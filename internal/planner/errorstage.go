// README: Terminal error stage producing the single user-facing failure message.
package planner

import "fmt"

// handleError converts whatever error signal an upstream stage recorded into
// one user-facing message. It is the only stage allowed to leave Err set at
// the end of a run.
func handleError(rec Record) Record {
	cause := rec.Err
	if cause == "" {
		cause = "unknown error"
	}
	rec.Err = fmt.Sprintf("trip planning could not be completed: %s", cause)
	// the terminal outcomes are mutually exclusive
	rec.Itinerary = ""
	rec.Alternatives = ""
	return rec
}
