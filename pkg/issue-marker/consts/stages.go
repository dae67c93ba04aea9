// Package consts provides stage name constants for the hook system.
package consts

// Stage names for the hook system.
const (
	// Gathering stages.
	Fetch = "Fetch"
	Parse = "Parse"

	// Evaluation stages.
	Dedupe   = "Dedupe"
	Classify = "Classify"
	Render   = "Render"

	// Side-effect stages.
	Reconcile = "Reconcile"
	Publish   = "Publish"

	// Run wraps a whole run.
	Run = "Run"
)

// Stages returns every stage in execution order, followed by Run.
func Stages() []string {
	return []string{Fetch, Parse, Dedupe, Classify, Render, Reconcile, Publish, Run}
}
