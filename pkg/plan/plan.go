// Package plan computes which issues must be connected to or disconnected
// from a pull request on the tracking board.
package plan

import "github.com/lerenn/issue-marker/pkg/issue"

// Plan lists board mutations. Both sets are disjoint.
type Plan struct {
	ToConnect    issue.LinkSet
	ToDisconnect issue.LinkSet
}

// New computes the plan turning prior into current.
// A reference present in both triggers no action.
func New(current, prior issue.LinkSet) Plan {
	return Plan{
		ToConnect:    current.Difference(prior),
		ToDisconnect: prior.Difference(current),
	}
}

// Empty reports whether the plan requires no board call.
func (p Plan) Empty() bool {
	return p.ToConnect.Len() == 0 && p.ToDisconnect.Len() == 0
}

// Apply returns prior with the plan applied.
func (p Plan) Apply(prior issue.LinkSet) issue.LinkSet {
	return prior.Difference(p.ToDisconnect).Union(p.ToConnect)
}
