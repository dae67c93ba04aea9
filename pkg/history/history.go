// Package history reconstructs the set of issues a previous run announced as
// linked, so it can be diffed against the current one.
package history

import (
	"fmt"

	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/lerenn/issue-marker/pkg/report"
)

// Strategy names.
const (
	StrategyComments = "comments"
	StrategyEdits    = "edits"
)

// Input is the raw material available to a strategy.
type Input struct {
	// Owner and Repository are the hosting repository, used as defaults.
	Owner      string
	Repository string
	// Marker identifies bot comments.
	Marker string
	// Bodies are the pull request body versions, oldest first. The last one
	// is the current body.
	Bodies []string
	// Comments are the bodies of the bot's previous comments.
	Comments []string
}

// Resolver returns the canonical reference of ref when it is linkable now.
type Resolver func(ref issue.Reference) (issue.Reference, bool)

// Strategy builds the previously linked set.
type Strategy interface {
	// Name returns the strategy name.
	Name() string
	// Candidates returns the references the strategy needs resolved.
	Candidates(in Input) []issue.Reference
	// PriorLinked returns the previously linked set.
	PriorLinked(in Input, resolve Resolver) issue.LinkSet
}

// New returns the strategy registered under name.
func New(name string) (Strategy, error) {
	switch name {
	case StrategyComments:
		return PriorComments{}, nil
	case StrategyEdits:
		return EditHistory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// EditHistory treats the body before the latest edit as the prior state and
// keeps the references of it that are linkable now.
type EditHistory struct{}

// Name returns the strategy name.
func (EditHistory) Name() string {
	return StrategyEdits
}

// Candidates returns the references of the previous body version.
func (EditHistory) Candidates(in Input) []issue.Reference {
	if len(in.Bodies) < 2 {
		return nil
	}
	return issue.Extract(in.Bodies[len(in.Bodies)-2], in.Owner, in.Repository)
}

// PriorLinked resolves the candidates and keeps the linkable ones.
func (h EditHistory) PriorLinked(in Input, resolve Resolver) issue.LinkSet {
	var prior issue.LinkSet
	for _, ref := range h.Candidates(in) {
		if canonical, ok := resolve(ref); ok {
			prior.Add(canonical)
		}
	}
	return prior
}

// PriorComments reads the linked references back from the bot's previous
// "issues to be marked" comments.
type PriorComments struct{}

// Name returns the strategy name.
func (PriorComments) Name() string {
	return StrategyComments
}

// Candidates returns nothing: rendered references were linkable when written.
func (PriorComments) Candidates(Input) []issue.Reference {
	return nil
}

// PriorLinked returns the union of the linked sections of prior comments.
func (PriorComments) PriorLinked(in Input, _ Resolver) issue.LinkSet {
	var prior issue.LinkSet
	for _, body := range in.Comments {
		linked, ok := report.ParseLinked(body, in.Marker)
		if !ok {
			continue
		}
		prior = prior.Union(linked)
	}
	return prior
}
