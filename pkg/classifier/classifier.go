// Package classifier decides whether a referenced issue may be linked to a
// pull request.
package classifier

import "github.com/lerenn/issue-marker/pkg/issue"

// Kind is the validity category of an issue.
type Kind int

// Validity categories.
const (
	Valid Kind = iota
	ValidNeedsRelink
	InvalidPullRequest
	InvalidClosed
	InvalidLabeled
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case ValidNeedsRelink:
		return "valid-needs-relink"
	case InvalidPullRequest:
		return "invalid-pull-request"
	case InvalidClosed:
		return "invalid-closed"
	case InvalidLabeled:
		return "invalid-labeled"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying a snapshot.
type Classification struct {
	Kind Kind
	// Label is the label that caused InvalidLabeled or ValidNeedsRelink.
	Label string
}

// Linkable reports whether the issue should be connected to the pull request.
func (c Classification) Linkable() bool {
	return c.Kind == Valid || c.Kind == ValidNeedsRelink
}

// Default labels.
const (
	LabelBeta       = "beta"
	LabelProduction = "production"
	LabelAlpha      = "alpha"
)

// Params configures a Classifier.
type Params struct {
	// BlockingLabels prevent linking, the first present in this order is reported.
	BlockingLabels []string
	// RelinkLabel marks an issue that is linked with a warning.
	RelinkLabel string
}

// DefaultParams returns the stock label configuration.
func DefaultParams() Params {
	return Params{
		BlockingLabels: []string{LabelBeta, LabelProduction},
		RelinkLabel:    LabelAlpha,
	}
}

// rule is one row of the decision table. It returns ok when it applies.
type rule struct {
	name  string
	apply func(s issue.Snapshot) (Classification, bool)
}

// Classifier evaluates its rules top to bottom, the first match wins.
type Classifier struct {
	rules []rule
}

// New creates a Classifier for the given label configuration.
func New(params Params) *Classifier {
	return &Classifier{rules: []rule{
		{name: "pull-request", apply: isPullRequest},
		{name: "closed", apply: isClosed},
		{name: "blocking-label", apply: hasAnyLabel(params.BlockingLabels, InvalidLabeled)},
		{name: "relink-label", apply: hasAnyLabel(nonEmpty(params.RelinkLabel), ValidNeedsRelink)},
	}}
}

// NewDefault creates a Classifier with DefaultParams.
func NewDefault() *Classifier {
	return New(DefaultParams())
}

// Classify returns the classification of the snapshot.
func (c *Classifier) Classify(s issue.Snapshot) Classification {
	for _, r := range c.rules {
		if cl, ok := r.apply(s); ok {
			return cl
		}
	}
	return Classification{Kind: Valid}
}

// RuleNames returns the rule names in evaluation order.
func (c *Classifier) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}

func isPullRequest(s issue.Snapshot) (Classification, bool) {
	return Classification{Kind: InvalidPullRequest}, s.PullRequest
}

func isClosed(s issue.Snapshot) (Classification, bool) {
	return Classification{Kind: InvalidClosed}, !s.Open
}

func hasAnyLabel(labels []string, kind Kind) func(issue.Snapshot) (Classification, bool) {
	return func(s issue.Snapshot) (Classification, bool) {
		for _, l := range labels {
			if s.HasLabel(l) {
				return Classification{Kind: kind, Label: l}, true
			}
		}
		return Classification{}, false
	}
}

func nonEmpty(label string) []string {
	if label == "" {
		return nil
	}
	return []string{label}
}
