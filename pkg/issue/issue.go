// Package issue provides the reference model used to detect, compare and
// collect forge issues mentioned in pull request bodies.
package issue

import (
	"fmt"
	"strings"
)

// Reference represents a parsed issue reference.
type Reference struct {
	Owner       string `yaml:"owner"`
	Repository  string `yaml:"repository"`
	IssueNumber int    `yaml:"number"`
}

// Key returns the identity of the reference: lower-cased owner/repo#number.
func (r Reference) Key() string {
	return strings.ToLower(r.String())
}

// String returns the reference as written in reports: owner/repo#number.
func (r Reference) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repository, r.IssueNumber)
}

// Equal reports whether both references share the same identity.
func (r Reference) Equal(other Reference) bool {
	return r.Key() == other.Key()
}

// WithDefaults fills a missing owner or repository from the hosting repository.
func (r Reference) WithDefaults(owner, repository string) Reference {
	if r.Owner == "" {
		r.Owner = owner
	}
	if r.Repository == "" {
		r.Repository = repository
	}
	return r
}

// Snapshot is the state of an issue as fetched from the forge during a run.
type Snapshot struct {
	// Reference is the canonical reference, as reported by the forge.
	Reference   Reference
	Labels      []string
	Open        bool
	PullRequest bool
}

// ID returns the identity string of the snapshot.
func (s Snapshot) ID() string {
	return s.Reference.String()
}

// HasLabel reports whether the snapshot carries the given label.
func (s Snapshot) HasLabel(label string) bool {
	for _, l := range s.Labels {
		if l == label {
			return true
		}
	}
	return false
}
