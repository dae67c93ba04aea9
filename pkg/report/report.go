// Package report renders the pull request comment listing detected issue
// references, and reads the linked references back from a rendered comment.
package report

import (
	"fmt"
	"strings"

	"github.com/lerenn/issue-marker/pkg/classifier"
	"github.com/lerenn/issue-marker/pkg/issue"
)

// DefaultMarker is the invisible prefix of every comment written by the bot.
const DefaultMarker = "<!--Issue Marker Checker-->"

const (
	noIssuesBanner = "⚠️⚠️<b>No issues to be marked!</b>⚠️⚠️"
	issuesBanner   = "✅<b>Issues to be marked!</b>"
	invalidHeader  = "🗑️<b>Invalid links:</b>"
	separator      = "---"

	tagPullRequest = "[🛑pull request]"
	tagClosed      = "[📕closed]"
)

// Entry is a classified reference, in the order it was first seen.
type Entry struct {
	Reference      issue.Reference
	Classification classifier.Classification
}

// Renderer builds report bodies.
type Renderer struct {
	marker       string
	exampleOwner string
}

// NewRenderer creates a Renderer. exampleOwner is used in the linking hint.
func NewRenderer(marker, exampleOwner string) *Renderer {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Renderer{marker: marker, exampleOwner: exampleOwner}
}

// Marker returns the comment prefix used by this renderer.
func (r *Renderer) Marker() string {
	return r.marker
}

// Render produces the comment body for entries, mentioning author.
func (r *Renderer) Render(entries []Entry, author string) string {
	if !anyLinkable(entries) {
		return r.renderNoIssues(entries, author)
	}
	return r.renderIssues(entries, author)
}

func (r *Renderer) renderNoIssues(entries []Entry, author string) string {
	var b strings.Builder
	b.WriteString(r.marker)
	b.WriteString(noIssuesBanner)
	fmt.Fprintf(&b, "\n@%s, please link the related issues <b>(if any)</b> either like `#123` or `%s/repository-name#456`.",
		author, r.exampleOwner)

	if len(entries) == 0 {
		return b.String()
	}

	b.WriteString("\n\n" + invalidHeader + "\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, invalidLine(e))
	}
	return b.String()
}

func (r *Renderer) renderIssues(entries []Entry, author string) string {
	var b strings.Builder
	b.WriteString(r.marker)
	b.WriteString(issuesBanner)
	fmt.Fprintf(&b, "\n- @%s, check the detected linked issues:\n", author)

	n := 0
	for _, e := range entries {
		if !e.Classification.Linkable() {
			continue
		}
		n++
		fmt.Fprintf(&b, "\n%d. %s", n, linkableLine(e))
	}

	separated := false
	for _, e := range entries {
		if e.Classification.Linkable() {
			continue
		}
		if !separated {
			b.WriteString("\n" + separator)
			separated = true
		}
		n++
		fmt.Fprintf(&b, "\n%d. %s", n, invalidLine(e))
	}
	return b.String()
}

func linkableLine(e Entry) string {
	line := e.Reference.String()
	if e.Classification.Kind == classifier.ValidNeedsRelink {
		line += fmt.Sprintf(" [⚠️re-linking `%s`]", e.Classification.Label)
	}
	return line
}

func invalidLine(e Entry) string {
	return fmt.Sprintf("~~%s~~ %s", e.Reference, reasonTag(e.Classification))
}

func reasonTag(c classifier.Classification) string {
	switch c.Kind {
	case classifier.InvalidPullRequest:
		return tagPullRequest
	case classifier.InvalidClosed:
		return tagClosed
	default:
		return fmt.Sprintf("[🏷️labeled `%s`]", c.Label)
	}
}

func anyLinkable(entries []Entry) bool {
	for _, e := range entries {
		if e.Classification.Linkable() {
			return true
		}
	}
	return false
}
