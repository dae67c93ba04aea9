package report

import (
	"regexp"
	"strings"

	"github.com/lerenn/issue-marker/pkg/issue"
)

var itemPattern = regexp.MustCompile(`^\d+\. (.+)$`)

// IsReport reports whether body was written by a renderer using marker.
func IsReport(body, marker string) bool {
	return marker != "" && strings.HasPrefix(body, marker)
}

// IsNoIssues reports whether body is a "no issues to be marked" report.
func IsNoIssues(body, marker string) bool {
	return IsReport(body, marker) && strings.HasPrefix(body[len(marker):], noIssuesBanner)
}

// ParseLinked reads back the linkable references of a rendered report.
// It is the inverse of the linkable section written by Render. ok is false
// when body is not an "issues to be marked" report.
func ParseLinked(body, marker string) (linked issue.LinkSet, ok bool) {
	if !IsReport(body, marker) || !strings.HasPrefix(body[len(marker):], issuesBanner) {
		return issue.LinkSet{}, false
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == separator {
			break
		}
		m := itemPattern.FindStringSubmatch(line)
		if m == nil || strings.HasPrefix(m[1], "~~") {
			continue
		}
		id, _, _ := strings.Cut(m[1], " ")
		ref, err := issue.ParseReference(id)
		if err != nil {
			continue
		}
		linked.Add(ref)
	}
	return linked, true
}
