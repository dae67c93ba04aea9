package issue

import (
	"fmt"
	"regexp"
	"strconv"
)

// referencePattern matches owner/repo#123 and #123, case-insensitively.
var referencePattern = regexp.MustCompile(
	`(?i)(?:(?P<owner>[a-z0-9]+(?:-[a-z0-9]+)*)/(?P<repo>[a-z0-9._-]+))?#(?P<issue>\d+)`,
)

var (
	ownerGroup = referencePattern.SubexpIndex("owner")
	repoGroup  = referencePattern.SubexpIndex("repo")
	issueGroup = referencePattern.SubexpIndex("issue")
)

// Parse extracts every issue reference from text in order of appearance.
// Owner and repository are left empty when the text omits them.
// References inside code blocks are matched too.
func Parse(text string) []Reference {
	matches := referencePattern.FindAllStringSubmatch(text, -1)
	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		number, err := strconv.Atoi(m[issueGroup])
		if err != nil || number <= 0 {
			continue
		}
		refs = append(refs, Reference{
			Owner:       m[ownerGroup],
			Repository:  m[repoGroup],
			IssueNumber: number,
		})
	}
	return refs
}

// Deduplicate fills in missing owner/repository with the given defaults and
// drops every reference whose identity was already seen, keeping the first.
func Deduplicate(refs []Reference, owner, repository string) []Reference {
	return NewLinkSet(refsWithDefaults(refs, owner, repository)...).References()
}

// Extract parses and deduplicates the references of text.
func Extract(text, owner, repository string) []Reference {
	return Deduplicate(Parse(text), owner, repository)
}

// ParseReference parses a single fully qualified owner/repo#number reference.
func ParseReference(s string) (Reference, error) {
	m := referencePattern.FindStringSubmatch(s)
	if m == nil || m[0] != s || m[ownerGroup] == "" {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidIssueReference, s)
	}
	number, err := strconv.Atoi(m[issueGroup])
	if err != nil || number <= 0 {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidIssueNumber, s)
	}
	return Reference{Owner: m[ownerGroup], Repository: m[repoGroup], IssueNumber: number}, nil
}

func refsWithDefaults(refs []Reference, owner, repository string) []Reference {
	out := make([]Reference, len(refs))
	for i, r := range refs {
		out[i] = r.WithDefaults(owner, repository)
	}
	return out
}
