//go:build unit

package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_Key(t *testing.T) {
	tests := []struct {
		name     string
		ref      Reference
		expected string
	}{
		{
			name:     "lower case",
			ref:      Reference{Owner: "org", Repository: "repo", IssueNumber: 10},
			expected: "org/repo#10",
		},
		{
			name:     "mixed case",
			ref:      Reference{Owner: "NoorDigitalAgency", Repository: "Issue-Marker", IssueNumber: 3},
			expected: "noordigitalagency/issue-marker#3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Key())
		})
	}
}

func TestReference_WithDefaults(t *testing.T) {
	ref := Reference{IssueNumber: 5}.WithDefaults("org", "repo")
	assert.Equal(t, Reference{Owner: "org", Repository: "repo", IssueNumber: 5}, ref)

	explicit := Reference{Owner: "other", Repository: "lib", IssueNumber: 5}.WithDefaults("org", "repo")
	assert.Equal(t, "other/lib#5", explicit.String())
}

func TestSnapshot_HasLabel(t *testing.T) {
	s := Snapshot{Labels: []string{"alpha", "bug"}}
	assert.True(t, s.HasLabel("alpha"))
	assert.False(t, s.HasLabel("Alpha"))
	assert.False(t, s.HasLabel("beta"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Reference
	}{
		{
			name:     "no references",
			text:     "Just a description.",
			expected: []Reference{},
		},
		{
			name:     "short reference",
			text:     "Fixes #10",
			expected: []Reference{{IssueNumber: 10}},
		},
		{
			name: "qualified and short references in order",
			text: "Closes Org-Name/my.repo_x#7 and #8",
			expected: []Reference{
				{Owner: "Org-Name", Repository: "my.repo_x", IssueNumber: 7},
				{IssueNumber: 8},
			},
		},
		{
			name:     "reference inside a code block is matched",
			text:     "```\n#12\n```",
			expected: []Reference{{IssueNumber: 12}},
		},
		{
			name:     "zero is not an issue number",
			text:     "#0 and #1",
			expected: []Reference{{IssueNumber: 1}},
		},
		{
			name: "owner with several hyphenated segments",
			text: "a-b-c/repo#3",
			expected: []Reference{
				{Owner: "a-b-c", Repository: "repo", IssueNumber: 3},
			},
		},
		{
			name:     "trailing hyphen is not part of the owner",
			text:     "owner-/repo#3",
			expected: []Reference{{IssueNumber: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.text))
		})
	}
}

func TestDeduplicate(t *testing.T) {
	text := "#5, OWNER/REPO#5, owner/repo#5, other/repo#5 and #6"

	refs := Extract(text, "owner", "repo")

	assert.Equal(t, []Reference{
		{Owner: "owner", Repository: "repo", IssueNumber: 5},
		{Owner: "other", Repository: "repo", IssueNumber: 5},
		{Owner: "owner", Repository: "repo", IssueNumber: 6},
	}, refs)
}

func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	refs := Extract("Org/Repo#10 then #10", "org", "repo")

	require.Len(t, refs, 1)
	assert.Equal(t, "Org/Repo#10", refs[0].String())
}

func TestExtract_Deterministic(t *testing.T) {
	text := "#3 foo/bar#2 #3 Foo/Bar#2 #1"

	assert.Equal(t, Extract(text, "o", "r"), Extract(text, "o", "r"))
}

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("org/repo#42")
	require.NoError(t, err)
	assert.Equal(t, Reference{Owner: "org", Repository: "repo", IssueNumber: 42}, ref)

	_, err = ParseReference("#42")
	assert.ErrorIs(t, err, ErrInvalidIssueReference)

	_, err = ParseReference("see org/repo#42")
	assert.ErrorIs(t, err, ErrInvalidIssueReference)

	_, err = ParseReference("org/repo#0")
	assert.ErrorIs(t, err, ErrInvalidIssueNumber)
}

func TestLinkSet(t *testing.T) {
	a := Reference{Owner: "org", Repository: "repo", IssueNumber: 1}
	b := Reference{Owner: "org", Repository: "repo", IssueNumber: 2}
	upperA := Reference{Owner: "ORG", Repository: "Repo", IssueNumber: 1}

	var set LinkSet
	assert.True(t, set.Add(a))
	assert.False(t, set.Add(upperA))
	assert.True(t, set.Add(b))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(upperA))
	assert.Equal(t, []string{"org/repo#1", "org/repo#2"}, set.Keys())

	other := NewLinkSet(b)
	assert.Equal(t, []Reference{a}, set.Difference(other).References())
	assert.Equal(t, []Reference{b}, set.Intersection(other).References())
	assert.True(t, other.Union(set).Equal(set))
	assert.False(t, other.Equal(set))
}

func TestErrorTypes(t *testing.T) {
	assert.Equal(t, "invalid issue reference format", ErrInvalidIssueReference.Error())
	assert.Equal(t, "issue number must be a positive integer", ErrInvalidIssueNumber.Error())
}
