//go:build unit

package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURLPath = "/api-v3"

// setup creates a test HTTP server and a GitHub forge configured to talk to it.
// Handlers registered on the returned mux receive requests with baseURLPath stripped.
func setup(t *testing.T) (g *GitHub, mux *http.ServeMux, serverURL string) {
	t.Helper()

	mux = http.NewServeMux()

	apiHandler := http.NewServeMux()
	apiHandler.Handle(baseURLPath+"/", http.StripPrefix(baseURLPath, mux))

	server := httptest.NewServer(apiHandler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	u, _ := url.Parse(server.URL + baseURLPath + "/")
	client.BaseURL = u

	g, err := NewGitHub(NewGitHubParams{Client: client})
	require.NoError(t, err)
	return g, mux, server.URL
}

func TestGitHub_Name(t *testing.T) {
	g, err := NewGitHub(NewGitHubParams{})
	require.NoError(t, err)
	assert.Equal(t, "github", g.Name())
}

func TestNewGitHub_EnterpriseURL(t *testing.T) {
	g, err := NewGitHub(NewGitHubParams{Token: "t", APIURL: "https://ghe.example.com/api/v3"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/", g.client.BaseURL.Path)
	assert.Equal(t, "../graphql", g.graphQLPath())
}

func TestGetPullRequest(t *testing.T) {
	g, mux, _ := setup(t)

	mux.HandleFunc("/repos/owner/repo/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = fmt.Fprint(w, `{"number":42,"body":"Fixes #7","user":{"login":"alice"},"updated_at":"2024-01-02T03:04:05Z"}`)
	})

	pr, err := g.GetPullRequest(context.Background(), "owner", "repo", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "alice", pr.Author)
	assert.Equal(t, "Fixes #7", pr.Body)
	assert.Equal(t, 2024, pr.UpdatedAt.Year())
}

func TestGetPullRequest_NotFound(t *testing.T) {
	g, mux, _ := setup(t)

	mux.HandleFunc("/repos/owner/repo/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	_, err := g.GetPullRequest(context.Background(), "owner", "repo", 42)
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestGetIssueSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected issue.Snapshot
	}{
		{
			name:     "open issue with labels",
			response: `{"number":7,"state":"open","repository_url":"https://api.github.com/repos/owner/repo","labels":[{"name":"alpha"},{"name":"bug"}]}`,
			expected: issue.Snapshot{
				Reference: issue.Reference{Owner: "owner", Repository: "repo", IssueNumber: 7},
				Labels:    []string{"alpha", "bug"},
				Open:      true,
			},
		},
		{
			name:     "closed pull request",
			response: `{"number":7,"state":"closed","repository_url":"https://api.github.com/repos/owner/repo","pull_request":{"url":"x"}}`,
			expected: issue.Snapshot{
				Reference:   issue.Reference{Owner: "owner", Repository: "repo", IssueNumber: 7},
				Labels:      []string{},
				PullRequest: true,
			},
		},
		{
			name:     "renamed repository uses canonical name",
			response: `{"number":7,"state":"open","repository_url":"https://api.github.com/repos/Org/New-Name"}`,
			expected: issue.Snapshot{
				Reference: issue.Reference{Owner: "Org", Repository: "New-Name", IssueNumber: 7},
				Labels:    []string{},
				Open:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, mux, _ := setup(t)
			mux.HandleFunc("/repos/owner/repo/issues/7", func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, tt.response)
			})

			snap, err := g.GetIssueSnapshot(context.Background(), issue.Reference{Owner: "owner", Repository: "repo", IssueNumber: 7})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *snap)
		})
	}
}

func TestGetIssueSnapshot_Unauthorized(t *testing.T) {
	g, mux, _ := setup(t)
	mux.HandleFunc("/repos/owner/repo/issues/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})

	_, err := g.GetIssueSnapshot(context.Background(), issue.Reference{Owner: "owner", Repository: "repo", IssueNumber: 7})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListPriorComments_PaginatesAndFilters(t *testing.T) {
	g, mux, serverURL := setup(t)

	mux.HandleFunc("/repos/owner/repo/issues/42/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		if r.URL.Query().Get("page") == "2" {
			_, _ = fmt.Fprint(w, `[{"id":3,"body":"<!--m-->second"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s%s/repos/owner/repo/issues/42/comments?page=2>; rel="next"`, serverURL, baseURLPath))
		_, _ = fmt.Fprint(w, `[{"id":1,"body":"<!--m-->first"},{"id":2,"body":"hello"}]`)
	})

	comments, err := g.ListPriorComments(context.Background(), "owner", "repo", 42, "<!--m-->")
	require.NoError(t, err)
	assert.Equal(t, []Comment{
		{ID: 1, Body: "<!--m-->first"},
		{ID: 3, Body: "<!--m-->second"},
	}, comments)
}

func TestDeleteComment(t *testing.T) {
	g, mux, _ := setup(t)

	called := false
	mux.HandleFunc("/repos/owner/repo/issues/comments/5", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, g.DeleteComment(context.Background(), "owner", "repo", 5))
	assert.True(t, called)
}

func TestCreateComment(t *testing.T) {
	g, mux, _ := setup(t)

	mux.HandleFunc("/repos/owner/repo/issues/42/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "report", body["body"])

		_, _ = fmt.Fprint(w, `{"id":9,"body":"report"}`)
	})

	c, err := g.CreateComment(context.Background(), "owner", "repo", 42, "report")
	require.NoError(t, err)
	assert.Equal(t, &Comment{ID: 9, Body: "report"}, c)
}

func TestGetRepositoryID(t *testing.T) {
	g, mux, _ := setup(t)
	mux.HandleFunc("/repos/owner/repo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"id":1234}`)
	})

	id, err := g.GetRepositoryID(context.Background(), "owner", "repo")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), id)
}

func TestFetchBodyHistoryAscending(t *testing.T) {
	g, mux, _ := setup(t)

	var cursors []interface{}
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "owner", req.Variables["owner"])
		assert.Equal(t, float64(42), req.Variables["number"])
		cursors = append(cursors, req.Variables["cursor"])

		if req.Variables["cursor"] == nil {
			_, _ = fmt.Fprint(w, `{"data":{"repository":{"pullRequest":{"userContentEdits":{
				"nodes":[{"createdAt":"2024-01-03T00:00:00Z","diff":"third"},{"createdAt":"2024-01-02T00:00:00Z","diff":"second"}],
				"totalCount":3,"pageInfo":{"hasNextPage":true,"endCursor":"c1"}}}}}}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"data":{"repository":{"pullRequest":{"userContentEdits":{
			"nodes":[{"createdAt":"2024-01-01T00:00:00Z","diff":"first"}],
			"totalCount":3,"pageInfo":{"hasNextPage":false,"endCursor":"c2"}}}}}}`)
	})

	versions, err := g.FetchBodyHistoryAscending(context.Background(), "owner", "repo", 42)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, "first", versions[0].Body)
	assert.Equal(t, "second", versions[1].Body)
	assert.Equal(t, "third", versions[2].Body)
	assert.Equal(t, []interface{}{nil, "c1"}, cursors)
}

func TestFetchBodyHistoryAscending_CountMismatch(t *testing.T) {
	g, mux, _ := setup(t)

	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":{"repository":{"pullRequest":{"userContentEdits":{
			"nodes":[{"createdAt":"2024-01-01T00:00:00Z","diff":"only"}],
			"totalCount":2,"pageInfo":{"hasNextPage":false,"endCursor":""}}}}}}`)
	})

	_, err := g.FetchBodyHistoryAscending(context.Background(), "owner", "repo", 42)
	assert.ErrorIs(t, err, ErrHistoryCountMismatch)
}

func TestFetchBodyHistoryAscending_GraphQLError(t *testing.T) {
	g, mux, _ := setup(t)

	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"errors":[{"message":"Could not resolve to a PullRequest"}]}`)
	})

	_, err := g.FetchBodyHistoryAscending(context.Background(), "owner", "repo", 42)
	assert.ErrorIs(t, err, ErrGraphQL)
}
