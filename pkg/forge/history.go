package forge

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const bodyHistoryQuery = `query ($owner: String!, $repo: String!, $number: Int!, $cursor: String) {
  repository(owner: $owner, name: $repo) {
    pullRequest(number: $number) {
      userContentEdits(first: 100, after: $cursor) {
        nodes {
          createdAt
          diff
        }
        totalCount
        pageInfo {
          hasNextPage
          endCursor
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// editsPage is one page of userContentEdits.
type editsPage struct {
	Nodes []struct {
		CreatedAt time.Time `json:"createdAt"`
		Diff      *string   `json:"diff"`
	} `json:"nodes"`
	TotalCount int `json:"totalCount"`
	PageInfo   struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

type editsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				UserContentEdits editsPage `json:"userContentEdits"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// editsAccumulator folds pages into the history.
type editsAccumulator struct {
	versions []BodyVersion
	total    int
}

func (a editsAccumulator) add(page editsPage) editsAccumulator {
	for _, n := range page.Nodes {
		body := ""
		if n.Diff != nil {
			body = *n.Diff
		}
		a.versions = append(a.versions, BodyVersion{At: n.CreatedAt, Body: body})
	}
	a.total = page.TotalCount
	return a
}

// FetchBodyHistoryAscending returns every recorded body edit, oldest first.
func (g *GitHub) FetchBodyHistoryAscending(ctx context.Context, owner, repo string, number int) ([]BodyVersion, error) {
	var (
		acc    editsAccumulator
		cursor *string
	)

	for {
		page, err := g.fetchEditsPage(ctx, owner, repo, number, cursor)
		if err != nil {
			return nil, err
		}
		acc = acc.add(page)

		if !page.PageInfo.HasNextPage {
			break
		}
		if page.PageInfo.EndCursor == "" {
			return nil, fmt.Errorf("%w: pull request %s/%s#%d", ErrHistoryPagination, owner, repo, number)
		}
		next := page.PageInfo.EndCursor
		cursor = &next
	}

	if len(acc.versions) != acc.total {
		return nil, fmt.Errorf("%w: expected %d edits but queried %d", ErrHistoryCountMismatch, acc.total, len(acc.versions))
	}

	slices.SortStableFunc(acc.versions, func(a, b BodyVersion) int {
		return a.At.Compare(b.At)
	})
	return acc.versions, nil
}

func (g *GitHub) fetchEditsPage(ctx context.Context, owner, repo string, number int, cursor *string) (editsPage, error) {
	if err := g.wait(ctx); err != nil {
		return editsPage{}, err
	}

	req, err := g.client.NewRequest(http.MethodPost, g.graphQLPath(), graphQLRequest{
		Query: bodyHistoryQuery,
		Variables: map[string]interface{}{
			"owner":  owner,
			"repo":   repo,
			"number": number,
			"cursor": cursor,
		},
	})
	if err != nil {
		return editsPage{}, fmt.Errorf("failed to create GraphQL request: %w", err)
	}

	var out editsResponse
	resp, err := g.client.Do(ctx, req, &out)
	if err != nil {
		return editsPage{}, g.handleGitHubError(err, resp, fmt.Sprintf("edit history of %s/%s#%d", owner, repo, number))
	}
	if len(out.Errors) > 0 {
		return editsPage{}, fmt.Errorf("%w: %s", ErrGraphQL, out.Errors[0].Message)
	}

	return out.Data.Repository.PullRequest.UserContentEdits, nil
}

// graphQLPath resolves the GraphQL endpoint relative to the REST base URL.
// GitHub Enterprise Server serves REST under /api/v3/ and GraphQL under /api/graphql.
func (g *GitHub) graphQLPath() string {
	if strings.HasSuffix(g.client.BaseURL.Path, "/api/v3/") {
		return "../graphql"
	}
	return "graphql"
}
