package board

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/lerenn/issue-marker/pkg/logger"
	"github.com/sethvargo/go-retry"
)

const (
	// ZenHubName is the name identifier for the ZenHub board.
	ZenHubName = "zenhub"
	// ZenHubAPIURL is the public ZenHub GraphQL endpoint.
	ZenHubAPIURL = "https://api.zenhub.com/public/graphql"
	// DefaultTimeout bounds a single ZenHub request.
	DefaultTimeout = 30 * time.Second

	maxRetries     = 3
	retryBaseDelay = 1 * time.Second
)

// NewZenHubParams contains parameters for creating a ZenHub board.
type NewZenHubParams struct {
	Key          string
	Workspace    string
	APIURL       string
	Repositories RepositoryIDResolver
}

// ZenHub links issues to pull requests through the ZenHub GraphQL API.
type ZenHub struct {
	key          string
	workspace    string
	apiURL       string
	repositories RepositoryIDResolver
	httpClient   *http.Client
	backoff      func() retry.Backoff
	logger       logger.Logger

	mu                sync.Mutex
	workspaceVerified bool
	repositoryIDs     map[string]int64
}

// Option is a functional option for configuring the ZenHub board.
type Option func(*ZenHub)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(z *ZenHub) {
		z.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(z *ZenHub) {
		z.logger = l
	}
}

// WithBackoff sets the retry policy applied to transient failures.
func WithBackoff(backoff func() retry.Backoff) Option {
	return func(z *ZenHub) {
		z.backoff = backoff
	}
}

// NewZenHub creates a new ZenHub board.
func NewZenHub(params NewZenHubParams, opts ...Option) (*ZenHub, error) {
	if params.Key == "" {
		return nil, ErrKeyEmpty
	}
	if params.Workspace == "" {
		return nil, ErrWorkspaceEmpty
	}
	if params.Repositories == nil {
		return nil, ErrResolverMissing
	}

	z := &ZenHub{
		key:           params.Key,
		workspace:     params.Workspace,
		apiURL:        params.APIURL,
		repositories:  params.Repositories,
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		backoff:       defaultBackoff,
		logger:        logger.NewNoopLogger(),
		repositoryIDs: make(map[string]int64),
	}
	if z.apiURL == "" {
		z.apiURL = ZenHubAPIURL
	}
	for _, opt := range opts {
		opt(z)
	}
	return z, nil
}

func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseDelay))
}

// Name returns the name of the board.
func (z *ZenHub) Name() string {
	return ZenHubName
}

// ConnectIssues links every issue to the pull request.
func (z *ZenHub) ConnectIssues(ctx context.Context, issues []issue.Reference, pr issue.Reference) error {
	return z.forEachConnection(ctx, issues, pr, connectMutation, ErrConnectionFailed)
}

// DisconnectIssues removes the link between every issue and the pull request.
func (z *ZenHub) DisconnectIssues(ctx context.Context, issues []issue.Reference, pr issue.Reference) error {
	return z.forEachConnection(ctx, issues, pr, disconnectMutation, ErrDisconnectionFailed)
}

// forEachConnection applies mutation to every issue and joins the failures.
func (z *ZenHub) forEachConnection(
	ctx context.Context,
	issues []issue.Reference,
	pr issue.Reference,
	mutation string,
	failure error,
) error {
	if len(issues) == 0 {
		return nil
	}
	if err := z.verifyWorkspace(ctx); err != nil {
		return err
	}

	prID, err := z.issueID(ctx, pr)
	if err != nil {
		return fmt.Errorf("%w: resolving %s: %w", failure, pr, err)
	}

	var errs []error
	for _, ref := range issues {
		issueID, err := z.issueID(ctx, ref)
		if err == nil {
			err = z.query(ctx, mutation, map[string]interface{}{
				"input": map[string]interface{}{
					"issueId":       issueID,
					"pullRequestId": prID,
				},
			}, nil)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", failure, ref, err))
			continue
		}
		z.logger.Logf("%s: %s <-> %s", z.Name(), ref, pr)
	}
	return errors.Join(errs...)
}

// verifyWorkspace checks once that the configured workspace exists.
func (z *ZenHub) verifyWorkspace(ctx context.Context) error {
	z.mu.Lock()
	verified := z.workspaceVerified
	z.mu.Unlock()
	if verified {
		return nil
	}

	var out struct {
		Workspace *struct {
			ID string `json:"id"`
		} `json:"workspace"`
	}
	if err := z.query(ctx, workspaceQuery, map[string]interface{}{"id": z.workspace}, &out); err != nil {
		return err
	}
	if out.Workspace == nil {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, z.workspace)
	}

	z.mu.Lock()
	z.workspaceVerified = true
	z.mu.Unlock()
	return nil
}

// issueID resolves the board id of an issue or pull request.
func (z *ZenHub) issueID(ctx context.Context, ref issue.Reference) (string, error) {
	repositoryID, err := z.repositoryID(ctx, ref.Owner, ref.Repository)
	if err != nil {
		return "", err
	}

	var out struct {
		IssueByInfo *struct {
			ID string `json:"id"`
		} `json:"issueByInfo"`
	}
	if err := z.query(ctx, issueByInfoQuery, map[string]interface{}{
		"repositoryGhId": repositoryID,
		"issueNumber":    ref.IssueNumber,
	}, &out); err != nil {
		return "", err
	}
	if out.IssueByInfo == nil || out.IssueByInfo.ID == "" {
		return "", fmt.Errorf("%w: %s", ErrIssueNotFound, ref)
	}
	return out.IssueByInfo.ID, nil
}

// repositoryID resolves and caches the numeric repository id.
func (z *ZenHub) repositoryID(ctx context.Context, owner, repo string) (int64, error) {
	key := strings.ToLower(owner + "/" + repo)

	z.mu.Lock()
	id, ok := z.repositoryIDs[key]
	z.mu.Unlock()
	if ok {
		return id, nil
	}

	id, err := z.repositories.GetRepositoryID(ctx, owner, repo)
	if err != nil {
		return 0, err
	}

	z.mu.Lock()
	z.repositoryIDs[key] = id
	z.mu.Unlock()
	return id, nil
}
