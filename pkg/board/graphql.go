package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sethvargo/go-retry"
)

const workspaceQuery = `query ($id: ID!) {
  workspace(id: $id) {
    id
  }
}`

const issueByInfoQuery = `query ($repositoryGhId: Int!, $issueNumber: Int!) {
  issueByInfo(repositoryGhId: $repositoryGhId, issueNumber: $issueNumber) {
    id
  }
}`

const connectMutation = `mutation ($input: CreateIssuePrConnectionInput!) {
  createIssuePrConnection(input: $input) {
    issue {
      id
    }
  }
}`

const disconnectMutation = `mutation ($input: DeleteIssuePrConnectionInput!) {
  deleteIssuePrConnection(input: $input) {
    issue {
      id
    }
  }
}`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query sends a GraphQL document and decodes its data into out when not nil.
// Transport failures, 429 and 5xx responses are retried.
func (z *ZenHub) query(ctx context.Context, document string, variables map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	var body []byte
	attempt := 0
	err = retry.Do(ctx, z.backoff(), func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			z.logger.Logf("%s: retrying request (attempt %d)", z.Name(), attempt)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.apiURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+z.key)
		req.Header.Set("Content-Type", "application/json")

		resp, err := z.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("request failed: %w", err))
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("failed to read response body: %w", err))
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(respBody))
		}

		body = respBody
		return nil
	})
	if err != nil {
		return err
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrGraphQL, decoded.Errors[0].Message)
	}
	if out == nil || len(decoded.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
