// Package baserow is a thin client for the Baserow rows API, scoped to
// the distractions table.
package baserow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"distractions/internal/domain"
)

const defaultBaseURL = "https://api.baserow.io"

// Archived is a single select field with options "Yes" and "No".
// Filtering goes by option id, not label.
const archivedYesOptionID = "5100881"

const pageSize = 100

// Client wraps the Baserow REST API for one table.
type Client struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	token   string
	tableID int
}

// New creates a Baserow client for the given table.
func New(token string, tableID int, logger *slog.Logger) *Client {
	return &Client{
		logger:  logger,
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
		tableID: tableID,
	}
}

type listResponse struct {
	Next    *string      `json:"next"`
	Results []rowPayload `json:"results"`
}

type rowPayload struct {
	ID        int          `json:"id"`
	Entry     string       `json:"Entry"`
	Type      *selectValue `json:"Type"`
	Archived  *selectValue `json:"Archived"`
	CreatedOn string       `json:"Created On"`
}

type selectValue struct {
	Value string `json:"value"`
}

// List pages through the table, skipping archived rows, newest first.
func (c *Client) List(ctx context.Context) ([]*domain.DistractionRow, error) {
	var rows []*domain.DistractionRow

	for page := 1; ; page++ {
		u, err := url.Parse(fmt.Sprintf("%s/api/database/rows/table/%d/", c.baseURL, c.tableID))
		if err != nil {
			return nil, fmt.Errorf("invalid Baserow URL: %w", err)
		}
		q := u.Query()
		q.Set("user_field_names", "true")
		q.Set("size", strconv.Itoa(pageSize))
		q.Set("page", strconv.Itoa(page))
		q.Set("filter__Archived__single_select_not_equal", archivedYesOptionID)
		q.Set("order_by", "-Created On")
		u.RawQuery = q.Encode()

		var body listResponse
		if err := c.do(ctx, http.MethodGet, u.String(), nil, &body); err != nil {
			return nil, err
		}

		for _, item := range body.Results {
			row := &domain.DistractionRow{
				ID:        item.ID,
				Entry:     item.Entry,
				CreatedOn: item.CreatedOn,
			}
			if item.Type != nil {
				row.Type = item.Type.Value
			}
			if item.Archived != nil {
				row.Archived = item.Archived.Value == "Yes"
			}
			rows = append(rows, row)
		}

		if body.Next == nil {
			break
		}
	}

	return rows, nil
}

// Archive flips the Archived single select to Yes.
func (c *Client) Archive(ctx context.Context, id int) error {
	return c.patchRow(ctx, id, map[string]any{"Archived": "Yes"})
}

// Hide flips the Hidden single select to Yes. Hidden rows stay in the
// table but leave the feed.
func (c *Client) Hide(ctx context.Context, id int) error {
	return c.patchRow(ctx, id, map[string]any{"Hidden": "Yes"})
}

// Delete removes the row permanently.
func (c *Client) Delete(ctx context.Context, id int) error {
	u := fmt.Sprintf("%s/api/database/rows/table/%d/%d/", c.baseURL, c.tableID, id)
	return c.do(ctx, http.MethodDelete, u, nil, nil)
}

func (c *Client) patchRow(ctx context.Context, id int, patch map[string]any) error {
	u := fmt.Sprintf("%s/api/database/rows/table/%d/%d/?user_field_names=true", c.baseURL, c.tableID, id)
	return c.do(ctx, http.MethodPatch, u, patch, nil)
}

// do issues one API request. Unlike the enrichment fetchers, record
// store failures are real errors: a feed that cannot reach its source
// of truth has nothing to show.
func (c *Client) do(ctx context.Context, method, requestURL string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("Baserow request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Baserow API error: %d %s", resp.StatusCode, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse Baserow response: %w", err)
		}
	}
	return nil
}
