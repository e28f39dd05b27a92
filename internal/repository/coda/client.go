// Package coda is a thin client for the Coda rows API, covering the
// curated distractions table and the triage inbox table in one doc.
package coda

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

const defaultBaseURL = "https://coda.io/apis/v1"

const pageLimit = 100

// Column ids of the curated table. Coda keys row values by column id,
// not display name.
const (
	colName   = "c-yrhJnxU2ns"
	colLink   = "c-V60iC4UaYP"
	colImage  = "c-R5LP8UaCQf"
	colScale  = "c-q3eAZofAM0"
	colStatus = "c-39S1Z-7QdP"
)

// Column ids of the inbox table.
const (
	colInboxEntry = "c-JNxO-bx_kU"
	colInboxType  = "c-_y8fi93TKI"
	colInboxTitle = "c-zQlx72b6vU"
)

// Destination tables per routing action tag. Rows are inserted into
// the destination by its Entry column display name.
var actionTables = map[string]string{
	domain.ActionDistraction: "grid-t9UDaCw93A",
	domain.ActionTask:        "grid-K2sBpUqx1R",
	domain.ActionIdeaArchive: "grid-mH4vJcW8dN",
	domain.ActionProject:     "grid-Qw7ZrT3pLy",
	domain.ActionMedia:       "grid-b9XnFsV2cM",
	domain.ActionToShare:     "grid-Ej5GhKd7tU",
	domain.ActionToBuy:       "grid-Ya8WqLm4vB",
	domain.ActionDevLink:     "grid-Ts3NcRj9xH",
	domain.ActionDeepLook:    "grid-Uv6MfBk2zQ",
}

// Client wraps the Coda REST API for one doc.
type Client struct {
	logger         *slog.Logger
	client         *http.Client
	baseURL        string
	token          string
	docID          string
	curatedTableID string
	inboxTableID   string
}

// New creates a Coda client for the given doc and tables.
func New(token, docID, curatedTableID, inboxTableID string, logger *slog.Logger) *Client {
	return &Client{
		logger:         logger,
		client:         &http.Client{Timeout: 15 * time.Second},
		baseURL:        defaultBaseURL,
		token:          token,
		docID:          docID,
		curatedTableID: curatedTableID,
		inboxTableID:   inboxTableID,
	}
}

type rowsResponse struct {
	Items         []rowPayload `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
}

type rowPayload struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Values    map[string]any `json:"values"`
}

// Curated returns the curated-table view of the doc.
func (c *Client) Curated() domain.CuratedStore { return curatedView{c} }

// Inbox returns the inbox-table view of the doc.
func (c *Client) Inbox() domain.InboxStore { return inboxView{c} }

type curatedView struct{ c *Client }

func (v curatedView) List(ctx context.Context) ([]*domain.CuratedRow, error) {
	return v.c.ListCurated(ctx)
}

type inboxView struct{ c *Client }

func (v inboxView) List(ctx context.Context) ([]*domain.InboxRow, error) {
	return v.c.ListInbox(ctx)
}

func (v inboxView) Delete(ctx context.Context, rowID string) error {
	return v.c.DeleteInbox(ctx, rowID)
}

func (v inboxView) RouteAndDelete(ctx context.Context, rowID, action, content string) error {
	return v.c.RouteAndDelete(ctx, rowID, action, content)
}

// ListCurated returns the curated table's rows with status "Live", in
// the order the doc hands them out.
func (c *Client) ListCurated(ctx context.Context) ([]*domain.CuratedRow, error) {
	var rows []*domain.CuratedRow

	err := c.listPages(ctx, c.curatedTableID, nil, func(item rowPayload) {
		status := stringValue(item.Values[colStatus])
		if status != "Live" {
			return
		}
		rows = append(rows, &domain.CuratedRow{
			ID:     item.ID,
			Name:   stringValue(item.Values[colName]),
			Link:   stringValue(item.Values[colLink]),
			Image:  stringValue(item.Values[colImage]),
			Scale:  stringValue(item.Values[colScale]),
			Status: status,
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListInbox returns all inbox rows, newest first.
func (c *Client) ListInbox(ctx context.Context) ([]*domain.InboxRow, error) {
	var rows []*domain.InboxRow

	sort := url.Values{"sortBy": {"createdAt"}, "direction": {"descending"}}
	err := c.listPages(ctx, c.inboxTableID, sort, func(item rowPayload) {
		entry := stringValue(item.Values[colInboxEntry])
		if entry == "" {
			entry = item.Name
		}
		rows = append(rows, &domain.InboxRow{
			ID:         item.ID,
			Entry:      entry,
			RecordType: stringValue(item.Values[colInboxType]),
			Title:      stringValue(item.Values[colInboxTitle]),
			CreatedAt:  item.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteInbox removes an inbox row permanently.
func (c *Client) DeleteInbox(ctx context.Context, rowID string) error {
	endpoint := fmt.Sprintf("%s/docs/%s/tables/%s/rows/%s", c.baseURL, c.docID, c.inboxTableID, rowID)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// RouteAndDelete copies the entry content into the destination table
// named by the action tag, then deletes the inbox row. If the insert
// fails the inbox row survives, so nothing is ever silently lost.
func (c *Client) RouteAndDelete(ctx context.Context, rowID, action, content string) error {
	destTable, ok := actionTables[action]
	if !ok {
		return fmt.Errorf("unknown routing action %q", action)
	}

	insert := map[string]any{
		"rows": []map[string]any{
			{"cells": []map[string]any{
				{"column": "Entry", "value": content},
			}},
		},
	}
	endpoint := fmt.Sprintf("%s/docs/%s/tables/%s/rows", c.baseURL, c.docID, destTable)
	if err := c.do(ctx, http.MethodPost, endpoint, insert, nil); err != nil {
		return fmt.Errorf("failed to route entry to %s: %w", action, err)
	}

	return c.DeleteInbox(ctx, rowID)
}

// listPages walks a table's pages, invoking fn per row.
func (c *Client) listPages(ctx context.Context, tableID string, extra url.Values, fn func(rowPayload)) error {
	pageToken := ""
	for {
		endpoint, err := url.Parse(fmt.Sprintf("%s/docs/%s/tables/%s/rows", c.baseURL, c.docID, tableID))
		if err != nil {
			return fmt.Errorf("invalid Coda URL: %w", err)
		}
		q := endpoint.Query()
		q.Set("limit", strconv.Itoa(pageLimit))
		for key, vals := range extra {
			q.Set(key, vals[0])
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		endpoint.RawQuery = q.Encode()

		var body rowsResponse
		if err := c.do(ctx, http.MethodGet, endpoint.String(), nil, &body); err != nil {
			return err
		}
		for _, item := range body.Items {
			fn(item)
		}

		if body.NextPageToken == "" {
			return nil
		}
		pageToken = body.NextPageToken
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, out any) error {
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

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("Coda request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Coda API error: %d %s", resp.StatusCode, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse Coda response: %w", err)
		}
	}
	return nil
}

// stringValue coerces a Coda cell value. Cells arrive as untyped JSON:
// usually strings, sometimes numbers.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
