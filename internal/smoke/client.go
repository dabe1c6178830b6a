package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/draftboard/internal/adapters/http/api"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/types"
	"github.com/okian/draftboard/pkg/logger"
)

// client talks to the board's HTTP API.
type client struct {
	base string
	http *http.Client
}

func newClient(base string, c *http.Client) *client {
	return &client{base: base, http: c}
}

// do sends a request as scout (when non-empty), checks the status and
// decodes the JSON body into out (when non-nil).
func (c *client) do(ctx context.Context, method, path, scout string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if scout != "" {
		req.Header.Set(api.SessionHeader, scout)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != want {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *client) health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", "", nil, http.StatusOK, nil)
}

func (c *client) board(ctx context.Context, q url.Values) ([]types.Row, error) {
	path := "/players"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var rows []types.Row
	if err := c.do(ctx, http.MethodGet, path, "", nil, http.StatusOK, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *client) submitReport(ctx context.Context, s submission) error {
	body := map[string]any{
		"name":     s.Report.Name,
		"text":     s.Report.Text,
		"grade":    s.Report.Grade,
		"interest": s.Report.Interest,
		"type":     s.Report.Type,
	}
	var saved model.Report
	return c.do(ctx, http.MethodPost, playerPath(s.PlayerID, "/reports"), s.Scout, body, http.StatusCreated, &saved)
}

func (c *client) setBookmark(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, playerPath(id, "/bookmark"), "", nil, http.StatusOK, nil)
}

func (c *client) watchlist(ctx context.Context) ([]types.Row, error) {
	var rows []types.Row
	if err := c.do(ctx, http.MethodGet, "/watchlist", "", nil, http.StatusOK, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *client) myReports(ctx context.Context, scout string) ([]types.PlayerReports, error) {
	var groups []types.PlayerReports
	if err := c.do(ctx, http.MethodGet, "/reports/mine", scout, nil, http.StatusOK, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func playerPath(id int, suffix string) string {
	return "/players/" + strconv.Itoa(id) + suffix
}
