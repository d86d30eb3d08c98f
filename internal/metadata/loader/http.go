package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// acceptHeader pins the metadata contract version expected from the
// generator service.
const acceptHeader = "application/vnd.initializr.v2.1+json"

func loadHTTP(ctx context.Context, client *http.Client, rawURL string, timeout time.Duration, now func() time.Time) ([]byte, error) {
	if client == nil {
		return nil, errors.New("metadata loader: http client is not configured")
	}
	if rawURL == "" {
		return nil, errors.New("metadata loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	target, err := cacheBust(rawURL, now)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("metadata loader: unexpected status " + resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// cacheBust appends a ts parameter so intermediaries never serve a stale
// schema across sessions.
func cacheBust(rawURL string, now func() time.Time) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := parsed.Query()
	query.Set("ts", strconv.FormatInt(now().UnixMilli(), 10))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
