package markin

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL         string
	Client      *http.Client
	Writer      io.Writer
	FrontMatter bool
	Standalone  bool
	Options     []Option
}

// HTTPRender fetches markup with FetchSource and renders it like Render.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render http: Writer is nil")
	}
	body, err := FetchSource(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("render http: %w", err)
	}
	defer body.Close()
	return Render(RenderRequest{
		Reader:      body,
		Writer:      req.Writer,
		FrontMatter: req.FrontMatter,
		Standalone:  req.Standalone,
		Options:     req.Options,
	})
}

// FetchSource GETs an http or https URL and returns the response body, which
// the caller must close. A nil client means http.DefaultClient. Responses
// outside 2xx are errors.
func FetchSource(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch %s: unsupported scheme %q", url, req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}
	return resp.Body, nil
}
