package corpus

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Open returns a streaming reader over the corpus at source, either a local
// path or an http(s) URL. A ".gz" suffix is decompressed on the fly.
// retryMax bounds the total time spent retrying the initial HTTP request.
func Open(ctx context.Context, source string, retryMax time.Duration) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err := fetch(ctx, source, retryMax)
		if err != nil {
			return nil, err
		}
		rc = body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open corpus: %w", err)
		}
		rc = f
	}

	if strings.HasSuffix(strings.ToLower(source), ".gz") {
		zr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("gzip corpus: %w", err)
		}
		return &gzipCloser{zr: zr, under: rc}, nil
	}
	return rc, nil
}

// fetch GETs url, retrying transport errors and 5xx responses with
// exponential backoff until retryMax elapses. Other statuses fail
// immediately. The response body streams; nothing is persisted locally.
func fetch(ctx context.Context, url string, retryMax time.Duration) (io.ReadCloser, error) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = retryMax

	var body io.ReadCloser
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("fetch corpus: status %d", resp.StatusCode)
			if resp.StatusCode >= 500 {
				return lastErr
			}
			return backoff.Permanent(lastErr)
		}
		body = resp.Body
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}
	return body, nil
}

// gzipCloser closes both the gzip layer and the source underneath it.
type gzipCloser struct {
	zr    *gzip.Reader
	under io.ReadCloser
}

func (g *gzipCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipCloser) Close() error {
	if err := g.zr.Close(); err != nil {
		g.under.Close()
		return err
	}
	return g.under.Close()
}
