// Package fetch retrieves job postings over HTTP and reduces them to plain text.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/candidate-screener/internal/ingestion"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the user agent string for HTTP requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; CandidateScreener/1.0)"
	// DefaultMaxBytes caps how much of a response body is read.
	DefaultMaxBytes = 5 << 20
)

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
	Platform    Platform
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	MaxBytes  int64
	// RequestsPerSecond limits requests to any one host. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		MaxBytes:          DefaultMaxBytes,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// Fetcher issues GET requests, limiting the rate per host.
type Fetcher struct {
	client  *http.Client
	opts    Options
	limiter *HostLimiter
}

// New creates a Fetcher. A nil opts uses DefaultOptions.
func New(opts *Options) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}

	f := &Fetcher{
		client: &http.Client{Timeout: o.Timeout},
		opts:   o,
	}
	if o.RequestsPerSecond > 0 {
		f.limiter = NewHostLimiter(o.RequestsPerSecond, o.Burst)
	}
	return f
}

// URL retrieves the content at urlStr. On a non-200 status the Result is
// returned together with the error.
func (f *Fetcher) URL(ctx context.Context, urlStr string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Host == "" || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, urlStr); err != nil {
			return nil, &Error{URL: urlStr, Message: "rate limit wait cancelled", Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	for key, value := range f.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBytes+1))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if int64(len(body)) > f.opts.MaxBytes {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("response body exceeds %d bytes", f.opts.MaxBytes)}
	}

	result := &Result{
		URL:         urlStr,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Platform:    DetectPlatform(urlStr),
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// JobDescription fetches a job posting and returns its cleaned text. HTML pages
// are reduced to the posting body using the selectors of the detected platform.
func (f *Fetcher) JobDescription(ctx context.Context, urlStr string) (string, error) {
	result, err := f.URL(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := result.Text()
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	if text == "" {
		return "", &Error{URL: urlStr, Message: "no text content"}
	}
	return text, nil
}

// Text returns the cleaned text of the fetched content.
func (r *Result) Text() (string, error) {
	if !r.isHTML() {
		return ingestion.CleanText(string(r.Body)), nil
	}
	return ingestion.ExtractHTML(r.Body, ContentSelectors(r.Platform), NoiseSelectors(r.Platform)...)
}

func (r *Result) isHTML() bool {
	ct := strings.ToLower(r.ContentType)
	if strings.Contains(ct, "html") {
		return true
	}
	if ct != "" && !strings.HasPrefix(ct, "application/octet-stream") {
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(r.Body), []byte("<"))
}
