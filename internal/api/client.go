package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookmystars_client/internal/config"
	"bookmystars_client/internal/logger"
	"bookmystars_client/pkg/apperrors"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outbound calls. An empty string
// means the call goes out unauthenticated.
type TokenSource interface {
	GetAuthToken() string
}

// BodyKind classifies a response body by its Content-Type.
type BodyKind int

const (
	KindEmpty BodyKind = iota
	KindJSON
	KindText
)

// Response is the raw outcome of one HTTP call.
type Response struct {
	StatusCode int
	Kind       BodyKind
	Body       []byte
}

// Client is the shared HTTP core for every API wrapper. It attaches the
// bearer token when present, serializes JSON bodies, tags each request with
// an X-Request-Id and normalizes transport failures to apperrors.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout()},
		tokens:  tokens,
	}
}

// Call performs one HTTP request. body, when non-nil, is JSON-encoded.
// Transport errors come back as *apperrors.AppError with HTTPCode 0;
// any received response is returned as-is, success or not.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "encode", "Failed to encode request body", 0)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.NetworkError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// Upload performs a multipart POST with one file part plus extra form fields.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, extra map[string]string) (*Response, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to build multipart body", 0)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to read upload file", 0)
	}
	for k, v := range extra {
		if err := mw.WriteField(k, v); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to build multipart body", 0)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to build multipart body", 0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, apperrors.NetworkError(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	if c.tokens != nil {
		if token := c.tokens.GetAuthToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Error("api call failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID)
		return nil, apperrors.NetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NetworkError(err)
	}

	logger.HTTPLog(req.Method, req.URL.String(), resp.StatusCode, time.Since(start), requestID)

	return &Response{
		StatusCode: resp.StatusCode,
		Kind:       classify(resp.Header.Get("Content-Type"), raw),
		Body:       raw,
	}, nil
}

func classify(contentType string, body []byte) BodyKind {
	if len(body) == 0 {
		return KindEmpty
	}
	if strings.Contains(contentType, "application/json") {
		return KindJSON
	}
	return KindText
}

// Query builds a query string out of ordered key/value pairs. Panics on an
// odd pair count, which is a programming error at the call site.
func Query(pairs ...string) string {
	if len(pairs)%2 != 0 {
		panic("api.Query: odd number of arguments")
	}
	var sb strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		fmt.Fprintf(&sb, "%s=%s", pairs[i], url.QueryEscape(pairs[i+1]))
	}
	return sb.String()
}
