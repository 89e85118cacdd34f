package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-finder/internal/models"
)

const (
	searchPath   = "/tutors/search"
	subjectsPath = "/subjects/list"
)

// ErrUnexpectedStatus is returned for any non-2xx catalog response.
var ErrUnexpectedStatus = errors.New("catalog: unexpected status")

// CatalogClient calls the tutor catalog API over HTTP.
type CatalogClient struct {
	baseURL    string
	apiPrefix  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCatalogClient builds a client for the catalog API mounted at apiPrefix
// on baseURL.
func NewCatalogClient(baseURL, apiPrefix string, timeout time.Duration, logger *zap.Logger) *CatalogClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiPrefix:  cleanPrefix(apiPrefix),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SearchTutors fetches tutors keyed by subject and location. Empty keys are
// sent as empty parameters, matching what the catalog expects.
func (c *CatalogClient) SearchTutors(ctx context.Context, subject, location string) ([]models.Tutor, error) {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("location", location)

	var tutors []models.Tutor
	if err := c.get(ctx, searchPath+"?"+q.Encode(), &tutors); err != nil {
		return nil, fmt.Errorf("search tutors: %w", err)
	}
	return tutors, nil
}

// ListSubjects fetches the names of every known subject.
func (c *CatalogClient) ListSubjects(ctx context.Context) ([]string, error) {
	var subjects []string
	if err := c.get(ctx, subjectsPath, &subjects); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (c *CatalogClient) get(ctx context.Context, path string, dest interface{}) error {
	endpoint := c.baseURL + c.apiPrefix + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if reqID := RequestIDFromContext(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("catalog request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(body))),
		)
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return decodePayload(raw, dest)
}

// decodePayload accepts either the service envelope {"data": ...} or a bare
// JSON document.
func decodePayload(raw []byte, dest interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return fmt.Errorf("decode envelope: %w", err)
		}
		if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
			return nil
		}
		trimmed = envelope.Data
	}
	if err := json.Unmarshal(trimmed, dest); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func cleanPrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

type requestIDKey struct{}

// WithRequestID stores a request ID to forward on outgoing catalog calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
