package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// SupabaseStore talks to the Supabase Storage REST API. The bucket is
// expected to be public so the returned URL resolves without a token.
type SupabaseStore struct {
	httpClient *resty.Client
	baseURL    string
	bucket     string
	logger     *zap.Logger
}

func NewSupabaseStore(baseURL, apiKey, bucket string, logger *zap.Logger) *SupabaseStore {
	baseURL = strings.TrimRight(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetAuthToken(apiKey).
		SetHeader("apikey", apiKey)

	return &SupabaseStore{
		httpClient: client,
		baseURL:    baseURL,
		bucket:     bucket,
		logger:     logger,
	}
}

func (s *SupabaseStore) Put(ctx context.Context, path string, body []byte, contentType string) (string, error) {
	var apiErr supabaseError
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(body).
		SetError(&apiErr).
		SetPathParams(map[string]string{"bucket": s.bucket}).
		Post("/storage/v1/object/{bucket}/" + path)
	if err != nil {
		s.logger.Error("supabase upload failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		s.logger.Error("supabase upload rejected",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", apiErr.Message))
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode(), apiErr.Message)
	}

	return s.PublicURL(path), nil
}

func (s *SupabaseStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}
