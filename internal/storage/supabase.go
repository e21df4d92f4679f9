package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Supabase talks to the Supabase storage REST API with the
// service-role key. Object paths follow /storage/v1/object/{bucket}/{path}.
type Supabase struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewSupabase(baseURL, serviceKey string) *Supabase {
	return &Supabase{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Supabase) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL(bucket, path), bytes.NewReader(data))
	if err != nil {
		return err
	}
	s.authorize(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, body)
	}
	return nil
}

func (s *Supabase) Download(ctx context.Context, bucket, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(bucket, path), nil)
	if err != nil {
		return nil, "", err
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", ErrObjectNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("storage download: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (s *Supabase) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, escapePath(path))
}

// Exists issues a short HEAD probe. Any transport error counts as
// missing, which errs on the side of hiding stale rows.
func (s *Supabase) Exists(ctx context.Context, bucket, path string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, s.objectURL(bucket, path), nil)
	if err != nil {
		return false
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 300
}

func (s *Supabase) objectURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, bucket, escapePath(path))
}

func (s *Supabase) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
}

func escapePath(path string) string {
	segments := ""
	for i, seg := range splitPath(path) {
		if i > 0 {
			segments += "/"
		}
		segments += url.PathEscape(seg)
	}
	return segments
}

func splitPath(path string) []string {
	var out []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			out = append(out, path[start:i])
			start = i + 1
		}
	}
	return append(out, path[start:])
}
