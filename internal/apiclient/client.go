// Package apiclient talks to the remote content API consumed by the public
// pages. Every call is a single attempt: no retry, no backoff, no timeout
// beyond what the caller's context imposes.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"atelier-cms/internal/domain"
)

// Client is a thin wrapper over the remote HTTP JSON API. Token, when set, is
// passed through as a bearer Authorization header on uploads.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) Packages(ctx context.Context) ([]domain.Package, error) {
	var wire []wirePackage
	if err := c.get(ctx, "/packages", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Package, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) Services(ctx context.Context) ([]domain.Service, error) {
	var wire []wireService
	if err := c.get(ctx, "/services", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	var wire []wireTeamMember
	if err := c.get(ctx, "/team-members", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.TeamMember, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) Reviews(ctx context.Context) ([]domain.Review, error) {
	var wire []wireReview
	if err := c.get(ctx, "/reviews", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// ReviewStats is the aggregate the public reviews page shows next to the
// testimonial list.
type ReviewStats struct {
	AverageRating float64
	TotalReviews  int
}

func (c *Client) ReviewStats(ctx context.Context) (ReviewStats, error) {
	var wire wireReviewStats
	if err := c.get(ctx, "/reviews-stats", &wire); err != nil {
		return ReviewStats{}, err
	}
	return ReviewStats{
		AverageRating: wire.AverageRating,
		TotalReviews:  wire.TotalReviews,
	}, nil
}

func (c *Client) ContactInfo(ctx context.Context) (domain.ContactInfo, error) {
	var wire wireContactInfo
	if err := c.get(ctx, "/contact-info", &wire); err != nil {
		return domain.ContactInfo{}, err
	}
	return wire.toDomain(), nil
}

// SubmitReview posts a visitor review. The server assigns id and approval.
func (c *Client) SubmitReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	var wire wireReview
	if err := c.post(ctx, "/reviews", newWireReview(r), &wire); err != nil {
		return domain.Review{}, err
	}
	return wire.toDomain(), nil
}

// SendMessage posts a contact-form submission.
func (c *Client) SendMessage(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	var wire wireContactMessage
	if err := c.post(ctx, "/messages", newWireContactMessage(m), &wire); err != nil {
		return domain.ContactMessage{}, err
	}
	return wire.toDomain(), nil
}

// UploadImage sends multipart form data with a single "file" field and
// returns the hosted URL.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
