package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier-cms/internal/domain"
)

func testReview() domain.Review {
	return domain.Review{Name: "Jon", Company: "Acme", Rating: 5, Comment: "great work"}
}

func TestPackagesMapsSnakeCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/packages" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `[{"id":"1","name":"Starter","description":"d","price":"$1,999","duration":"2-3 weeks","features":["A"],"is_popular":true}]`)
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	got, err := client.Packages(context.Background())
	if err != nil {
		t.Fatalf("packages: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 package, got %d", len(got))
	}
	if got[0].Name != "Starter" || !got[0].Popular {
		t.Fatalf("snake_case mapping failed: %#v", got[0])
	}
}

func TestNon2xxSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	_, err := client.Services(context.Background())
	if err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error must carry the HTTP status, got %q", err.Error())
	}
}

func TestContactInfoMapsNestedSocialLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"email":"hi@x.co","phone":"1","address":"a","business_hours":"h","social_links":{"instagram":"https://instagram.com/x"}}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	info, err := client.ContactInfo(context.Background())
	if err != nil {
		t.Fatalf("contact info: %v", err)
	}
	if info.BusinessHours != "h" || info.SocialLinks.Instagram != "https://instagram.com/x" {
		t.Fatalf("mapping failed: %#v", info)
	}
}

func TestSubmitReviewOmitsServerAssignedFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reviews" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		io.WriteString(w, `{"id":"42","name":"Jon","rating":5,"is_approved":false}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	review, err := client.SubmitReview(context.Background(), testReview())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if review.ID != "42" || review.Approved {
		t.Fatalf("unexpected response mapping: %#v", review)
	}
	for _, field := range []string{"id", "is_approved"} {
		if _, ok := body[field]; ok {
			t.Fatalf("field %q must not be sent by the client", field)
		}
	}
	if body["rating"] != float64(5) {
		t.Fatalf("expected rating 5 in body, got %v", body["rating"])
	}
}

func TestUploadImageSendsMultipartAndBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/upload" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "cover.jpg" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		io.WriteString(w, `{"url":"https://cdn.example.com/cover.jpg"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "sekrit")
	url, err := client.UploadImage(context.Background(), "cover.jpg", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example.com/cover.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}
