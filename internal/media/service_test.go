package media

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	cases := []struct {
		fileName string
		want     string
	}{
		{"beach.JPG", "g-1/p-1.jpg"},
		{"beach.jpeg", "g-1/p-1.jpeg"},
		{"noext", "g-1/p-1"},
		{"archive.tar.gz", "g-1/p-1.gz"},
	}
	for _, tc := range cases {
		if got := ObjectKey("g-1", "p-1", tc.fileName); got != tc.want {
			t.Errorf("ObjectKey(%q) = %q, want %q", tc.fileName, got, tc.want)
		}
	}
}

func TestPresignedURLsAreComputedLocally(t *testing.T) {
	// Presigning is pure signature math; no request hits the endpoint.
	svc, err := New("minio.local:9000", "access", "secret", "photos", false, 15*time.Minute)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	uploadURL, err := svc.UploadURL(context.Background(), "g-1/p-1.jpg")
	if err != nil {
		t.Fatalf("UploadURL() error = %v", err)
	}
	if !strings.Contains(uploadURL, "g-1/p-1.jpg") || !strings.Contains(uploadURL, "X-Amz-Signature") {
		t.Fatalf("unexpected upload url %q", uploadURL)
	}

	viewURL, err := svc.ViewURL(context.Background(), "g-1/p-1.jpg")
	if err != nil {
		t.Fatalf("ViewURL() error = %v", err)
	}
	if !strings.Contains(viewURL, "g-1/p-1.jpg") {
		t.Fatalf("unexpected view url %q", viewURL)
	}
}
