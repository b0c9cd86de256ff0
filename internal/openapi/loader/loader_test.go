package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formstate/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

const payload = `{"openapi":"3.0.0"}`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(pkgopenapi.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch: %s", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("location mismatch: %s", doc.Location())
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{"specs/api.json": {Data: []byte(payload)}}
	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/api.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch: %s", doc.Raw())
	}

	if _, err := loader.New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), pkgopenapi.SourceFromFS("specs/api.json")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	src, err := pkgopenapi.SourceFromURL(srv.URL + "/api.json")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	if _, err := loader.New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), src); err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(srv.Client())))
	doc, err := l.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch: %s", doc.Raw())
	}

	missing, err := pkgopenapi.SourceFromURL(srv.URL + "/missing.json")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if _, err := l.Load(context.Background(), missing); err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(ctx, pkgopenapi.SourceFromFile("api.json")); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
