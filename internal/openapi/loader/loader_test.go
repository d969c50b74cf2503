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

	"github.com/goliatone/go-modelmap/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
)

const minimalDocument = "openapi: 3.0.3\ninfo: {title: t, version: '1'}\npaths: {}\n"

func TestLoader_Sources(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	if err := os.WriteFile(path, []byte(minimalDocument), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(minimalDocument))
	}))
	defer server.Close()

	fsys := fstest.MapFS{"specs/api.yaml": {Data: []byte(minimalDocument)}}
	l := loader.New(pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithFileSystem(fsys),
		pkgopenapi.WithHTTPFallback(0),
	))

	cases := []struct {
		name string
		src  pkgopenapi.Source
	}{
		{name: "file", src: pkgopenapi.SourceFromFile(path)},
		{name: "fs", src: pkgopenapi.SourceFromFS("./specs/api.yaml")},
		{name: "url", src: pkgopenapi.SourceFromURL(server.URL + "/api.yaml")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := l.Load(ctx, tc.src)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if string(doc.Raw()) != minimalDocument {
				t.Fatalf("unexpected payload %q", doc.Raw())
			}
			if doc.Location() != tc.src.Location() {
				t.Fatalf("expected location %q, got %q", tc.src.Location(), doc.Location())
			}
		})
	}
	if !strings.HasPrefix(accept, "application/json") {
		t.Fatalf("expected JSON-first Accept header, got %q", accept)
	}
}

func TestLoader_Errors(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	offline := loader.New(pkgopenapi.NewLoaderOptions())
	online := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	cases := []struct {
		name   string
		loader pkgopenapi.Loader
		ctx    context.Context
		src    pkgopenapi.Source
		want   string
	}{
		{name: "nil source", loader: offline, ctx: ctx, src: nil, want: "source is nil"},
		{name: "http disabled", loader: offline, ctx: ctx, src: pkgopenapi.SourceFromURL(server.URL), want: "http support disabled"},
		{name: "no filesystem", loader: offline, ctx: ctx, src: pkgopenapi.SourceFromFS("api.yaml"), want: "filesystem is not configured"},
		{name: "missing file", loader: offline, ctx: ctx, src: pkgopenapi.SourceFromFile(filepath.Join(t.TempDir(), "nope.yaml")), want: "load"},
		{name: "bad status", loader: online, ctx: ctx, src: pkgopenapi.SourceFromURL(server.URL), want: "unexpected status 404"},
		{name: "cancelled", loader: offline, ctx: cancelled, src: pkgopenapi.SourceFromFile("api.yaml"), want: "context canceled"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.loader.Load(tc.ctx, tc.src)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoader_DefaultSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(minimalDocument))
	}))
	defer server.Close()

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithDefaultSources()))
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDocument {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	custom := pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithHTTPClient(server.Client()),
		pkgopenapi.WithDefaultSources(),
	)
	if custom.AllowHTTPFallback {
		t.Fatalf("default sources should not override an injected client")
	}
}
