package routes_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/urlmap-dev/urlmap/internal/routes"
	pkgroutes "github.com/urlmap-dev/urlmap/pkg/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func textHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func TestNew(t *testing.T) {
	sys := routes.New(testLogger())
	if sys == nil {
		t.Fatal("New() returned nil")
	}
}

func TestRegisterRoute(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/test",
		Handler: textHandler("test response"),
	})

	handler := sys.Build()
	if handler == nil {
		t.Fatal("Build() returned nil handler")
	}

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "test response" {
		t.Errorf("Expected body %q, got %q", "test response", rec.Body.String())
	}
}

func TestDispatchDeclarationOrder(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/items/{id}", Handler: textHandler("param")})
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/items/special", Handler: textHandler("literal")})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/items/special", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The parameterized entry was declared first, so it wins.
	if rec.Body.String() != "param" {
		t.Errorf("Expected first declared entry to match, got %q", rec.Body.String())
	}
}

func TestRoutesPreserveOrder(t *testing.T) {
	sys := routes.New(testLogger())

	patterns := []string{"/", "/data-access3", "/html1", "/html2"}
	for _, p := range patterns {
		sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: p, Handler: textHandler("ok")})
	}

	declared := sys.Routes()
	if len(declared) != len(patterns) {
		t.Fatalf("Expected %d routes, got %d", len(patterns), len(declared))
	}
	for i, p := range patterns {
		if declared[i].Pattern != p {
			t.Errorf("Route %d: expected pattern %q, got %q", i, p, declared[i].Pattern)
		}
	}
}

func TestMethodMismatch(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/test", Handler: textHandler("ok")})

	handler := sys.Build()

	req := httptest.NewRequest("POST", "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for method mismatch, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestPathParams(t *testing.T) {
	sys := routes.New(testLogger())

	var got string
	sys.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/items/{id}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			got = r.PathValue("id")
			w.WriteHeader(http.StatusOK)
		},
	})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/items/42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got != "42" {
		t.Errorf("Expected path value %q, got %q", "42", got)
	}
}

func TestFallback(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/exists", Handler: textHandler("ok")})

	fallbackCalled := false
	sys.SetFallback(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalled = true
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("custom 404"))
	})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !fallbackCalled {
		t.Error("fallback handler was not called")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if rec.Body.String() != "custom 404" {
		t.Errorf("Expected body %q, got %q", "custom 404", rec.Body.String())
	}
}

func TestFallbackDefault(t *testing.T) {
	sys := routes.New(testLogger())

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/anything", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestRegisterGroup(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Routes: []pkgroutes.Route{
			{Method: "GET", Pattern: "/status", Name: "api_status", Handler: textHandler("status")},
		},
	})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/api/status", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	url, err := sys.Reverse("api_status")
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if url != "/api/status" {
		t.Errorf("Expected reverse %q, got %q", "/api/status", url)
	}
}

func TestReverse(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/", Name: "index", Handler: textHandler("ok")})
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/html1", Name: "html_page2", Handler: textHandler("ok")})
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/items/{id}", Name: "item_detail", Handler: textHandler("ok")})

	tests := []struct {
		name     string
		route    string
		args     []string
		expected string
	}{
		{"root", "index", nil, "/"},
		{"literal", "html_page2", nil, "/html1"},
		{"parameterized", "item_detail", []string{"42"}, "/items/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := sys.Reverse(tt.route, tt.args...)
			if err != nil {
				t.Fatalf("Reverse failed: %v", err)
			}
			if url != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, url)
			}
		})
	}
}

func TestReverseUnknownName(t *testing.T) {
	sys := routes.New(testLogger())

	_, err := sys.Reverse("missing")
	if !errors.Is(err, pkgroutes.ErrNameNotFound) {
		t.Errorf("Expected ErrNameNotFound, got %v", err)
	}
}

func TestReverseArgCount(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/items/{id}", Name: "item_detail", Handler: textHandler("ok")})

	if _, err := sys.Reverse("item_detail"); err == nil {
		t.Error("Expected error for missing args")
	}
	if _, err := sys.Reverse("item_detail", "1", "2"); err == nil {
		t.Error("Expected error for extra args")
	}
}

func TestDuplicateNameKeepsFirst(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/first", Name: "page", Handler: textHandler("ok")})
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/second", Name: "page", Handler: textHandler("ok")})

	url, err := sys.Reverse("page")
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if url != "/first" {
		t.Errorf("Expected first binding %q, got %q", "/first", url)
	}
}
