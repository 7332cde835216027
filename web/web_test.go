package web_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgweb "github.com/urlmap-dev/urlmap/pkg/web"
	"github.com/urlmap-dev/urlmap/web"
)

func TestNewTemplateSet(t *testing.T) {
	ts, err := web.NewTemplateSet("/base")
	if err != nil {
		t.Fatalf("template set failed: %v", err)
	}
	if ts.BasePath() != "/base" {
		t.Errorf("Expected base path /base, got %q", ts.BasePath())
	}
}

func TestEmbeddedPagesRender(t *testing.T) {
	ts, err := web.NewTemplateSet("")
	if err != nil {
		t.Fatalf("template set failed: %v", err)
	}

	pages := []pkgweb.PageDef{web.Home, web.HTML1, web.HTML2, web.NotFound}
	for _, page := range pages {
		t.Run(page.Template, func(t *testing.T) {
			rec := httptest.NewRecorder()
			data := pkgweb.PageData{Title: page.Title}
			if err := ts.Render(rec, web.Layout, page.Template, data); err != nil {
				t.Fatalf("render %s failed: %v", page.Template, err)
			}
			if !strings.Contains(rec.Body.String(), "<title>"+page.Title+"</title>") {
				t.Errorf("Expected title %q in output:\n%s", page.Title, rec.Body.String())
			}
		})
	}
}
