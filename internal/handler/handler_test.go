package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newRouterForTest() http.Handler {
	r := chi.NewRouter()
	NewHandler().RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := do(t, newRouterForTest(), http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if got := rr.Body.String(); got != `{"ok":true,"service":"ai"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestPlanStaticFixture(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "plan_lamp.json"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	rr := do(t, newRouterForTest(), http.MethodPost, "/plan", `{"title":"Lamp & <Light>","summary":"ignored"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Equal(rr.Body.Bytes(), want) {
		t.Fatalf("body mismatch\n got: %s\nwant: %s", rr.Body.Bytes(), want)
	}
}

func TestPlanIgnoresSummary(t *testing.T) {
	h := newRouterForTest()
	a := do(t, h, http.MethodPost, "/plan", `{"title":"Same","summary":"FDA medical robot"}`)
	b := do(t, h, http.MethodPost, "/plan", `{"title":"Same"}`)
	if a.Body.String() != b.Body.String() {
		t.Fatalf("summary changed the fixture:\n%s\n%s", a.Body.String(), b.Body.String())
	}
}

func TestPlanUntitled(t *testing.T) {
	h := newRouterForTest()
	for _, body := range []string{`{}`, `{"title":""}`, `{"title":null}`} {
		rr := do(t, h, http.MethodPost, "/plan", body)
		if rr.Code != http.StatusOK {
			t.Fatalf("body %s: status=%d", body, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"Concept Sketches • Untitled"`) {
			t.Fatalf("body %s: %s", body, rr.Body.String())
		}
	}
}

func TestPlanValidation(t *testing.T) {
	h := newRouterForTest()
	for _, body := range []string{``, `{"title":1}`, `[]`} {
		rr := do(t, h, http.MethodPost, "/plan", body)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %q: status=%d, want 422", body, rr.Code)
		}
		if !strings.HasPrefix(rr.Body.String(), `{"detail":[`) {
			t.Fatalf("body %q: %s", body, rr.Body.String())
		}
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusOK, map[string]any{"bad": func() {}})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", rr.Code)
	}
}
