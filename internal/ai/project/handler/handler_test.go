package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/service"
)

func newRouterForTest() http.Handler {
	r := chi.NewRouter()
	NewProjectEstimateHandler(service.NewEstimator()).RegisterRoutes(r)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGenerateMatchesGolden(t *testing.T) {
	h := newRouterForTest()
	rr := post(t, h, "/v1/generate", `{"title":"Smart Insulin Pump","summary":"FDA medical device with HIPAA data, novel sensor, bluetooth"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}

	want, err := os.ReadFile(filepath.Join("..", "service", "testdata", "insulin_pump.json"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if !bytes.Equal(rr.Body.Bytes(), want) {
		t.Fatalf("body mismatch\n got: %s\nwant: %s", rr.Body.Bytes(), want)
	}
}

func TestGenerateWithoutSummary(t *testing.T) {
	h := newRouterForTest()
	rr := post(t, h, "/v1/generate", `{"title":"X"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var resp models.GenerateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Plan.Domains) != 1 || resp.Plan.Domains[0] != models.DomainSoftware {
		t.Fatalf("domains = %v", resp.Plan.Domains)
	}
	if resp.SuccessScore != 72.0 || resp.Budget.Total != 130000 || resp.Roadmap.DurationMonths != 4 {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
}

func TestGenerateValidation(t *testing.T) {
	h := newRouterForTest()

	tests := []struct {
		name string
		body string
		typ  string
	}{
		{"missing title", `{"summary":"x"}`, "missing"},
		{"wrong type", `{"title":1}`, "string_type"},
		{"bad json", `{`, "json_invalid"},
		{"empty body", ``, "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, h, "/v1/generate", tt.body)
			if rr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
			}
			var resp models.ValidationErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(resp.Detail) == 0 || resp.Detail[0].Type != tt.typ {
				t.Fatalf("detail = %+v, want type %s", resp.Detail, tt.typ)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	h := newRouterForTest()
	rr := post(t, h, "/v1/explain", `{"title":"Todo App","summary":"simple web app"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	want := `{"successScore":72.0,"explain":{"inputs":{"domains":["software"],"complexity":1.0,"riskPenalty":0.0},"components":[{"label":"Base","delta":72.0}],"final":72.0}}`
	if rr.Body.String() != want {
		t.Fatalf("body = %s\nwant  %s", rr.Body.String(), want)
	}

	if rr := post(t, h, "/v1/explain", `{}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d, want 422", rr.Code)
	}
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	h := newRouterForTest()
	req := httptest.NewRequest(http.MethodGet, "/v1/generate", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want 405", rr.Code)
	}
}
