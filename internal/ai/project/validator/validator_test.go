package validator

import (
	"testing"
)

func TestValidateGenerateRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTitle string
		summary   *string
		errType   string
		errLoc    []string
	}{
		{name: "title and summary", body: `{"title":"Todo App","summary":"simple web app"}`, wantTitle: "Todo App", summary: strPtr("simple web app")},
		{name: "title only", body: `{"title":"X"}`, wantTitle: "X"},
		{name: "null summary", body: `{"title":"X","summary":null}`, wantTitle: "X"},
		{name: "empty title is valid", body: `{"title":""}`, wantTitle: ""},
		{name: "unknown fields ignored", body: `{"title":"X","extra":1}`, wantTitle: "X"},
		{name: "missing title", body: `{"summary":"s"}`, errType: ErrTypeMissing, errLoc: []string{"body", "title"}},
		{name: "null title", body: `{"title":null}`, errType: ErrTypeString, errLoc: []string{"body", "title"}},
		{name: "numeric title", body: `{"title":5}`, errType: ErrTypeString, errLoc: []string{"body", "title"}},
		{name: "numeric summary", body: `{"title":"X","summary":5}`, errType: ErrTypeString, errLoc: []string{"body", "summary"}},
		{name: "empty body", body: ``, errType: ErrTypeMissing, errLoc: []string{"body"}},
		{name: "invalid json", body: `{"title":`, errType: ErrTypeJSON, errLoc: []string{"body"}},
		{name: "array body", body: `["title"]`, errType: ErrTypeObject, errLoc: []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := ValidateGenerateRequest([]byte(tt.body))
			if tt.errType != "" {
				if len(errs) != 1 {
					t.Fatalf("errors = %+v, want one %s", errs, tt.errType)
				}
				if errs[0].Type != tt.errType {
					t.Fatalf("type = %s, want %s", errs[0].Type, tt.errType)
				}
				if len(errs[0].Loc) != len(tt.errLoc) {
					t.Fatalf("loc = %v, want %v", errs[0].Loc, tt.errLoc)
				}
				for i := range tt.errLoc {
					if errs[0].Loc[i] != tt.errLoc[i] {
						t.Fatalf("loc = %v, want %v", errs[0].Loc, tt.errLoc)
					}
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %+v", errs)
			}
			if req.Title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", req.Title, tt.wantTitle)
			}
			switch {
			case tt.summary == nil && req.Summary != nil:
				t.Fatalf("summary = %q, want nil", *req.Summary)
			case tt.summary != nil && (req.Summary == nil || *req.Summary != *tt.summary):
				t.Fatalf("summary = %v, want %q", req.Summary, *tt.summary)
			}
		})
	}
}

func TestValidateGenerateRequestCollectsAllErrors(t *testing.T) {
	_, errs := ValidateGenerateRequest([]byte(`{"summary":7}`))
	if len(errs) != 2 {
		t.Fatalf("errors = %+v, want 2", errs)
	}
	if errs[0].Loc[1] != "title" || errs[1].Loc[1] != "summary" {
		t.Fatalf("unexpected order: %+v", errs)
	}
}

func TestValidatePlanRequest(t *testing.T) {
	req, errs := ValidatePlanRequest([]byte(`{}`))
	if len(errs) != 0 || req.Title != "" {
		t.Fatalf("req = %+v errs = %+v", req, errs)
	}

	req, errs = ValidatePlanRequest([]byte(`{"title":null,"summary":"x"}`))
	if len(errs) != 0 || req.Title != "" {
		t.Fatalf("req = %+v errs = %+v", req, errs)
	}

	req, errs = ValidatePlanRequest([]byte(`{"title":"Lamp"}`))
	if len(errs) != 0 || req.Title != "Lamp" {
		t.Fatalf("req = %+v errs = %+v", req, errs)
	}

	if _, errs = ValidatePlanRequest([]byte(`{"title":true}`)); len(errs) != 1 {
		t.Fatalf("errs = %+v, want 1", errs)
	}
}

func strPtr(s string) *string { return &s }
