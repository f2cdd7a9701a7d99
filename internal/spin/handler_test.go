package spin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupSpinRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.POST("/spin", h.Spin)
	r.POST("/merge", h.Merge)
	r.GET("/spins/recent", h.Recent)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSpinEndpoint(t *testing.T) {
	r := setupSpinRouter(newTestService(nil))

	w := postJSON(t, r, "/spin", Request{
		Categories: []string{"meat", "veg"},
		Seed:       "http-test",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var res Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(res.Result) != 2 {
		t.Fatalf("want 2 picks, got %v", res.Result)
	}
	if res.Debug.Seed != "http-test" {
		t.Fatalf("response must echo the seed, got %q", res.Debug.Seed)
	}
}

func TestSpinEndpointValidation(t *testing.T) {
	r := setupSpinRouter(newTestService(nil))

	w := postJSON(t, r, "/spin", Request{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestSpinEndpointNoCandidates(t *testing.T) {
	r := setupSpinRouter(newTestService(nil))

	w := postJSON(t, r, "/spin", Request{Categories: []string{"dessert"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Code != "NO_CANDIDATES" {
		t.Fatalf("want NO_CANDIDATES, got %q", body.Code)
	}
}

func TestMergeEndpoint(t *testing.T) {
	r := setupSpinRouter(newTestService(nil))

	w := postJSON(t, r, "/merge", map[string]any{
		"constraintsList": []Constraints{
			{Allergens: []string{"peanut"}, BudgetMax: intPtr(900)},
			{Allergens: []string{"dairy"}, BudgetMax: intPtr(500)},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var merged Constraints
	if err := json.Unmarshal(w.Body.Bytes(), &merged); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(merged.Allergens) != 2 {
		t.Fatalf("allergens should union, got %v", merged.Allergens)
	}
	if merged.BudgetMax == nil || *merged.BudgetMax != 500 {
		t.Fatalf("budget should take the minimum, got %v", merged.BudgetMax)
	}
}

func TestRecentEndpoint(t *testing.T) {
	hist := &mockHistory{}
	svc := newTestService(hist)
	r := setupSpinRouter(svc)

	if _, err := svc.Spin(context.Background(), Request{Categories: []string{"veg"}}); err != nil {
		t.Fatalf("spin failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/spins/recent?limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	var body struct {
		Spins []json.RawMessage `json:"spins"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(body.Spins) != 1 {
		t.Fatalf("want 1 record, got %d", len(body.Spins))
	}
}
