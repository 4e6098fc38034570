package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/config"
	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "pricebook.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	h := NewHandler(st, config.DefaultRates())
	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r, st
}

func seedBook(t *testing.T, st *store.Store) {
	t.Helper()

	region := "EMEA"
	country := "France"
	currency := "EUR"
	rec := &model.PriceRecord{RowNo: 4, Region: &region, Country: &country, Currency: &currency}
	longTerm := 2000.0
	rec.SetField("long_term_l1_monthly", &longTerm)
	yearly := 1000.0
	rec.SetField("l1_with_backfill_yearly", &yearly)

	result := &model.ExtractionResult{
		Records:     []*model.PriceRecord{rec},
		Terms:       []string{"Standard payment terms apply"},
		Tier1Cities: []string{"Paris"},
		Regions:     []string{"EMEA"},
	}
	if err := st.ReplacePriceBook(result, "book.xlsx"); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteEndpoint_AllSurcharges(t *testing.T) {
	r, st := newTestRouter(t)
	seedBook(t, st)

	w := postJSON(t, r, "/api/quote", map[string]any{
		"country":        "France",
		"category":       "Long Term Project",
		"fieldKey":       "long_term_l1_monthly",
		"distanceKm":     80,
		"outOfHours":     true,
		"weekendHoliday": true,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Price    string `json:"price"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Price != "6312.00" || resp.Currency != "EUR" {
		t.Fatalf("unexpected quote: %+v", resp)
	}
}

func TestQuoteEndpoint_PlainYearlyRate(t *testing.T) {
	r, st := newTestRouter(t)
	seedBook(t, st)

	w := postJSON(t, r, "/api/quote", map[string]any{
		"country":  "France",
		"category": "Yearly Rates",
		"fieldKey": "l1_with_backfill_yearly",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Price string `json:"price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Price != "1000.00" {
		t.Fatalf("price=%q, want 1000.00", resp.Price)
	}
}

func TestQuoteEndpoint_UnknownCountryIs400(t *testing.T) {
	r, st := newTestRouter(t)
	seedBook(t, st)

	w := postJSON(t, r, "/api/quote", map[string]any{
		"country":  "Atlantis",
		"category": "Yearly Rates",
		"fieldKey": "l1_with_backfill_yearly",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "Select all required fields." {
		t.Fatalf("error=%q", resp.Error)
	}
}

func TestQuoteEndpoint_MissingFieldKeyIs400(t *testing.T) {
	r, st := newTestRouter(t)
	seedBook(t, st)

	w := postJSON(t, r, "/api/quote", map[string]any{
		"country":  "France",
		"category": "Yearly Rates",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}
