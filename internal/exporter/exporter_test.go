package exporter

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
	"github.com/Vithu2008-CS/price-book-calculator/internal/parser"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "pricebook.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func seedRecord(rowNo int, region, country, currency string, prices map[string]float64) *model.PriceRecord {
	rec := &model.PriceRecord{RowNo: rowNo, Region: &region, Country: &country, Currency: &currency}
	for key, v := range prices {
		val := v
		rec.SetField(key, &val)
	}
	return rec
}

// 导出的工作簿必须能被解析器原样读回
func TestExport_RoundTripsThroughParser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	seeded := []*model.PriceRecord{
		seedRecord(4, "EMEA", "France", "EUR", map[string]float64{
			"l1_with_backfill_yearly": 1000,
			"dispatch_nbd":            120.5,
			"long_term_l5_monthly":    9999.99,
		}),
		seedRecord(5, "APAC", "Japan", "JPY", map[string]float64{
			"half_day_l2_daily": 45000,
		}),
	}
	result := &model.ExtractionResult{
		Records:     seeded,
		Terms:       []string{"Standard payment terms apply", "Tier 1 Cities"},
		Tier1Cities: []string{"Paris", "Tokyo"},
		Regions:     []string{"APAC", "EMEA"},
	}
	if err := st.ReplacePriceBook(result, "book.xlsx"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f, err := NewExporter(st).Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read exported sheet: %v", err)
	}

	parsed := parser.NewPriceBookParser().Extract(rows)

	if !reflect.DeepEqual(parsed.Terms, result.Terms) {
		t.Fatalf("terms=%v, want %v", parsed.Terms, result.Terms)
	}
	if !reflect.DeepEqual(parsed.Tier1Cities, result.Tier1Cities) {
		t.Fatalf("cities=%v, want %v", parsed.Tier1Cities, result.Tier1Cities)
	}
	if !reflect.DeepEqual(parsed.Regions, result.Regions) {
		t.Fatalf("regions=%v, want %v", parsed.Regions, result.Regions)
	}

	if len(parsed.Records) != len(seeded) {
		t.Fatalf("got %d records, want %d", len(parsed.Records), len(seeded))
	}
	for i, want := range seeded {
		got := parsed.Records[i]
		if got.RegionValue() != want.RegionValue() || got.CountryValue() != want.CountryValue() {
			t.Fatalf("record %d: %q/%q, want %q/%q",
				i, got.RegionValue(), got.CountryValue(), want.RegionValue(), want.CountryValue())
		}
		if got.CurrencyValue() != want.CurrencyValue() {
			t.Fatalf("record %d currency=%q, want %q", i, got.CurrencyValue(), want.CurrencyValue())
		}
		if got.RowNo != want.RowNo {
			t.Fatalf("record %d rowNo=%d, want %d", i, got.RowNo, want.RowNo)
		}
		for _, key := range model.PriceColumns {
			gv, _ := got.Field(key)
			wv, _ := want.Field(key)
			if (gv == nil) != (wv == nil) {
				t.Fatalf("record %d field %s: nil mismatch", i, key)
			}
			if gv != nil && *gv != *wv {
				t.Fatalf("record %d field %s: %v, want %v", i, key, *gv, *wv)
			}
		}
	}
}

// 城市标记行夹在条款中间时，导出后它在条款里的位置不能漂移
func TestExport_CityMarkerKeepsPositionAmongTerms(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	result := &model.ExtractionResult{
		Records: []*model.PriceRecord{
			seedRecord(4, "EMEA", "France", "EUR", map[string]float64{"l1_with_backfill_yearly": 1000}),
		},
		Terms:       []string{"Standard payment terms apply", "Tier 1 Cities", "Prices exclude VAT"},
		Tier1Cities: []string{"Paris", "Lyon"},
		Regions:     []string{"EMEA"},
	}
	if err := st.ReplacePriceBook(result, "book.xlsx"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f, err := NewExporter(st).Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read exported sheet: %v", err)
	}

	parsed := parser.NewPriceBookParser().Extract(rows)
	if !reflect.DeepEqual(parsed.Terms, result.Terms) {
		t.Fatalf("terms=%v, want %v", parsed.Terms, result.Terms)
	}
	if !reflect.DeepEqual(parsed.Tier1Cities, result.Tier1Cities) {
		t.Fatalf("cities=%v, want %v", parsed.Tier1Cities, result.Tier1Cities)
	}
}

func TestExport_EmptyBookHasOnlyHeader(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	f, err := NewExporter(st).Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 header rows", len(rows))
	}

	parsed := parser.NewPriceBookParser().Extract(rows)
	if len(parsed.Records) != 0 || len(parsed.Terms) != 0 || len(parsed.Tier1Cities) != 0 {
		t.Fatalf("parsed non-empty result from empty export: %+v", parsed)
	}
}
