package calculator

import (
	"errors"
	"testing"

	"github.com/Vithu2008-CS/price-book-calculator/internal/config"
	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
)

func testRecord(key string, value float64, currency string) *model.PriceRecord {
	rec := &model.PriceRecord{}
	if currency != "" {
		rec.Currency = &currency
	}
	rec.SetField(key, &value)
	return rec
}

func TestQuote_BasePriceNoSurcharges(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("l1_with_backfill_yearly", 1000, "USD")

	result, err := calc.Quote(rec, QuoteInput{
		FieldKey: "l1_with_backfill_yearly",
		Category: "Yearly Rates",
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "1000.00" {
		t.Fatalf("price=%q, want 1000.00", result.Price)
	}
	if result.Currency != "USD" {
		t.Fatalf("currency=%q, want USD", result.Currency)
	}
}

func TestQuote_AllSurchargesCompound(t *testing.T) {
	t.Parallel()

	// 2000 * 1.05 * 1.5 * 2 = 6300，再加 (80-50)*0.4 = 12
	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("long_term_l1_monthly", 2000, "GBP")

	result, err := calc.Quote(rec, QuoteInput{
		FieldKey:       "long_term_l1_monthly",
		Category:       "Long Term Project",
		DistanceKm:     80,
		OutOfHours:     true,
		WeekendHoliday: true,
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "6312.00" {
		t.Fatalf("price=%q, want 6312.00", result.Price)
	}
}

func TestQuote_OutOfHoursAloneIsExactly1_5x(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("full_day_l1_daily", 200, "USD")

	base, err := calc.Quote(rec, QuoteInput{FieldKey: "full_day_l1_daily", Category: "Visit Rates"})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	ooh, err := calc.Quote(rec, QuoteInput{FieldKey: "full_day_l1_daily", Category: "Visit Rates", OutOfHours: true})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if base.Price != "200.00" || ooh.Price != "300.00" {
		t.Fatalf("base=%q ooh=%q", base.Price, ooh.Price)
	}
}

func TestQuote_BothFlagsAre3x(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("dispatch_nbd", 100, "USD")

	result, err := calc.Quote(rec, QuoteInput{
		FieldKey:       "dispatch_nbd",
		Category:       "Dispatch Rates",
		OutOfHours:     true,
		WeekendHoliday: true,
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "300.00" {
		t.Fatalf("price=%q, want 300.00", result.Price)
	}
}

func TestQuote_ProjectMarkupBySubstring(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("short_term_l3_monthly", 1000, "USD")

	// 类别名包含 "Project" 即触发项目加成
	result, err := calc.Quote(rec, QuoteInput{
		FieldKey: "short_term_l3_monthly",
		Category: "Short Term Project",
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "1050.00" {
		t.Fatalf("price=%q, want 1050.00", result.Price)
	}
}

func TestQuote_DistanceBoundary(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("imac_2bd", 100, "USD")

	// 50 公里以内（含 50）免费
	at50, err := calc.Quote(rec, QuoteInput{FieldKey: "imac_2bd", Category: "IMAC Pricing", DistanceKm: 50})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if at50.Price != "100.00" {
		t.Fatalf("price at 50km=%q, want 100.00", at50.Price)
	}

	// 超出部分按 0.4/km 线性加价
	at51, err := calc.Quote(rec, QuoteInput{FieldKey: "imac_2bd", Category: "IMAC Pricing", DistanceKm: 51})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if at51.Price != "100.40" {
		t.Fatalf("price at 51km=%q, want 100.40", at51.Price)
	}
}

func TestQuote_MissingFieldValueIsZero(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := &model.PriceRecord{} // 全部价格字段缺失

	result, err := calc.Quote(rec, QuoteInput{
		FieldKey: "l5_without_backfill_yearly",
		Category: "Yearly Rates",
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "0.00" {
		t.Fatalf("price=%q, want 0.00", result.Price)
	}
}

func TestQuote_MissingFieldStillGetsDistanceSurcharge(t *testing.T) {
	t.Parallel()

	// 基础价为 0 不报错，路费照常叠加
	calc := NewCalculator(config.DefaultRates())
	rec := &model.PriceRecord{}

	result, err := calc.Quote(rec, QuoteInput{
		FieldKey:   "l5_without_backfill_yearly",
		Category:   "Yearly Rates",
		DistanceKm: 80,
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Price != "12.00" {
		t.Fatalf("price=%q, want 12.00", result.Price)
	}
}

func TestQuote_MissingCurrencyIsEmpty(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("imac_3bd", 100, "")

	result, err := calc.Quote(rec, QuoteInput{FieldKey: "imac_3bd", Category: "IMAC Pricing"})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Currency != "" {
		t.Fatalf("currency=%q, want empty", result.Currency)
	}
}

func TestQuote_NilRecordIsValidationError(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())

	_, err := calc.Quote(nil, QuoteInput{FieldKey: "imac_2bd", Category: "IMAC Pricing"})
	if !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("err=%v, want ErrIncompleteSelection", err)
	}
}

func TestQuote_EmptyFieldKeyIsValidationError(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("imac_2bd", 100, "USD")

	_, err := calc.Quote(rec, QuoteInput{FieldKey: "  ", Category: "IMAC Pricing"})
	if !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("err=%v, want ErrIncompleteSelection", err)
	}
}

func TestQuote_TrailingZeroKept(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(config.DefaultRates())
	rec := testRecord("half_day_l2_daily", 123.4, "USD")

	result, err := calc.Quote(rec, QuoteInput{FieldKey: "half_day_l2_daily", Category: "Visit Rates"})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	// 必须渲染成 123.40 而不是 123.4
	if result.Price != "123.40" {
		t.Fatalf("price=%q, want 123.40", result.Price)
	}
}
