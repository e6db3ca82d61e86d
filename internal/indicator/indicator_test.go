package indicator

import (
	"errors"
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func firstValid(s Series) int {
	for i, v := range s {
		if v != nil {
			return i
		}
	}
	return -1
}

func TestEMA(t *testing.T) {
	got := EMA([]float64{1, 2, 3, 4, 5}, 3)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0] != nil || got[1] != nil {
		t.Error("Warm-up entries should be nil")
	}

	// Seed is the simple average, then each step blends with multiplier 0.5.
	want := []float64{2, 3, 4}
	for i, w := range want {
		v := got[i+2]
		if v == nil {
			t.Fatalf("EMA[%d] = nil, want %v", i+2, w)
		}
		if !almost(*v, w) {
			t.Errorf("EMA[%d] = %v, want %v", i+2, *v, w)
		}
	}
}

func TestEMA_ShortInput(t *testing.T) {
	got := EMA([]float64{1, 2}, 3)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if firstValid(got) != -1 {
		t.Error("Input shorter than the period should yield an all-nil series")
	}

	if firstValid(EMA([]float64{1, 2, 3}, 0)) != -1 {
		t.Error("Non-positive period should yield an all-nil series")
	}
}

func TestRSI(t *testing.T) {
	rising := make([]float64, 20)
	for i := range rising {
		rising[i] = float64(i + 1)
	}
	got := RSI(rising, 14)

	if firstValid(got) != 14 {
		t.Errorf("first valid index = %d, want 14", firstValid(got))
	}
	for i := 14; i < len(got); i++ {
		if !almost(*got[i], 100) {
			t.Errorf("RSI[%d] = %v, want 100 on a pure advance", i, *got[i])
		}
	}

	falling := make([]float64, 20)
	for i := range falling {
		falling[i] = float64(20 - i)
	}
	got = RSI(falling, 14)
	for i := 14; i < len(got); i++ {
		if !almost(*got[i], 0) {
			t.Errorf("RSI[%d] = %v, want 0 on a pure decline", i, *got[i])
		}
	}

	// No losses at all saturates at exactly 100.
	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 50
	}
	got = RSI(flat, 14)
	for i := 14; i < len(got); i++ {
		if !almost(*got[i], 100) {
			t.Errorf("RSI[%d] = %v, want 100 on a flat series", i, *got[i])
		}
	}
}

func TestRSI_Balanced(t *testing.T) {
	// Alternating +1/-1 deltas average out, pinning the seed at 50.
	values := make([]float64, 15)
	for i := range values {
		values[i] = 100 + float64(i%2)
	}
	got := RSI(values, 14)
	if got[14] == nil {
		t.Fatal("RSI[14] = nil, want 50")
	}
	if !almost(*got[14], 50) {
		t.Errorf("RSI[14] = %v, want 50", *got[14])
	}
}

func TestRSI_ShortInput(t *testing.T) {
	values := make([]float64, 14)
	for i := range values {
		values[i] = float64(i)
	}
	// Needs period+1 values for the first delta window.
	if firstValid(RSI(values, 14)) != -1 {
		t.Error("14 values cannot produce a 14-period RSI")
	}
}

func TestMACD(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 100 + float64(i)
	}

	got := MACD(values, 12, 26, 9)

	if len(got.MACD) != 40 || len(got.Signal) != 40 || len(got.Histogram) != 40 {
		t.Fatal("All three series must span the input")
	}
	if fv := firstValid(got.MACD); fv != 25 {
		t.Errorf("macd first valid index = %d, want 25", fv)
	}
	if fv := firstValid(got.Signal); fv != 33 {
		t.Errorf("signal first valid index = %d, want 33", fv)
	}
	if fv := firstValid(got.Histogram); fv != 33 {
		t.Errorf("histogram first valid index = %d, want 33", fv)
	}

	for i := 33; i < 40; i++ {
		want := *got.MACD[i] - *got.Signal[i]
		if !almost(*got.Histogram[i], want) {
			t.Errorf("Histogram[%d] = %v, want %v", i, *got.Histogram[i], want)
		}
	}

	// A steady advance keeps the fast average above the slow one.
	for i := 25; i < 40; i++ {
		if *got.MACD[i] <= 0 {
			t.Errorf("MACD[%d] = %v, want > 0 on a rising series", i, *got.MACD[i])
		}
	}
}

func TestMACD_ShortInput(t *testing.T) {
	got := MACD([]float64{1, 2, 3, 4, 5}, 12, 26, 9)
	if firstValid(got.MACD) != -1 || firstValid(got.Signal) != -1 || firstValid(got.Histogram) != -1 {
		t.Error("Input shorter than the slow period should yield all-nil series")
	}
}

func TestCompute(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}

	res, err := Compute(closes, []string{"RSI", "MACD", "EMA"})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if res.RSI == nil || res.MACD == nil || res.EMA7 == nil || res.EMA25 == nil {
		t.Error("Requesting all three names should compute every indicator")
	}
	if res.RSI[13] != nil {
		t.Error("RSI[13] should still be warming up")
	}
	if res.RSI[14] == nil {
		t.Error("RSI[14] should be defined")
	}
	if fv := firstValid(res.EMA7); fv != 6 {
		t.Errorf("EMA7 first valid index = %d, want 6", fv)
	}
	if fv := firstValid(res.EMA25); fv != 24 {
		t.Errorf("EMA25 first valid index = %d, want 24", fv)
	}
}

func TestCompute_EmptySelection(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%5)
	}

	for _, names := range [][]string{nil, {}} {
		res, err := Compute(closes, names)
		if err != nil {
			t.Fatalf("Compute(%v) error = %v", names, err)
		}
		if res.RSI != nil || res.MACD != nil || res.EMA7 != nil || res.EMA25 != nil {
			t.Errorf("Compute(%v) populated series, want none without an explicit selection", names)
		}
	}
}

func TestCompute_Selection(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	res, err := Compute(closes, []string{"RSI"})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if res.RSI == nil {
		t.Error("RSI was requested but not computed")
	}
	if res.MACD != nil || res.EMA7 != nil || res.EMA25 != nil {
		t.Error("Unrequested indicators should stay empty")
	}

	// Unknown names are ignored rather than rejected.
	res, err = Compute(closes, []string{"BOGUS"})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if res.RSI != nil || res.MACD != nil {
		t.Error("Unknown name should compute nothing")
	}
}

func TestCompute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
	}{
		{"empty", nil},
		{"nan", []float64{100, math.NaN(), 101}},
		{"inf", []float64{100, math.Inf(1), 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.closes, nil)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Compute() error = %v, want ErrValidation", err)
			}
		})
	}
}
