package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"example.com/candle-analytics/internal/candle"
)

func TestScan_InsufficientData(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		candles []candle.Candle
	}{
		{"empty", nil},
		{"one candle", []candle.Candle{makeCandle(100, 101, 99, 100.5)}},
		{"two candles", []candle.Candle{
			makeCandle(100, 101, 99, 100.5),
			makeCandle(100.5, 102, 100, 101),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Scan(tt.candles)
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Scan() error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestScan_SkipsOversizedWindows(t *testing.T) {
	engine := NewEngine()

	candles := []candle.Candle{
		makeCandle(10, 10.5, 9.8, 10.2),
		makeCandle(10, 11, 9, 9.5),
		makeCandle(9, 12, 8.5, 11.5),
	}

	res, err := engine.Scan(candles)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	for _, d := range res.Detections {
		if detectors[d.Code].window > len(candles) {
			t.Errorf("Detection %s needs %d candles but only %d were scanned",
				d.Code, detectors[d.Code].window, len(candles))
		}
	}
}

func TestScan_FlatCandles(t *testing.T) {
	engine := NewEngine()

	flat := []candle.Candle{
		makeCandle(100, 100, 100, 100),
		makeCandle(100, 100, 100, 100),
		makeCandle(100, 100, 100, 100),
	}

	res, err := engine.Scan(flat)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if res.Detections == nil {
		t.Fatal("Detections should be non-nil even when empty")
	}
	if len(res.Detections) != 0 {
		t.Errorf("Flat candles produced %d detections, want 0", len(res.Detections))
	}
	if len(res.Faults) != 0 {
		t.Errorf("Flat candles produced %d faults, want 0", len(res.Faults))
	}
}

func TestScan_OrderFollowsCatalog(t *testing.T) {
	engine := NewEngine()

	// Fires several single-candle shapes at once.
	candles := []candle.Candle{
		makeCandle(99, 100.5, 98.5, 100),
		makeCandle(100, 100.8, 99.5, 100.2),
		makeCandle(100, 101, 99, 100.05),
	}

	res, err := engine.Scan(candles)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(res.Detections) < 2 {
		t.Fatalf("Need at least two detections to check ordering, got %d", len(res.Detections))
	}

	index := make(map[Code]int, len(catalog))
	for i, def := range catalog {
		index[def.Code] = i
	}

	prev := -1
	for _, d := range res.Detections {
		if index[d.Code] <= prev {
			t.Errorf("Detection %s out of catalog order", d.Code)
		}
		prev = index[d.Code]
	}
}

func TestScan_FaultContinues(t *testing.T) {
	code := Code("CDLBOOM")
	detectors[code] = registration{window: 1, detect: func([]candle.Candle) int {
		panic("boom")
	}}
	orig := catalog
	catalog = append(append([]Definition{}, catalog...), Definition{Code: code, Name: "boom", Type: ClassNeutral})
	defer func() {
		catalog = orig
		delete(detectors, code)
	}()

	engine := NewEngine()
	candles := []candle.Candle{
		makeCandle(10, 10.5, 9.8, 10.2),
		makeCandle(10, 11, 9, 9.5),
		makeCandle(9, 12, 8.5, 11.5),
	}

	res, err := engine.Scan(candles)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(res.Faults) != 1 {
		t.Fatalf("Faults = %d, want 1", len(res.Faults))
	}
	if res.Faults[0].Code != code {
		t.Errorf("Fault code = %s, want %s", res.Faults[0].Code, code)
	}

	// The remaining detectors still ran.
	found := false
	for _, d := range res.Detections {
		if d.Code == CDLEngulfing {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected engulfing detection despite the faulting detector")
	}
}

func TestRunDetector_PanicRecovery(t *testing.T) {
	strength, err := runDetector(CDLDoji, func([]candle.Candle) int {
		panic("boom")
	}, []candle.Candle{makeCandle(1, 2, 0.5, 1.5)})

	if err == nil {
		t.Fatal("Expected error from panicking detector")
	}
	if !strings.Contains(err.Error(), "panicked") {
		t.Errorf("error = %v, want panic to be reported", err)
	}
	if strength != 0 {
		t.Errorf("strength = %d, want 0", strength)
	}
}

func TestCatalogRegistryConsistency(t *testing.T) {
	defs := Catalog()
	if len(defs) != 61 {
		t.Fatalf("Catalog() returned %d definitions, want 61", len(defs))
	}
	if len(detectors) != len(defs) {
		t.Fatalf("detectors has %d entries, catalog has %d", len(detectors), len(defs))
	}

	seen := make(map[Code]bool, len(defs))
	for _, def := range defs {
		if seen[def.Code] {
			t.Errorf("Duplicate catalog code %s", def.Code)
		}
		seen[def.Code] = true

		reg, ok := detectors[def.Code]
		if !ok {
			t.Errorf("Catalog code %s has no detector", def.Code)
			continue
		}
		if reg.window < 1 || reg.window > 5 {
			t.Errorf("Detector %s has window %d, want 1..5", def.Code, reg.window)
		}
		if reg.detect == nil {
			t.Errorf("Detector %s has no function", def.Code)
		}
		if def.Name == "" {
			t.Errorf("Catalog code %s has no display name", def.Code)
		}
	}

	for code := range detectors {
		if !seen[code] {
			t.Errorf("Detector %s is not in the catalog", code)
		}
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(CDLEngulfing)
	if !ok {
		t.Fatal("Lookup(CDLEngulfing) not found")
	}
	if def.Type != ClassReversal {
		t.Errorf("engulfing Type = %s, want reversal", def.Type)
	}

	if _, ok := Lookup(Code("CDLNOPE")); ok {
		t.Error("Lookup of unknown code should not succeed")
	}
}

func buildCandles(prices []float64) []candle.Candle {
	var cs []candle.Candle
	for i := 0; i+3 < len(prices); i += 4 {
		open := prices[i]
		high := prices[i+1]
		low := prices[i+2]
		close := prices[i+3]

		// Fix invalid OHLC
		if high < open || high < close || low > open || low > close {
			high = max(max(open, close), high)
			low = min(min(open, close), low)
		}

		cs = append(cs, candle.Candle{Open: open, High: high, Low: low, Close: close})
	}
	return cs
}

// Property test: scan determinism
func TestProperty_ScanDeterminism(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Scan returns same results for same input", prop.ForAll(
		func(prices []float64) bool {
			cs := buildCandles(prices)
			if len(cs) < MinCandles {
				return true
			}

			engine := NewEngine()
			result1, err1 := engine.Scan(cs)
			result2, err2 := engine.Scan(cs)
			result3, err3 := engine.Scan(cs)

			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			if len(result1.Detections) != len(result2.Detections) ||
				len(result1.Detections) != len(result3.Detections) {
				return false
			}

			for i := range result1.Detections {
				if result1.Detections[i] != result2.Detections[i] ||
					result1.Detections[i] != result3.Detections[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Float64Range(0.01, 1000)),
	))

	properties.TestingRun(t)
}

// Property test: every detection is well formed
func TestProperty_DetectionShape(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Detections carry catalog data and full confidence", prop.ForAll(
		func(prices []float64) bool {
			cs := buildCandles(prices)
			if len(cs) < MinCandles {
				return true
			}

			engine := NewEngine()
			res, err := engine.Scan(cs)
			if err != nil {
				return false
			}
			if len(res.Faults) != 0 {
				return false
			}
			if res.Total() != len(res.Detections) {
				return false
			}

			for _, d := range res.Detections {
				if d.Confidence != 100 {
					return false
				}
				if d.Signal != SignalBullish && d.Signal != SignalBearish {
					return false
				}
				def, ok := Lookup(d.Code)
				if !ok || def.Name != d.Name || def.Type != d.Type {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Float64Range(0.01, 1000)),
	))

	properties.TestingRun(t)
}
