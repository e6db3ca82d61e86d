// Package candle provides the OHLC candle model and input validation for the
// pattern and indicator engines.
package candle

import (
	"errors"
	"fmt"
	"math"
)

// ErrValidation is the sentinel wrapped by every malformed-input error so
// callers can classify with errors.Is.
var ErrValidation = errors.New("invalid candle input")

// Candle represents a single OHLC candlestick.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Bar is the wire form of a candle as it arrives in API requests.
type Bar struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Body returns the absolute size of the candle body (|Close - Open|).
func (c *Candle) Body() float64 {
	return math.Abs(c.Close - c.Open)
}

// UpperShadow returns the length of the upper shadow.
func (c *Candle) UpperShadow() float64 {
	if c.Close > c.Open {
		return c.High - c.Close
	}
	return c.High - c.Open
}

// LowerShadow returns the length of the lower shadow.
func (c *Candle) LowerShadow() float64 {
	if c.Close > c.Open {
		return c.Open - c.Low
	}
	return c.Close - c.Low
}

// IsBullish returns true if the candle is bullish (Close > Open).
func (c *Candle) IsBullish() bool {
	return c.Close > c.Open
}

// IsBearish returns true if the candle is bearish (Close < Open).
func (c *Candle) IsBearish() bool {
	return c.Close < c.Open
}

// Range returns the total range of the candle (High - Low).
func (c *Candle) Range() float64 {
	return c.High - c.Low
}

// BodyHigh returns the upper edge of the body.
func (c *Candle) BodyHigh() float64 {
	if c.Open > c.Close {
		return c.Open
	}
	return c.Close
}

// BodyLow returns the lower edge of the body.
func (c *Candle) BodyLow() float64 {
	if c.Open < c.Close {
		return c.Open
	}
	return c.Close
}

// Midpoint returns the middle of the body.
func (c *Candle) Midpoint() float64 {
	return (c.Open + c.Close) / 2
}

// FromValues builds candles from parallel OHLC arrays. All four arrays must
// have the same non-zero length and contain only finite values. Bars whose
// High/Low are inconsistent with the body are accepted as-is; derived measures
// may come out negative and detectors treat them as non-matching.
func FromValues(opens, highs, lows, closes []float64) ([]Candle, error) {
	n := len(opens)
	if n == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrValidation)
	}
	if len(highs) != n || len(lows) != n || len(closes) != n {
		return nil, fmt.Errorf("mismatched array lengths (open=%d high=%d low=%d close=%d): %w",
			n, len(highs), len(lows), len(closes), ErrValidation)
	}
	cs := make([]Candle, n)
	for i := 0; i < n; i++ {
		c := Candle{Open: opens[i], High: highs[i], Low: lows[i], Close: closes[i]}
		if !finite(c) {
			return nil, fmt.Errorf("non-finite value at index %d: %w", i, ErrValidation)
		}
		cs[i] = c
	}
	return cs, nil
}

// FromBars builds candles from wire-form bars, applying the same checks as
// FromValues.
func FromBars(bars []Bar) ([]Candle, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrValidation)
	}
	cs := make([]Candle, len(bars))
	for i, b := range bars {
		c := Candle{Open: b.Open, High: b.High, Low: b.Low, Close: b.Close}
		if !finite(c) {
			return nil, fmt.Errorf("non-finite value at index %d: %w", i, ErrValidation)
		}
		cs[i] = c
	}
	return cs, nil
}

func finite(c Candle) bool {
	for _, v := range [4]float64{c.Open, c.High, c.Low, c.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
