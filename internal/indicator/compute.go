package indicator

import (
	"fmt"
	"math"
)

// Default periods matching the service contract.
const (
	RSIPeriod      = 14
	MACDFast       = 12
	MACDSlow       = 26
	MACDSignal     = 9
	EMAShortPeriod = 7
	EMALongPeriod  = 25
)

// Result carries the computed series for one request. Only requested
// indicators are populated.
type Result struct {
	RSI   Series      `json:"rsi,omitempty"`
	MACD  *MACDSeries `json:"macd,omitempty"`
	EMA7  Series      `json:"ema7,omitempty"`
	EMA25 Series      `json:"ema25,omitempty"`
}

// Compute validates closes and evaluates the named indicators with the
// default periods. Recognized names are "RSI", "MACD" and "EMA"; unknown
// names are ignored. An empty name list computes nothing.
func Compute(closes []float64, names []string) (Result, error) {
	var res Result
	if len(closes) == 0 {
		return res, fmt.Errorf("empty close series: %w", ErrValidation)
	}
	for i, v := range closes {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return res, fmt.Errorf("non-finite close at index %d: %w", i, ErrValidation)
		}
	}

	for _, name := range names {
		switch name {
		case "RSI":
			res.RSI = RSI(closes, RSIPeriod)
		case "MACD":
			m := MACD(closes, MACDFast, MACDSlow, MACDSignal)
			res.MACD = &m
		case "EMA":
			res.EMA7 = EMA(closes, EMAShortPeriod)
			res.EMA25 = EMA(closes, EMALongPeriod)
		}
	}
	return res, nil
}
