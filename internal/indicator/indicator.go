// Package indicator computes technical indicator series over close prices.
//
// Series entries are nil during an indicator's warm-up so they serialize as
// JSON null; charting frontends rely on that to align series with candles.
package indicator

import (
	"errors"
)

// ErrValidation is the sentinel wrapped by every malformed-input error.
var ErrValidation = errors.New("invalid indicator input")

// Series is one indicator line aligned index-for-index with its input.
type Series []*float64

// value boxes a float for a Series entry.
func value(v float64) *float64 {
	return &v
}

// EMA computes an exponential moving average seeded with the simple average
// of the first period values. Entries before index period-1 are nil; inputs
// shorter than the period yield an all-nil series.
func EMA(values []float64, period int) Series {
	out := make(Series, len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	cur := sum / float64(period)
	out[period-1] = value(cur)

	// EMA formula: EMA = (Price * multiplier) + (EMA_prev * (1 - multiplier))
	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		cur = values[i]*multiplier + cur*(1-multiplier)
		out[i] = value(cur)
	}
	return out
}

// RSI computes the relative strength index with Wilder's smoothing. The
// first period entries are nil; the value at index period is seeded from the
// simple average of the first period gains and losses.
func RSI(values []float64, period int) Series {
	out := make(Series, len(values))
	if period <= 0 || len(values) < period+1 {
		return out
	}

	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = value(rsiValue(avgGain, avgLoss))

	// Wilder's smoothing: avg = (prevAvg * (period-1) + delta) / period
	p := float64(period)
	for i := period + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = value(rsiValue(avgGain, avgLoss))
	}
	return out
}

// rsiValue maps smoothed averages onto the 0-100 scale. A zero average loss
// saturates at exactly 100.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACDSeries bundles the three MACD lines.
type MACDSeries struct {
	MACD      Series `json:"macd"`
	Signal    Series `json:"signal"`
	Histogram Series `json:"histogram"`
}

// MACD computes moving average convergence divergence. The macd line is the
// fast EMA minus the slow EMA, defined from index slow-1. The signal line is
// an EMA of the macd values, defined from index slow+signal-2, and the
// histogram is macd minus signal over the same stretch.
func MACD(values []float64, fast, slow, signal int) MACDSeries {
	n := len(values)
	res := MACDSeries{
		MACD:      make(Series, n),
		Signal:    make(Series, n),
		Histogram: make(Series, n),
	}
	if fast <= 0 || slow <= 0 || signal <= 0 || fast >= slow {
		return res
	}

	fastEMA := EMA(values, fast)
	slowEMA := EMA(values, slow)
	for i := 0; i < n; i++ {
		if fastEMA[i] != nil && slowEMA[i] != nil {
			res.MACD[i] = value(*fastEMA[i] - *slowEMA[i])
		}
	}

	start := slow - 1
	if n <= start {
		return res
	}
	macdVals := make([]float64, 0, n-start)
	for i := start; i < n; i++ {
		macdVals = append(macdVals, *res.MACD[i])
	}
	sig := EMA(macdVals, signal)
	for j, v := range sig {
		if v == nil {
			continue
		}
		res.Signal[start+j] = v
		res.Histogram[start+j] = value(macdVals[j] - *v)
	}
	return res
}
