package pattern

import (
	"example.com/candle-analytics/internal/candle"
)

// Four- and five-candle detectors.

func cdl3LineStrike(w []candle.Candle) int {
	a, b, c, d := &w[0], &w[1], &w[2], &w[3]
	// Three advancing white candles wiped out by one black candle, or the
	// mirror. The sign follows the first three.
	if a.IsBullish() && b.IsBullish() && c.IsBullish() && d.IsBearish() {
		if b.Close > a.Close && c.Close > b.Close &&
			b.Open > a.Open && b.Open < a.Close &&
			c.Open > b.Open && c.Open < b.Close &&
			d.Open > c.Close && d.Close < a.Open {
			return 100
		}
		return 0
	}
	if a.IsBearish() && b.IsBearish() && c.IsBearish() && d.IsBullish() {
		if b.Close < a.Close && c.Close < b.Close &&
			b.Open < a.Open && b.Open > a.Close &&
			c.Open < b.Open && c.Open > b.Close &&
			d.Open < c.Close && d.Close > a.Open {
			return -100
		}
	}
	return 0
}

func cdlConcealBabySwall(w []candle.Candle) int {
	a, b, c, d := &w[0], &w[1], &w[2], &w[3]
	for i := range w {
		if !w[i].IsBearish() {
			return 0
		}
	}
	if !isLongBody(a) || a.LowerShadow() > a.Range()*shortShadowMax {
		return 0
	}
	if !isLongBody(b) || b.LowerShadow() > b.Range()*shortShadowMax {
		return 0
	}
	// Third gaps down at the open but its upper shadow reaches back into the
	// second body.
	if c.Open >= b.Close || c.High <= b.Close {
		return 0
	}
	// Fourth engulfs the third entirely, shadows included.
	if d.Open <= c.High || d.Close >= c.Low {
		return 0
	}
	return 100
}

func cdlBreakaway(w []candle.Candle) int {
	a, b, c, d, e := &w[0], &w[1], &w[2], &w[3], &w[4]
	// Bullish: a falling run that opened with a gap ends with a long white
	// candle closing back inside the gap.
	if a.IsBearish() && b.IsBearish() && d.IsBearish() && e.IsBullish() {
		if !isLongBody(a) || !bodyGapDown(a, b) {
			return 0
		}
		if c.Close >= b.Close || d.Close >= c.Close {
			return 0
		}
		if !isLongBody(e) || e.Close <= b.BodyHigh() || e.Close >= a.BodyLow() {
			return 0
		}
		return 100
	}
	if a.IsBullish() && b.IsBullish() && d.IsBullish() && e.IsBearish() {
		if !isLongBody(a) || !bodyGapUp(a, b) {
			return 0
		}
		if c.Close <= b.Close || d.Close <= c.Close {
			return 0
		}
		if !isLongBody(e) || e.Close >= b.BodyLow() || e.Close <= a.BodyHigh() {
			return 0
		}
		return -100
	}
	return 0
}

func cdlLadderBottom(w []candle.Candle) int {
	a, b, c, d, e := &w[0], &w[1], &w[2], &w[3], &w[4]
	if !a.IsBearish() || !isLongBody(a) ||
		!b.IsBearish() || !isLongBody(b) ||
		!c.IsBearish() || !isLongBody(c) {
		return 0
	}
	if b.Close >= a.Close || c.Close >= b.Close {
		return 0
	}
	// Fourth black candle shows buying pressure through its upper shadow.
	if !d.IsBearish() || d.UpperShadow() < d.Body()*sideShadowMin {
		return 0
	}
	if !e.IsBullish() || e.Open <= d.Open || e.Close <= d.High {
		return 0
	}
	return 100
}

func cdlMatHold(w []candle.Candle) int {
	a, e := &w[0], &w[4]
	if !a.IsBullish() || !isLongBody(a) {
		return 0
	}
	if !w[1].IsBearish() || !bodyGapUp(a, &w[1]) {
		return 0
	}
	// Three small candles drift but hold above the first low.
	high := w[1].High
	for i := 1; i <= 3; i++ {
		k := &w[i]
		if k.Body() > a.Body()*haramiBodyMax || k.Low <= a.Low {
			return 0
		}
		if k.High > high {
			high = k.High
		}
	}
	if !e.IsBullish() || e.Close <= high || e.Close <= a.Close {
		return 0
	}
	return 100
}

func cdlRiseFall3Methods(w []candle.Candle) int {
	a, e := &w[0], &w[4]
	if !isLongBody(a) || !isLongBody(e) {
		return 0
	}
	// Three small candles resting inside the first range.
	for i := 1; i <= 3; i++ {
		k := &w[i]
		if k.Body() > a.Body()*haramiBodyMax {
			return 0
		}
		if k.High > a.High || k.Low < a.Low {
			return 0
		}
	}
	if a.IsBullish() && e.IsBullish() && e.Close > a.Close {
		return 100
	}
	if a.IsBearish() && e.IsBearish() && e.Close < a.Close {
		return -100
	}
	return 0
}

func cdlHikkakeMod(w []candle.Candle) int {
	a, b, c, d, e := &w[0], &w[1], &w[2], &w[3], &w[4]
	if !insideBar(b, a) || b.Range() == 0 {
		return 0
	}
	// Bullish: the inside bar closes near its low, the third bar breaks
	// below it, and a later close escapes back above its high.
	if b.Close <= b.Low+b.Range()*0.25 {
		if c.High < b.High && c.Low < b.Low && (d.Close > b.High || e.Close > b.High) {
			return 100
		}
	}
	if b.Close >= b.High-b.Range()*0.25 {
		if c.High > b.High && c.Low > b.Low && (d.Close < b.Low || e.Close < b.Low) {
			return -100
		}
	}
	return 0
}
