package pattern

import (
	"math"

	"example.com/candle-analytics/internal/candle"
)

// Three-candle detectors. w[2] is the pattern candle.

func cdl2Crows(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBullish() || !isLongBody(a) {
		return 0
	}
	if !b.IsBearish() || !bodyGapUp(a, b) {
		return 0
	}
	if !c.IsBearish() {
		return 0
	}
	// Third opens inside the second body and closes inside the first body.
	if c.Open <= b.Close || c.Open >= b.Open {
		return 0
	}
	if c.Close <= a.Open || c.Close >= a.Close {
		return 0
	}
	return -100
}

func cdl3BlackCrows(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	for i := range w {
		k := &w[i]
		if !k.IsBearish() || !isLongBody(k) {
			return 0
		}
		if k.LowerShadow() > k.Range()*shortShadowMax {
			return 0
		}
	}
	// Each opens within the prior body and closes at a new low.
	if b.Open >= a.Open || b.Open <= a.Close || b.Close >= a.Close {
		return 0
	}
	if c.Open >= b.Open || c.Open <= b.Close || c.Close >= b.Close {
		return 0
	}
	return -100
}

func cdl3WhiteSoldiers(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	for i := range w {
		k := &w[i]
		if !k.IsBullish() || !isLongBody(k) {
			return 0
		}
		if k.UpperShadow() > k.Range()*shortShadowMax {
			return 0
		}
	}
	// Each opens within the prior body and closes at a new high.
	if b.Open <= a.Open || b.Open >= a.Close || b.Close <= a.Close {
		return 0
	}
	if c.Open <= b.Open || c.Open >= b.Close || c.Close <= b.Close {
		return 0
	}
	return 100
}

func cdlIdentical3Crows(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	for i := range w {
		k := &w[i]
		if !k.IsBearish() || !isLongBody(k) {
			return 0
		}
	}
	// Each opens where the prior closed.
	if !nearEqual(b.Open, a.Close) || !nearEqual(c.Open, b.Close) {
		return 0
	}
	if b.Close >= a.Close || c.Close >= b.Close {
		return 0
	}
	return -100
}

func cdl3Inside(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !isWideBody(a) {
		return 0
	}
	if !bodyInside(b, a) || b.Body() > a.Body()*haramiBodyMax {
		return 0
	}
	// Third confirms the harami beyond the first open.
	if a.IsBearish() && c.IsBullish() && c.Close > a.Open {
		return 100
	}
	if a.IsBullish() && c.IsBearish() && c.Close < a.Open {
		return -100
	}
	return 0
}

func cdl3Outside(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	// Third confirms the engulfing beyond the second close.
	if engulfsBullish(a, b) && c.IsBullish() && c.Close > b.Close {
		return 100
	}
	if engulfsBearish(a, b) && c.IsBearish() && c.Close < b.Close {
		return -100
	}
	return 0
}

func cdl3StarsInSouth(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBearish() || !isLongBody(a) || a.LowerShadow() < a.Range()*sideShadowMin {
		return 0
	}
	// Second is a smaller black candle holding above the first low.
	if !b.IsBearish() || b.Range() >= a.Range() || b.Low <= a.Low {
		return 0
	}
	if b.Open >= a.High || b.Open <= a.Low {
		return 0
	}
	// Third is a small black candle inside the second range.
	if !c.IsBearish() || c.Range() >= b.Range() {
		return 0
	}
	if c.High > b.High || c.Low < b.Low {
		return 0
	}
	return 100
}

func cdlAbandonedBaby(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !isLongBody(a) || !isDoji(b) || !isLongBody(c) {
		return 0
	}
	// The doji is fully isolated by range gaps on both sides.
	if a.IsBearish() && c.IsBullish() && gapDown(a, b) && gapUp(b, c) && c.Close > a.Midpoint() {
		return 100
	}
	if a.IsBullish() && c.IsBearish() && gapUp(a, b) && gapDown(b, c) && c.Close < a.Midpoint() {
		return -100
	}
	return 0
}

func cdlAdvanceBlock(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	for i := range w {
		if !w[i].IsBullish() {
			return 0
		}
	}
	if b.Open <= a.Open || b.Open >= a.Close || b.Close <= a.Close {
		return 0
	}
	if c.Open <= b.Open || c.Open >= b.Close || c.Close <= b.Close {
		return 0
	}
	// The advance stalls: bodies shrink and the last upper shadow grows.
	if b.Body() >= a.Body() || c.Body() >= b.Body() {
		return 0
	}
	if c.UpperShadow() < c.Body() {
		return 0
	}
	return -100
}

func cdlStalledPattern(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBullish() || !isLongBody(a) || !b.IsBullish() || !isLongBody(b) {
		return 0
	}
	if b.Close <= a.Close || !c.IsBullish() {
		return 0
	}
	// Small third candle riding on the second close.
	if c.Body() > b.Body()*starBodyMax {
		return 0
	}
	if math.Abs(c.Open-b.Close) > b.Body()*0.2 {
		return 0
	}
	return -100
}

func cdlEveningStar(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBullish() || !isLongBody(a) {
		return 0
	}
	// Star: small body gapped above the first body.
	if b.Body() > a.Body()*starBodyMax || !bodyGapUp(a, b) {
		return 0
	}
	if !c.IsBearish() || !isLongBody(c) || c.Close >= a.Midpoint() {
		return 0
	}
	return -100
}

func cdlEveningDojiStar(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBullish() || !isLongBody(a) {
		return 0
	}
	if !isDoji(b) || !bodyGapUp(a, b) {
		return 0
	}
	if !c.IsBearish() || !isLongBody(c) || c.Close >= a.Midpoint() {
		return 0
	}
	return -100
}

func cdlMorningStar(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBearish() || !isLongBody(a) {
		return 0
	}
	// Star: small body gapped below the first body.
	if b.Body() > a.Body()*starBodyMax || !bodyGapDown(a, b) {
		return 0
	}
	if !c.IsBullish() || !isLongBody(c) || c.Close <= a.Midpoint() {
		return 0
	}
	return 100
}

func cdlMorningDojiStar(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBearish() || !isLongBody(a) {
		return 0
	}
	if !isDoji(b) || !bodyGapDown(a, b) {
		return 0
	}
	if !c.IsBullish() || !isLongBody(c) || c.Close <= a.Midpoint() {
		return 0
	}
	return 100
}

func cdlGapSideSideWhite(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !b.IsBullish() || !c.IsBullish() || b.Body() == 0 {
		return 0
	}
	// Two similar white candles side by side.
	if c.Body() < b.Body()*0.7 || c.Body() > b.Body()*1.3 {
		return 0
	}
	if math.Abs(c.Open-b.Open) > b.Body()*0.3 {
		return 0
	}
	if bodyGapUp(a, b) && bodyGapUp(a, c) {
		return 100
	}
	if bodyGapDown(a, b) && bodyGapDown(a, c) {
		return -100
	}
	return 0
}

func cdlHikkake(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !insideBar(b, a) {
		return 0
	}
	// The break out of the inside bar is read as a trap in that direction.
	if c.High < b.High && c.Low < b.Low {
		return 100
	}
	if c.High > b.High && c.Low > b.Low {
		return -100
	}
	return 0
}

func cdlStickSandwich(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBearish() || !b.IsBullish() || !c.IsBearish() {
		return 0
	}
	if b.Low <= a.Close {
		return 0
	}
	if !nearEqual(a.Close, c.Close) {
		return 0
	}
	return 100
}

func cdlTasukiGap(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	// Upside: two white candles around an upward body gap, then a black one
	// dipping into the gap without filling it.
	if a.IsBullish() && b.IsBullish() && bodyGapUp(a, b) && c.IsBearish() {
		if c.Open > b.Open && c.Open < b.Close && c.Close < b.Open && c.Close > a.Close {
			return 100
		}
		return 0
	}
	if a.IsBearish() && b.IsBearish() && bodyGapDown(a, b) && c.IsBullish() {
		if c.Open < b.Open && c.Open > b.Close && c.Close > b.Open && c.Close < a.Close {
			return -100
		}
	}
	return 0
}

func cdlTristar(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !isDoji(a) || !isDoji(b) || !isDoji(c) {
		return 0
	}
	if b.BodyHigh() < a.BodyLow() && b.BodyHigh() < c.BodyLow() {
		return 100
	}
	if b.BodyLow() > a.BodyHigh() && b.BodyLow() > c.BodyHigh() {
		return -100
	}
	return 0
}

func cdlUnique3River(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBearish() || !isLongBody(a) {
		return 0
	}
	// Second is a black harami-like candle with a lower low.
	if !b.IsBearish() || b.Body() >= a.Body() || b.Open >= a.Open {
		return 0
	}
	if b.Low >= a.Low || b.Close <= a.Close {
		return 0
	}
	// Third is a short white candle held above the second low.
	if !c.IsBullish() || c.Body() > b.Body()*haramiBodyMax {
		return 0
	}
	if c.Open <= b.Low || c.Close >= b.Close {
		return 0
	}
	return 100
}

func cdlUpsideGap2Crows(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	if !a.IsBullish() || !isLongBody(a) {
		return 0
	}
	if !b.IsBearish() || !bodyGapUp(a, b) {
		return 0
	}
	if !c.IsBearish() {
		return 0
	}
	// Third engulfs the second body but holds above the first close.
	if c.Open <= b.Open || c.Close >= b.Close || c.Close <= a.Close {
		return 0
	}
	return -100
}

func cdlXSideGap3Methods(w []candle.Candle) int {
	a, b, c := &w[0], &w[1], &w[2]
	// Opposite candle opens inside the second body and closes the gap.
	if a.IsBullish() && b.IsBullish() && bodyGapUp(a, b) && c.IsBearish() {
		if c.Open > b.Open && c.Open < b.Close && c.Close < a.Close && c.Close > a.Open {
			return 100
		}
		return 0
	}
	if a.IsBearish() && b.IsBearish() && bodyGapDown(a, b) && c.IsBullish() {
		if c.Open < b.Open && c.Open > b.Close && c.Close > a.Close && c.Close < a.Open {
			return -100
		}
	}
	return 0
}
