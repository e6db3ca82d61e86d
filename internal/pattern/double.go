package pattern

import (
	"example.com/candle-analytics/internal/candle"
)

// Two-candle detectors. w[0] is the setup candle, w[1] the pattern candle.

func cdlCounterattack(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !isLongBody(p) || !isLongBody(c) {
		return 0
	}
	if !nearEqual(p.Close, c.Close) {
		return 0
	}
	if p.IsBearish() && c.IsBullish() {
		return 100
	}
	if p.IsBullish() && c.IsBearish() {
		return -100
	}
	return 0
}

func cdlDarkCloudCover(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !p.IsBullish() || !isLongBody(p) || !c.IsBearish() {
		return 0
	}
	// Opens above the prior high, closes below the prior midpoint but keeps
	// the prior open intact (deeper would be an engulfing).
	if c.Open <= p.High {
		return 0
	}
	if c.Close >= p.Midpoint() || c.Close <= p.Open {
		return 0
	}
	return -100
}

func cdlPiercing(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !p.IsBearish() || !isLongBody(p) || !c.IsBullish() {
		return 0
	}
	if c.Open >= p.Low {
		return 0
	}
	if c.Close <= p.Midpoint() || c.Close >= p.Open {
		return 0
	}
	return 100
}

func cdlDojiStar(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !isLongBody(p) || !isDoji(c) {
		return 0
	}
	// The doji gaps in the direction of the setup candle.
	if p.IsBullish() && bodyGapUp(p, c) {
		return -100
	}
	if p.IsBearish() && bodyGapDown(p, c) {
		return 100
	}
	return 0
}

func cdlEngulfing(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if engulfsBullish(p, c) {
		return 100
	}
	if engulfsBearish(p, c) {
		return -100
	}
	return 0
}

func cdlHarami(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !isWideBody(p) {
		return 0
	}
	if !bodyInside(c, p) || c.Body() > p.Body()*haramiBodyMax {
		return 0
	}
	// Signal is the reverse of the setup candle.
	if p.IsBearish() {
		return 100
	}
	return -100
}

func cdlHaramiCross(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !isWideBody(p) {
		return 0
	}
	if !isDoji(c) || !bodyInside(c, p) {
		return 0
	}
	if p.IsBearish() {
		return 100
	}
	return -100
}

func cdlHomingPigeon(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !p.IsBearish() || !isLongBody(p) || !c.IsBearish() {
		return 0
	}
	if !bodyInside(c, p) || c.Body() >= p.Body() {
		return 0
	}
	return 100
}

// neckSetup: long black candle followed by a white candle opening below its
// low. Shared by the in-neck, on-neck and thrusting detectors.
func neckSetup(p, c *candle.Candle) bool {
	return p.IsBearish() && isLongBody(p) && c.IsBullish() && c.Open < p.Low
}

func cdlInNeck(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !neckSetup(p, c) {
		return 0
	}
	// Closes at or barely above the prior close.
	if c.Close < p.Close || c.Close > p.Close+p.Body()*0.1 {
		return 0
	}
	return -100
}

func cdlOnNeck(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !neckSetup(p, c) {
		return 0
	}
	// Closes at the prior low, never reaching the body.
	if !nearEqual(c.Close, p.Low) {
		return 0
	}
	return -100
}

func cdlThrusting(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !neckSetup(p, c) {
		return 0
	}
	// Closes into the prior body but stays under its midpoint.
	if c.Close <= p.Close+p.Body()*0.1 || c.Close >= p.Midpoint() {
		return 0
	}
	return -100
}

// kickingGate: two opposite marubozus separated by a body gap.
func kickingGate(p, c *candle.Candle) bool {
	if !isMarubozu(p) || !isMarubozu(c) {
		return false
	}
	if p.IsBearish() && c.IsBullish() {
		return bodyGapUp(p, c)
	}
	if p.IsBullish() && c.IsBearish() {
		return bodyGapDown(p, c)
	}
	return false
}

func cdlKicking(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !kickingGate(p, c) {
		return 0
	}
	return colorSign(c)
}

func cdlKickingByLength(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !kickingGate(p, c) {
		return 0
	}
	// The longer marubozu decides the direction.
	if p.Body() > c.Body() {
		return colorSign(p)
	}
	return colorSign(c)
}

func cdlMatchingLow(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !p.IsBearish() || !c.IsBearish() {
		return 0
	}
	if !nearEqual(p.Close, c.Close) {
		return 0
	}
	return 100
}

func cdlSeparatingLines(w []candle.Candle) int {
	p, c := &w[0], &w[1]
	if !isLongBody(c) || !nearEqual(p.Open, c.Open) {
		return 0
	}
	if p.IsBearish() && c.IsBullish() {
		return 100
	}
	if p.IsBullish() && c.IsBearish() {
		return -100
	}
	return 0
}
