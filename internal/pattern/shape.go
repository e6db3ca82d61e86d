package pattern

import (
	"math"

	"example.com/candle-analytics/internal/candle"
)

// Shape thresholds. Ratios against the candle range unless noted otherwise.
// Comparisons multiply by these instead of dividing so zero-range candles can
// never divide by zero.
const (
	dojiBodyMax     = 0.1  // doji: body under 10% of range
	longBodyMin     = 0.6  // long candle: body at least 60% of range
	wideBodyMin     = 0.5  // harami base: body at least 50% of range
	smallBodyMax    = 0.35 // hammer family body cap
	shortBodyMax    = 0.3  // short line shadow cap
	tinyShadowMax   = 0.05 // marubozu shadow cap
	shortShadowMax  = 0.1  // crow/soldier shadow cap
	longShadowMin   = 0.6  // dragonfly/gravestone dominant shadow
	takuriShadowMin = 0.8  // takuri lower shadow
	sideShadowMin   = 0.3  // long-legged doji shadows
	starBodyMax     = 0.3  // star body vs first body
	haramiBodyMax   = 0.5  // inner body vs outer body
	nearTol         = 0.001 // relative tolerance for "equal" prices (0.1%)
)

// isDoji checks for a very small body. Zero-range candles are excluded to
// avoid false positives in flat low-liquidity data.
func isDoji(c *candle.Candle) bool {
	if c.Range() == 0 {
		return false
	}
	return c.Body() < c.Range()*dojiBodyMax
}

// isLongBody checks for a body dominating the range.
func isLongBody(c *candle.Candle) bool {
	if c.Range() == 0 {
		return false
	}
	return c.Body() >= c.Range()*longBodyMin
}

// isWideBody is the looser body requirement used by harami-style containment.
func isWideBody(c *candle.Candle) bool {
	if c.Range() == 0 {
		return false
	}
	return c.Body() >= c.Range()*wideBodyMin
}

// isSmallBody checks for a real but small body (above doji size).
func isSmallBody(c *candle.Candle) bool {
	if c.Range() == 0 {
		return false
	}
	return c.Body() > c.Range()*dojiBodyMax && c.Body() <= c.Range()*smallBodyMax
}

// isMarubozu checks for a long body with negligible shadows on both sides.
func isMarubozu(c *candle.Candle) bool {
	if !isLongBody(c) {
		return false
	}
	return c.UpperShadow() <= c.Range()*tinyShadowMax && c.LowerShadow() <= c.Range()*tinyShadowMax
}

// nearEqual treats two prices as equal within nearTol of their magnitude.
func nearEqual(a, b float64) bool {
	scale := (math.Abs(a) + math.Abs(b)) / 2
	return math.Abs(a-b) <= scale*nearTol
}

// bodyInside reports whether the inner candle's body sits inside the outer
// candle's body. Shadows may extend beyond.
func bodyInside(inner, outer *candle.Candle) bool {
	return inner.BodyHigh() <= outer.BodyHigh() && inner.BodyLow() >= outer.BodyLow()
}

// bodyGapUp reports a gap between the bodies, current above previous.
func bodyGapUp(prev, curr *candle.Candle) bool {
	return curr.BodyLow() > prev.BodyHigh()
}

// bodyGapDown reports a gap between the bodies, current below previous.
func bodyGapDown(prev, curr *candle.Candle) bool {
	return curr.BodyHigh() < prev.BodyLow()
}

// gapUp reports a full-range gap, current above previous.
func gapUp(prev, curr *candle.Candle) bool {
	return curr.Low > prev.High
}

// gapDown reports a full-range gap, current below previous.
func gapDown(prev, curr *candle.Candle) bool {
	return curr.High < prev.Low
}

// insideBar reports whether the inner candle's full range sits strictly
// inside the outer candle's range.
func insideBar(inner, outer *candle.Candle) bool {
	return inner.High < outer.High && inner.Low > outer.Low
}

// engulfsBullish: bearish candle followed by a bullish candle whose body
// strictly contains it.
func engulfsBullish(p, c *candle.Candle) bool {
	return p.IsBearish() && c.IsBullish() && c.Open < p.Close && c.Close > p.Open
}

// engulfsBearish: bullish candle followed by a bearish candle whose body
// strictly contains it.
func engulfsBearish(p, c *candle.Candle) bool {
	return p.IsBullish() && c.IsBearish() && c.Open > p.Close && c.Close < p.Open
}

// colorSign maps candle direction to the signed detection value.
func colorSign(c *candle.Candle) int {
	switch {
	case c.IsBullish():
		return 100
	case c.IsBearish():
		return -100
	default:
		return 0
	}
}
