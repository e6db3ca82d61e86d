package pattern

import (
	"math"

	"example.com/candle-analytics/internal/candle"
)

// Single-candle detectors. Each receives exactly its window (one candle here)
// and returns +100, -100 or 0. Doji shapes always report +100 regardless of
// catalog classification; that is the TA-Lib convention the frontends expect.

func cdlDoji(w []candle.Candle) int {
	c := &w[0]
	if !isDoji(c) {
		return 0
	}
	return 100
}

func cdlDragonflyDoji(w []candle.Candle) int {
	c := &w[0]
	if !isDoji(c) {
		return 0
	}
	// Long lower shadow, almost no upper shadow.
	if c.LowerShadow() < c.Range()*longShadowMin {
		return 0
	}
	if c.UpperShadow() > c.Range()*shortShadowMax {
		return 0
	}
	return 100
}

func cdlGravestoneDoji(w []candle.Candle) int {
	c := &w[0]
	if !isDoji(c) {
		return 0
	}
	// Long upper shadow, almost no lower shadow.
	if c.UpperShadow() < c.Range()*longShadowMin {
		return 0
	}
	if c.LowerShadow() > c.Range()*shortShadowMax {
		return 0
	}
	return 100
}

func cdlLongLeggedDoji(w []candle.Candle) int {
	c := &w[0]
	if !isDoji(c) {
		return 0
	}
	if c.UpperShadow() < c.Range()*sideShadowMin || c.LowerShadow() < c.Range()*sideShadowMin {
		return 0
	}
	return 100
}

func cdlRickshawMan(w []candle.Candle) int {
	c := &w[0]
	if cdlLongLeggedDoji(w) == 0 {
		return 0
	}
	// Body centered in the range.
	mid := (c.High + c.Low) / 2
	if math.Abs(c.Midpoint()-mid) > c.Range()*shortShadowMax {
		return 0
	}
	return 100
}

func cdlTakuri(w []candle.Candle) int {
	c := &w[0]
	if !isDoji(c) {
		return 0
	}
	if c.UpperShadow() > c.Range()*shortShadowMax {
		return 0
	}
	if c.LowerShadow() < c.Range()*takuriShadowMin {
		return 0
	}
	return 100
}

// hammerShape: small body riding on a dominant lower shadow.
func hammerShape(c *candle.Candle) bool {
	if !isSmallBody(c) {
		return false
	}
	return c.LowerShadow() >= c.Body()*2 && c.UpperShadow() <= c.Range()*shortShadowMax
}

// invertedHammerShape: small body hanging under a dominant upper shadow.
func invertedHammerShape(c *candle.Candle) bool {
	if !isSmallBody(c) {
		return false
	}
	return c.UpperShadow() >= c.Body()*2 && c.LowerShadow() <= c.Range()*shortShadowMax
}

// Without trend context the candle's own close separates the hammer from the
// hanging man, and the inverted hammer from the shooting star.

func cdlHammer(w []candle.Candle) int {
	c := &w[0]
	if hammerShape(c) && c.IsBullish() {
		return 100
	}
	return 0
}

func cdlHangingMan(w []candle.Candle) int {
	c := &w[0]
	if hammerShape(c) && c.IsBearish() {
		return -100
	}
	return 0
}

func cdlInvertedHammer(w []candle.Candle) int {
	c := &w[0]
	if invertedHammerShape(c) && c.IsBullish() {
		return 100
	}
	return 0
}

func cdlShootingStar(w []candle.Candle) int {
	c := &w[0]
	if invertedHammerShape(c) && c.IsBearish() {
		return -100
	}
	return 0
}

func cdlBeltHold(w []candle.Candle) int {
	c := &w[0]
	if !isLongBody(c) {
		return 0
	}
	// No shadow on the opening side.
	if c.IsBullish() && c.LowerShadow() <= c.Range()*tinyShadowMax {
		return 100
	}
	if c.IsBearish() && c.UpperShadow() <= c.Range()*tinyShadowMax {
		return -100
	}
	return 0
}

func cdlClosingMarubozu(w []candle.Candle) int {
	c := &w[0]
	if !isLongBody(c) {
		return 0
	}
	// No shadow on the closing side.
	if c.IsBullish() && c.UpperShadow() <= c.Range()*tinyShadowMax {
		return 100
	}
	if c.IsBearish() && c.LowerShadow() <= c.Range()*tinyShadowMax {
		return -100
	}
	return 0
}

func cdlMarubozu(w []candle.Candle) int {
	c := &w[0]
	if !isMarubozu(c) {
		return 0
	}
	return colorSign(c)
}

func cdlLongLine(w []candle.Candle) int {
	c := &w[0]
	if !isLongBody(c) {
		return 0
	}
	return colorSign(c)
}

func cdlShortLine(w []candle.Candle) int {
	c := &w[0]
	if c.Range() == 0 {
		return 0
	}
	// Modest body between the doji and long-line bands, short shadows.
	if c.Body() < c.Range()*dojiBodyMax || c.Body() >= c.Range()*longBodyMin {
		return 0
	}
	if c.UpperShadow() > c.Range()*shortBodyMax || c.LowerShadow() > c.Range()*shortBodyMax {
		return 0
	}
	return colorSign(c)
}

func cdlSpinningTop(w []candle.Candle) int {
	c := &w[0]
	body := c.Body()
	if body == 0 || c.Range() == 0 {
		return 0
	}
	// Both shadows longer than the body.
	if c.UpperShadow() <= body || c.LowerShadow() <= body {
		return 0
	}
	return colorSign(c)
}

func cdlHighWave(w []candle.Candle) int {
	c := &w[0]
	body := c.Body()
	if body == 0 || c.Range() == 0 {
		return 0
	}
	// Both shadows at least 3x the body.
	if c.UpperShadow() < body*3 || c.LowerShadow() < body*3 {
		return 0
	}
	return colorSign(c)
}
