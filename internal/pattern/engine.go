package pattern

import (
	"errors"
	"fmt"
	"log"

	"example.com/candle-analytics/internal/candle"
)

// MinCandles is the minimum sequence length a scan accepts.
const MinCandles = 3

// ErrInsufficientData is wrapped by scan errors for sequences shorter than
// MinCandles.
var ErrInsufficientData = errors.New("insufficient candle data")

// Detection is one recognized pattern at the end of a sequence. Field order
// matches the wire layout of pattern responses.
type Detection struct {
	Name       string         `json:"name"`
	Type       Classification `json:"type"`
	Signal     Signal         `json:"signal"`
	Confidence int            `json:"confidence"`
	Code       Code           `json:"code"`
}

// Fault records a detector that panicked during a scan. The scan continues
// and the pattern is simply absent from the results.
type Fault struct {
	Code Code
	Err  error
}

// ScanResult is the outcome of one scan.
type ScanResult struct {
	Detections []Detection
	Faults     []Fault
}

// Total returns the number of detections.
func (r *ScanResult) Total() int {
	return len(r.Detections)
}

// registration binds a catalog code to its window length and detector.
type registration struct {
	window int
	detect func([]candle.Candle) int
}

// detectors maps every catalog code to its implementation. Scans iterate the
// catalog, not this map, so result order stays catalog order.
var detectors = map[Code]registration{
	CDL2Crows:           {3, cdl2Crows},
	CDL3BlackCrows:      {3, cdl3BlackCrows},
	CDL3Inside:          {3, cdl3Inside},
	CDL3LineStrike:      {4, cdl3LineStrike},
	CDL3Outside:         {3, cdl3Outside},
	CDL3StarsInSouth:    {3, cdl3StarsInSouth},
	CDL3WhiteSoldiers:   {3, cdl3WhiteSoldiers},
	CDLAbandonedBaby:    {3, cdlAbandonedBaby},
	CDLAdvanceBlock:     {3, cdlAdvanceBlock},
	CDLBeltHold:         {1, cdlBeltHold},
	CDLBreakaway:        {5, cdlBreakaway},
	CDLClosingMarubozu:  {1, cdlClosingMarubozu},
	CDLConcealBabySwall: {4, cdlConcealBabySwall},
	CDLCounterattack:    {2, cdlCounterattack},
	CDLDarkCloudCover:   {2, cdlDarkCloudCover},
	CDLDoji:             {1, cdlDoji},
	CDLDojiStar:         {2, cdlDojiStar},
	CDLDragonflyDoji:    {1, cdlDragonflyDoji},
	CDLEngulfing:        {2, cdlEngulfing},
	CDLEveningDojiStar:  {3, cdlEveningDojiStar},
	CDLEveningStar:      {3, cdlEveningStar},
	CDLGapSideSideWhite: {3, cdlGapSideSideWhite},
	CDLGravestoneDoji:   {1, cdlGravestoneDoji},
	CDLHammer:           {1, cdlHammer},
	CDLHangingMan:       {1, cdlHangingMan},
	CDLHarami:           {2, cdlHarami},
	CDLHaramiCross:      {2, cdlHaramiCross},
	CDLHighWave:         {1, cdlHighWave},
	CDLHikkake:          {3, cdlHikkake},
	CDLHikkakeMod:       {5, cdlHikkakeMod},
	CDLHomingPigeon:     {2, cdlHomingPigeon},
	CDLIdentical3Crows:  {3, cdlIdentical3Crows},
	CDLInNeck:           {2, cdlInNeck},
	CDLInvertedHammer:   {1, cdlInvertedHammer},
	CDLKicking:          {2, cdlKicking},
	CDLKickingByLength:  {2, cdlKickingByLength},
	CDLLadderBottom:     {5, cdlLadderBottom},
	CDLLongLeggedDoji:   {1, cdlLongLeggedDoji},
	CDLLongLine:         {1, cdlLongLine},
	CDLMarubozu:         {1, cdlMarubozu},
	CDLMatchingLow:      {2, cdlMatchingLow},
	CDLMatHold:          {5, cdlMatHold},
	CDLMorningDojiStar:  {3, cdlMorningDojiStar},
	CDLMorningStar:      {3, cdlMorningStar},
	CDLOnNeck:           {2, cdlOnNeck},
	CDLPiercing:         {2, cdlPiercing},
	CDLRickshawMan:      {1, cdlRickshawMan},
	CDLRiseFall3Methods: {5, cdlRiseFall3Methods},
	CDLSeparatingLines:  {2, cdlSeparatingLines},
	CDLShootingStar:     {1, cdlShootingStar},
	CDLShortLine:        {1, cdlShortLine},
	CDLSpinningTop:      {1, cdlSpinningTop},
	CDLStalledPattern:   {3, cdlStalledPattern},
	CDLStickSandwich:    {3, cdlStickSandwich},
	CDLTakuri:           {1, cdlTakuri},
	CDLTasukiGap:        {3, cdlTasukiGap},
	CDLThrusting:        {2, cdlThrusting},
	CDLTristar:          {3, cdlTristar},
	CDLUnique3River:     {3, cdlUnique3River},
	CDLUpsideGap2Crows:  {3, cdlUpsideGap2Crows},
	CDLXSideGap3Methods: {3, cdlXSideGap3Methods},
}

// Engine runs the full pattern catalog against candle sequences. It is
// stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a pattern engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Scan evaluates every catalog pattern against the trailing candles of cs and
// returns the detections in catalog order. cs must be in time order (oldest
// first). Patterns whose window exceeds len(cs) are skipped. A detector panic
// is contained: it is logged, recorded as a Fault and the scan moves on.
func (e *Engine) Scan(cs []candle.Candle) (*ScanResult, error) {
	if len(cs) < MinCandles {
		return nil, fmt.Errorf("need at least %d candles, got %d: %w", MinCandles, len(cs), ErrInsufficientData)
	}

	// Detections starts non-nil so an empty scan marshals as [] rather than null.
	res := &ScanResult{Detections: []Detection{}}
	for _, def := range catalog {
		reg, ok := detectors[def.Code]
		if !ok || reg.window > len(cs) {
			continue
		}
		strength, err := runDetector(def.Code, reg.detect, cs[len(cs)-reg.window:])
		if err != nil {
			log.Printf("WARN: pattern scan: %v", err)
			res.Faults = append(res.Faults, Fault{Code: def.Code, Err: err})
			continue
		}
		if strength == 0 {
			continue
		}
		sig := SignalBullish
		if strength < 0 {
			sig = SignalBearish
		}
		res.Detections = append(res.Detections, Detection{
			Name:       def.Name,
			Type:       def.Type,
			Signal:     sig,
			Confidence: 100,
			Code:       def.Code,
		})
	}
	return res, nil
}

// runDetector executes one detector, converting a panic into an error.
func runDetector(code Code, detect func([]candle.Candle) int, window []candle.Candle) (strength int, err error) {
	defer func() {
		if r := recover(); r != nil {
			strength = 0
			err = fmt.Errorf("detector %s panicked: %v", code, r)
		}
	}()
	return detect(window), nil
}
