// Package pattern provides candlestick pattern recognition over OHLC candles.
//
// The catalog mirrors the TA-Lib CDL* naming so chart frontends can map
// detections directly. Signed detector outputs follow the TA-Lib conventions:
// +100 reads as a bullish signal, -100 as bearish, 0 as no detection.
package pattern

// Code identifies a pattern in the catalog.
type Code string

const (
	CDL2Crows           Code = "CDL2CROWS"           // 两只乌鸦
	CDL3BlackCrows      Code = "CDL3BLACKCROWS"      // 三只乌鸦
	CDL3Inside          Code = "CDL3INSIDE"          // 三内部
	CDL3LineStrike      Code = "CDL3LINESTRIKE"      // 三线打击
	CDL3Outside         Code = "CDL3OUTSIDE"         // 三外部
	CDL3StarsInSouth    Code = "CDL3STARSINSOUTH"    // 南方三星
	CDL3WhiteSoldiers   Code = "CDL3WHITESOLDIERS"   // 三白兵
	CDLAbandonedBaby    Code = "CDLABANDONEDBABY"    // 弃婴
	CDLAdvanceBlock     Code = "CDLADVANCEBLOCK"     // 前进受阻
	CDLBeltHold         Code = "CDLBELTHOLD"         // 捉腰带
	CDLBreakaway        Code = "CDLBREAKAWAY"        // 脱离
	CDLClosingMarubozu  Code = "CDLCLOSINGMARUBOZU"  // 收盘光头光脚
	CDLConcealBabySwall Code = "CDLCONCEALBABYSWALL" // 藏婴吞没
	CDLCounterattack    Code = "CDLCOUNTERATTACK"    // 反击线
	CDLDarkCloudCover   Code = "CDLDARKCLOUDCOVER"   // 乌云盖顶
	CDLDoji             Code = "CDLDOJI"             // 十字星
	CDLDojiStar         Code = "CDLDOJISTAR"         // 十字星线
	CDLDragonflyDoji    Code = "CDLDRAGONFLYDOJI"    // 蜻蜓十字
	CDLEngulfing        Code = "CDLENGULFING"        // 吞没形态
	CDLEveningDojiStar  Code = "CDLEVENINGDOJISTAR"  // 黄昏十字星
	CDLEveningStar      Code = "CDLEVENINGSTAR"      // 黄昏之星
	CDLGapSideSideWhite Code = "CDLGAPSIDESIDEWHITE" // 向上跳空并列阳线
	CDLGravestoneDoji   Code = "CDLGRAVESTONEDOJI"   // 墓碑十字
	CDLHammer           Code = "CDLHAMMER"           // 锤子线
	CDLHangingMan       Code = "CDLHANGINGMAN"       // 上吊线
	CDLHarami           Code = "CDLHARAMI"           // 孕线
	CDLHaramiCross      Code = "CDLHARAMICROSS"      // 十字孕线
	CDLHighWave         Code = "CDLHIGHWAVE"         // 高浪线
	CDLHikkake          Code = "CDLHIKKAKE"          // 陷阱
	CDLHikkakeMod       Code = "CDLHIKKAKEMOD"       // 修正陷阱
	CDLHomingPigeon     Code = "CDLHOMINGPIGEON"     // 家鸽
	CDLIdentical3Crows  Code = "CDLIDENTICAL3CROWS"  // 相同三乌鸦
	CDLInNeck           Code = "CDLINNECK"           // 颈内线
	CDLInvertedHammer   Code = "CDLINVERTEDHAMMER"   // 倒锤头
	CDLKicking          Code = "CDLKICKING"          // 踢腿
	CDLKickingByLength  Code = "CDLKICKINGBYLENGTH"  // 长踢腿
	CDLLadderBottom     Code = "CDLLADDERBOTTOM"     // 梯底
	CDLLongLeggedDoji   Code = "CDLLONGLEGGEDDOJI"   // 长脚十字
	CDLLongLine         Code = "CDLLONGLINE"         // 长线
	CDLMarubozu         Code = "CDLMARUBOZU"         // 光头光脚
	CDLMatchingLow      Code = "CDLMATCHINGLOW"      // 相同低价
	CDLMatHold          Code = "CDLMATHOLD"          // 铺垫
	CDLMorningDojiStar  Code = "CDLMORNINGDOJISTAR"  // 早晨十字星
	CDLMorningStar      Code = "CDLMORNINGSTAR"      // 早晨之星
	CDLOnNeck           Code = "CDLONNECK"           // 颈上线
	CDLPiercing         Code = "CDLPIERCING"         // 刺透形态
	CDLRickshawMan      Code = "CDLRICKSHAWMAN"      // 黄包车夫
	CDLRiseFall3Methods Code = "CDLRISEFALL3METHODS" // 上升/下降三法
	CDLSeparatingLines  Code = "CDLSEPARATINGLINES"  // 分离线
	CDLShootingStar     Code = "CDLSHOOTINGSTAR"     // 流星线
	CDLShortLine        Code = "CDLSHORTLINE"        // 短线
	CDLSpinningTop      Code = "CDLSPINNINGTOP"      // 纺锤线
	CDLStalledPattern   Code = "CDLSTALLEDPATTERN"   // 停顿形态
	CDLStickSandwich    Code = "CDLSTICKSANDWICH"    // 条形三明治
	CDLTakuri           Code = "CDLTAKURI"           // 探水竿
	CDLTasukiGap        Code = "CDLTASUKIGAP"        // 跳空并列
	CDLThrusting        Code = "CDLTHRUSTING"        // 插入
	CDLTristar          Code = "CDLTRISTAR"          // 三星
	CDLUnique3River     Code = "CDLUNIQUE3RIVER"     // 独特三河
	CDLUpsideGap2Crows  Code = "CDLUPSIDEGAP2CROWS"  // 向上跳空的两只乌鸦
	CDLXSideGap3Methods Code = "CDLXSIDEGAP3METHODS" // 上升/下降跳空三法
)

// Classification groups patterns by the kind of move they are read as.
type Classification string

const (
	ClassBullish      Classification = "bullish"
	ClassBearish      Classification = "bearish"
	ClassNeutral      Classification = "neutral"
	ClassReversal     Classification = "reversal"
	ClassContinuation Classification = "continuation"
)

// Signal is the direction a detection points to.
type Signal string

const (
	SignalBullish Signal = "bullish" // 看涨
	SignalBearish Signal = "bearish" // 看跌
)

// Definition describes one catalog entry. Name is the Chinese display name
// used by chart frontends.
type Definition struct {
	Code Code           `json:"code"`
	Name string         `json:"name"`
	Type Classification `json:"type"`
}

// catalog lists every supported pattern in scan order. Scans iterate this
// slice, so detections always come out in this order.
var catalog = []Definition{
	{CDL2Crows, "两只乌鸦", ClassBearish},
	{CDL3BlackCrows, "三只乌鸦", ClassBearish},
	{CDL3Inside, "三内部", ClassBullish},
	{CDL3LineStrike, "三线打击", ClassBullish},
	{CDL3Outside, "三外部", ClassBullish},
	{CDL3StarsInSouth, "南方三星", ClassBullish},
	{CDL3WhiteSoldiers, "三白兵", ClassBullish},
	{CDLAbandonedBaby, "弃婴", ClassReversal},
	{CDLAdvanceBlock, "前进受阻", ClassBearish},
	{CDLBeltHold, "捉腰带", ClassReversal},
	{CDLBreakaway, "脱离", ClassReversal},
	{CDLClosingMarubozu, "收盘光头光脚", ClassContinuation},
	{CDLConcealBabySwall, "藏婴吞没", ClassBullish},
	{CDLCounterattack, "反击线", ClassReversal},
	{CDLDarkCloudCover, "乌云盖顶", ClassBearish},
	{CDLDoji, "十字星", ClassNeutral},
	{CDLDojiStar, "十字星线", ClassReversal},
	{CDLDragonflyDoji, "蜻蜓十字", ClassBullish},
	{CDLEngulfing, "吞没形态", ClassReversal},
	{CDLEveningDojiStar, "黄昏十字星", ClassBearish},
	{CDLEveningStar, "黄昏之星", ClassBearish},
	{CDLGapSideSideWhite, "向上跳空并列阳线", ClassBullish},
	{CDLGravestoneDoji, "墓碑十字", ClassBearish},
	{CDLHammer, "锤子线", ClassBullish},
	{CDLHangingMan, "上吊线", ClassBearish},
	{CDLHarami, "孕线", ClassReversal},
	{CDLHaramiCross, "十字孕线", ClassReversal},
	{CDLHighWave, "高浪线", ClassNeutral},
	{CDLHikkake, "陷阱", ClassReversal},
	{CDLHikkakeMod, "修正陷阱", ClassReversal},
	{CDLHomingPigeon, "家鸽", ClassBullish},
	{CDLIdentical3Crows, "相同三乌鸦", ClassBearish},
	{CDLInNeck, "颈内线", ClassBearish},
	{CDLInvertedHammer, "倒锤头", ClassBullish},
	{CDLKicking, "踢腿", ClassReversal},
	{CDLKickingByLength, "长踢腿", ClassReversal},
	{CDLLadderBottom, "梯底", ClassBullish},
	{CDLLongLeggedDoji, "长脚十字", ClassNeutral},
	{CDLLongLine, "长线", ClassContinuation},
	{CDLMarubozu, "光头光脚", ClassContinuation},
	{CDLMatchingLow, "相同低价", ClassBullish},
	{CDLMatHold, "铺垫", ClassBullish},
	{CDLMorningDojiStar, "早晨十字星", ClassBullish},
	{CDLMorningStar, "早晨之星", ClassBullish},
	{CDLOnNeck, "颈上线", ClassBearish},
	{CDLPiercing, "刺透形态", ClassBullish},
	{CDLRickshawMan, "黄包车夫", ClassNeutral},
	{CDLRiseFall3Methods, "上升/下降三法", ClassContinuation},
	{CDLSeparatingLines, "分离线", ClassContinuation},
	{CDLShootingStar, "流星线", ClassBearish},
	{CDLShortLine, "短线", ClassNeutral},
	{CDLSpinningTop, "纺锤线", ClassNeutral},
	{CDLStalledPattern, "停顿形态", ClassBearish},
	{CDLStickSandwich, "条形三明治", ClassBullish},
	{CDLTakuri, "探水竿", ClassBullish},
	{CDLTasukiGap, "跳空并列", ClassContinuation},
	{CDLThrusting, "插入", ClassBearish},
	{CDLTristar, "三星", ClassReversal},
	{CDLUnique3River, "独特三河", ClassBullish},
	{CDLUpsideGap2Crows, "向上跳空的两只乌鸦", ClassBearish},
	{CDLXSideGap3Methods, "上升/下降跳空三法", ClassContinuation},
}

// Catalog returns the pattern definitions in scan order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for a code.
func Lookup(code Code) (Definition, bool) {
	for _, def := range catalog {
		if def.Code == code {
			return def, true
		}
	}
	return Definition{}, false
}
