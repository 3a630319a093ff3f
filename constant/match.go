package constant

// Scoring thresholds
const (
	// ScoreLimit ends the match when either player reaches it
	ScoreLimit = 25

	// AmbientThreshold switches the background once a player reaches it
	AmbientThreshold = 20
)

// Step sizes in pixels (and degrees) per frame
const (
	StepSizeSlow    = 2
	StepSizeDefault = 4
	StepSizeFast    = 6
)

// Coin values per kind
const (
	CoinValueDefault = 1
	CoinValueSpeed   = 2
	CoinValueSlow    = -1
)

// Initial coin population
const (
	InitialDefaultCoins = 10
	InitialSpeedCoins   = 1
)

// CoinKindRange is the exclusive upper bound of the replacement-kind draw
// 0 → speed, 1 → slow, anything else → default
const CoinKindRange = 8
