package mongy

// StrategyKind names a strategy in struct tags: `serialize:"datetime"`.
type StrategyKind string

const (
	StrategyString   StrategyKind = "string"
	StrategyID       StrategyKind = "id"
	StrategyInteger  StrategyKind = "int"
	StrategyDate     StrategyKind = "date"
	StrategyDateTime StrategyKind = "datetime"
	StrategyMapping  StrategyKind = "mapping"
	StrategySequence StrategyKind = "sequence"
)

// strategyKinds maps each tag value to its constructor.
var strategyKinds = map[StrategyKind]func(...Option) Strategy{
	StrategyString:   String,
	StrategyID:       ID,
	StrategyInteger:  Integer,
	StrategyDate:     Date,
	StrategyDateTime: DateTime,
	StrategyMapping:  Mapping,
	StrategySequence: Sequence,
}

// IsValidStrategyKind returns true if kind names a known strategy.
func IsValidStrategyKind(kind StrategyKind) bool {
	_, ok := strategyKinds[kind]
	return ok
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	_, ok := maskers[mt]
	return ok
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	_, ok := hashers[algo]
	return ok
}
