package mongy

// Dispatch selects the strategy for a nested value by its kind, bound to cfg.
//
// Precedence, first match wins:
//  1. Int      -> Integer
//  2. Date     -> Date
//  3. DateTime -> DateTime
//  4. Mapping  -> Mapping
//  5. Sequence -> Sequence
//  6. anything else (String, Bool, Float, Opaque, Null) -> String
func Dispatch(v Value, cfg Config) Strategy {
	switch v.Kind() {
	case KindInt:
		return &integerStrategy{cfg: cfg}
	case KindDate:
		return &dateStrategy{cfg: cfg}
	case KindDateTime:
		return &dateStrategy{cfg: cfg, datetime: true}
	case KindMapping:
		return &mappingStrategy{cfg: cfg}
	case KindSequence:
		return &sequenceStrategy{cfg: cfg}
	default:
		return &stringStrategy{cfg: cfg}
	}
}
