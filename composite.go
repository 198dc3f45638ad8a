package mongy

// mappingStrategy serializes each entry of a mapping with a dispatched child strategy.
type mappingStrategy struct {
	cfg Config
}

// Mapping returns a strategy that recurses into mapping values until the
// depth budget is spent. Keys listed with WithExclude are dropped from the
// direct output only.
func Mapping(opts ...Option) Strategy {
	return &mappingStrategy{cfg: NewConfig(opts...)}
}

func (s *mappingStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}
	if s.cfg.exceeded() {
		return nil
	}
	if v.kind != KindMapping {
		return v.Interface()
	}

	child := s.cfg.descend()
	out := make(map[string]any, len(v.entries))
	for _, e := range v.entries {
		if s.cfg.Excluded(e.Key) {
			continue
		}
		out[e.Key] = Dispatch(e.Value, child).Serialize(e.Value)
	}
	return out
}

// sequenceStrategy serializes each item of a sequence with a dispatched child strategy.
type sequenceStrategy struct {
	cfg Config
}

// Sequence returns a strategy that recurses into sequence values until the
// depth budget is spent.
//
// If any serialized item is falsy (nil, "", 0, false, or an empty mapping or
// sequence) the whole sequence collapses to an empty one. This all-or-nothing
// rule is inherited behavior and is kept as is.
func Sequence(opts ...Option) Strategy {
	return &sequenceStrategy{cfg: NewConfig(opts...)}
}

func (s *sequenceStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}
	if s.cfg.exceeded() {
		return nil
	}
	if v.kind != KindSequence {
		return v.Interface()
	}

	child := s.cfg.descend()
	out := make([]any, 0, len(v.items))
	for _, item := range v.items {
		out = append(out, Dispatch(item, child).Serialize(item))
	}
	for _, item := range out {
		if isEmptyOutput(item) {
			return []any{}
		}
	}
	return out
}
