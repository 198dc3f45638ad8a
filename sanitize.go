package mongy

// maskedStrategy masks the string output of an inner strategy.
type maskedStrategy struct {
	masker Masker
	inner  Strategy
}

// Masked returns a strategy that masks the string output of inner with the
// built-in masker for mt. Non-string output, and any output when mt is
// unknown, is returned unchanged.
func Masked(mt MaskType, inner Strategy) Strategy {
	m, _ := MaskerFor(mt)
	return &maskedStrategy{masker: m, inner: inner}
}

func (s *maskedStrategy) Serialize(v Value) any {
	out := s.inner.Serialize(v)
	str, ok := out.(string)
	if !ok || str == "" || s.masker == nil {
		return out
	}
	return s.masker.Mask(str)
}

// redactedStrategy replaces present values with a fixed string.
type redactedStrategy struct {
	replacement string
}

// Redacted returns a strategy that replaces every present value with
// replacement. Absent values are returned unchanged.
func Redacted(replacement string) Strategy {
	return &redactedStrategy{replacement: replacement}
}

func (s *redactedStrategy) Serialize(v Value) any {
	if IsNullOrEmpty(v) {
		return v.Interface()
	}
	return s.replacement
}

// hashedStrategy hashes the string output of an inner strategy.
type hashedStrategy struct {
	hasher Hasher
	inner  Strategy
}

// Hashed returns a strategy that one-way hashes the string output of inner
// with the built-in hasher for algo. If hashing fails, or algo is unknown,
// the inner output is returned unchanged.
func Hashed(algo HashAlgo, inner Strategy) Strategy {
	h, _ := HasherFor(algo)
	return &hashedStrategy{hasher: h, inner: inner}
}

func (s *hashedStrategy) Serialize(v Value) any {
	out := s.inner.Serialize(v)
	str, ok := out.(string)
	if !ok || str == "" || s.hasher == nil {
		return out
	}
	sum, err := s.hasher.Hash([]byte(str))
	if err != nil {
		return out
	}
	return sum
}
