package mongy

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sentinel"
)

// Struct tags read when building a schema from a type.
const (
	tagName           = "bson"
	tagStrategy       = "serialize"
	tagDateFormat     = "serialize.dateformat"
	tagDateTimeFormat = "serialize.datetimeformat"
	tagMaxDepth       = "serialize.maxdepth"
	tagExclude        = "serialize.exclude"
	tagMask           = "serialize.mask"
	tagHash           = "serialize.hash"
	tagRedact         = "serialize.redact"
)

func init() {
	for _, tag := range []string{
		tagName,
		tagStrategy,
		tagDateFormat,
		tagDateTimeFormat,
		tagMaxDepth,
		tagExclude,
		tagMask,
		tagHash,
		tagRedact,
	} {
		sentinel.Tag(tag)
	}
}

// buildSchema scans T's fields and binds each tagged one.
func buildSchema[T any]() (*Schema, error) {
	spec := sentinel.Scan[T]()

	bindings := make([]Binding, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		b, ok, err := bindingFromTags(field.Name, field.Tags)
		if err != nil {
			return nil, err
		}
		if ok {
			bindings = append(bindings, b)
		}
	}

	return NewSchema(spec.TypeName, bindings...), nil
}

// bindingFromTags resolves one field's tags into a Binding.
// Fields with neither a strategy nor a redaction tag are not bound.
func bindingFromTags(goName string, tags map[string]string) (Binding, bool, error) {
	kind, hasKind := tags[tagStrategy]
	replacement, hasRedact := tags[tagRedact]
	if !hasKind && !hasRedact {
		return Binding{}, false, nil
	}

	name := documentName(goName, tags[tagName])
	if name == "" {
		return Binding{}, false, nil
	}

	if hasRedact {
		return Bind(name, Redacted(replacement)), true, nil
	}

	construct, ok := strategyKinds[StrategyKind(kind)]
	if !ok {
		return Binding{}, false, newConfigError(ErrInvalidTag, goName, kind)
	}

	var opts []Option
	if pattern, ok := tags[tagDateFormat]; ok {
		opts = append(opts, WithDateFormat(pattern))
	}
	if pattern, ok := tags[tagDateTimeFormat]; ok {
		opts = append(opts, WithDateTimeFormat(pattern))
	}
	if raw, ok := tags[tagMaxDepth]; ok {
		depth, err := strconv.Atoi(raw)
		if err != nil || depth < 0 {
			return Binding{}, false, newConfigError(ErrInvalidTag, goName, raw)
		}
		opts = append(opts, WithMaxDepth(depth))
	}
	if raw, ok := tags[tagExclude]; ok {
		opts = append(opts, WithExclude(splitList(raw)...))
	}

	s := construct(opts...)

	if mt, ok := tags[tagMask]; ok {
		if !IsValidMaskType(MaskType(mt)) {
			return Binding{}, false, newConfigError(ErrInvalidTag, goName, mt)
		}
		s = Masked(MaskType(mt), s)
	}
	if algo, ok := tags[tagHash]; ok {
		if !IsValidHashAlgo(HashAlgo(algo)) {
			return Binding{}, false, newConfigError(ErrInvalidTag, goName, algo)
		}
		s = Hashed(HashAlgo(algo), s)
	}

	return Bind(name, s), true, nil
}

// documentName follows the BSON driver: the tag's name part, or the
// lowercased Go name. "-" skips the field.
func documentName(goName, tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(goName)
	}
	return name
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
