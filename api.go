// Package mongy projects schemaless documents into plain maps, lists and
// scalars that any codec can encode.
//
// A Schema binds document fields to strategies. Scalar strategies coerce a
// value to a string, an integer or a formatted date. Composite strategies walk
// nested mappings and sequences, choosing a strategy for each element from its
// runtime kind, and stop descending once the configured depth is reached.
// Below that depth a nested document collapses to its identifier, when it has
// one, and is dropped otherwise.
//
// # Values
//
// Documents arrive as native Go or BSON values. ValueOf normalizes them into a
// Value with one of a fixed set of kinds:
//
//   - Null, Bool, Int, Float, String
//   - Date (civil.Date) and DateTime (time.Time, primitive.DateTime)
//   - Mapping (bson.D keeps document order, maps are sorted by key)
//   - Sequence (bson.A, []any, typed slices)
//   - Opaque (ObjectIDs, decimals and anything else carried as-is)
//
// Types that implement Valuer supply their own Value and skip reflection.
//
// # Schemas
//
// Schemas are declared in code:
//
//	schema := mongy.NewSchema("Post",
//	    mongy.Bind("title", mongy.String()),
//	    mongy.Bind("created_date", mongy.DateTime(mongy.WithDateTimeFormat("%Y-%m-%d"))),
//	    mongy.Bind("author", mongy.Mapping(mongy.WithMaxDepth(1), mongy.WithExclude("email"))),
//	    mongy.Bind("comments", mongy.Sequence(mongy.WithMaxDepth(1))),
//	)
//
// or through struct tags, resolved once per type by SchemaOf:
//
//	type Post struct {
//	    Title   string    `bson:"title" serialize:"string"`
//	    Created time.Time `bson:"created_date" serialize:"datetime" serialize.datetimeformat:"%Y-%m-%d"`
//	    Author  bson.D    `bson:"author" serialize:"mapping" serialize.maxdepth:"1" serialize.exclude:"email"`
//	    Email   string    `bson:"email" serialize:"string" serialize.mask:"email"`
//	    Token   string    `bson:"token" serialize.redact:"***"`
//	}
//
//	schema, err := mongy.SchemaOf[Post]()
//
// Exclusions apply to the fields of the mapping they are declared on, not to
// deeper levels.
//
// # Projection
//
// A Projector reads records from a Source and serializes them lazily:
//
//	p := mongy.NewProjector(schema, mongy.Documents(docs...))
//	for rec, err := range p.All(ctx) {
//	    ...
//	}
//
//	data, err := p.MarshalAll(ctx, json.New())
//
// The mongo subpackage provides a Source over a driver cursor that can also
// count matching documents for Total.
//
// # Sanitizing
//
// Masked, Hashed and Redacted wrap a strategy so sensitive fields leave the
// projection in a safe form. Mask types: ssn, email, phone, card, ip, uuid,
// iban, name. Hash algorithms: argon2, bcrypt, sha256, sha512.
//
// # Codecs
//
// The following codecs are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Signals
//
// Schema registration, projector creation and stream progress are emitted as
// capitan signals. Hook SignalStreamComplete to observe record counts,
// durations and failures.
package mongy
