// Package testing provides fixtures and helpers for tests of mongy projections.
package testing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jayakrishnandingit/mongy"
	"go.mongodb.org/mongo-driver/bson"
)

// Now is the fixed creation time used by the fixtures.
var Now = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// DateTimeFormat is the post creation date pattern used by PostSchema.
const DateTimeFormat = "%Y-%m-%d %H:%M:%S"

// Post returns a blog post document with a nested author and one comment.
func Post(id string) mongy.Document {
	return mongy.Document{
		"_id":          id,
		"title":        "ea molestias quasi exercitationem repellat qui ipsa sit aut",
		"body":         "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad",
		"created_date": Now,
		"author": bson.D{
			{Key: "name", Value: "Leanne Graham"},
			{Key: "username", Value: "Bret"},
			{Key: "dob", Value: time.Date(1988, 8, 5, 0, 0, 0, 0, time.UTC)},
			{Key: "email", Value: "Sincere@april.biz"},
			{Key: "address", Value: bson.D{
				{Key: "street", Value: "Kulas Light"},
				{Key: "suite", Value: "Apt. 556"},
				{Key: "city", Value: "Gwenborough"},
				{Key: "zipcode", Value: "92998-3874"},
				{Key: "geo", Value: bson.D{
					{Key: "lat", Value: -37.3159},
					{Key: "lng", Value: 81.1496},
				}},
			}},
			{Key: "phone", Value: "1-770-736-8031 x56442"},
			{Key: "website", Value: "hildegard.org"},
			{Key: "company", Value: bson.D{
				{Key: "name", Value: "Romaguera-Crona"},
				{Key: "catchPhrase", Value: "Multi-layered client-server neural-net"},
				{Key: "bs", Value: "harness real-time e-markets"},
			}},
		},
		"comments": bson.A{
			bson.D{
				{Key: "name", Value: "odio adipisci rerum aut animi"},
				{Key: "created_date", Value: Now},
				{Key: "email", Value: "Nikita@garfield.biz"},
				{Key: "body", Value: "quia molestiae reprehenderit quasi aspernatur"},
			},
		},
	}
}

// Posts returns n post documents with ids "1" through "n".
func Posts(n int) []mongy.Document {
	docs := make([]mongy.Document, n)
	for i := range docs {
		docs[i] = Post(strconv.Itoa(i + 1))
	}
	return docs
}

// PostSchema returns the schema for Post documents, recursing into the
// author and comments up to maxDepth.
func PostSchema(maxDepth int) *mongy.Schema {
	return mongy.NewSchema("Post",
		mongy.Bind("title", mongy.String()),
		mongy.Bind("body", mongy.String()),
		mongy.Bind("created_date", mongy.DateTime(mongy.WithDateTimeFormat(DateTimeFormat))),
		mongy.Bind("author", mongy.Mapping(mongy.WithMaxDepth(maxDepth))),
		mongy.Bind("comments", mongy.Sequence(mongy.WithMaxDepth(maxDepth))),
	)
}

// TaggedPost declares the post schema through struct tags. The author's
// email and phone are excluded.
type TaggedPost struct {
	Title    string    `bson:"title" serialize:"string"`
	Body     string    `bson:"body" serialize:"string"`
	Created  time.Time `bson:"created_date" serialize:"datetime" serialize.datetimeformat:"%Y-%m-%d %H:%M:%S"`
	Author   bson.D    `bson:"author" serialize:"mapping" serialize.maxdepth:"1" serialize.exclude:"email,phone"`
	Comments bson.A    `bson:"comments" serialize:"sequence" serialize.maxdepth:"1"`
}

// Collect drains p, failing tb on the first error.
func Collect(tb testing.TB, p *mongy.Projector) []map[string]any {
	tb.Helper()
	var out []map[string]any
	for rec, err := range p.All(context.Background()) {
		if err != nil {
			tb.Fatalf("All() error: %v", err)
		}
		out = append(out, rec)
	}
	return out
}
