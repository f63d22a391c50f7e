// Package repo holds the ent-generated database client. The generated
// code is not committed; run `go generate ./internal/repo` after editing
// any schema under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
