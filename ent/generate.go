// Package ent holds the schema definitions. The client code is generated;
// run `go generate ./ent` after changing any schema. The sql/lock feature is
// required for the queue's FOR UPDATE SKIP LOCKED claim.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
