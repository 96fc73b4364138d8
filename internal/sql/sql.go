// Package sql embeds the database schema and the sqlc query sources.
package sql

import (
	_ "embed"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL applied to an empty database.
func Schema() string {
	return schema
}
