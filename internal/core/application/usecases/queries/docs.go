// Package queries contains the read side of the marketplace. Handlers read directly
// from Postgres through GORM and return flat response structs; none of them write.
package queries
