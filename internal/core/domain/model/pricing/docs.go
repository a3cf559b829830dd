// Package pricing holds the read-only pricing configuration consumed by the fee calculator:
// platform-wide defaults and per-city overrides.
package pricing
