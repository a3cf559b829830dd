// Package outbox defines messages written alongside state changes and relayed to the broker later.
package outbox
