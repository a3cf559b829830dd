// Package tracking holds deliverer position samples and the order breadcrumbs derived from them.
package tracking
