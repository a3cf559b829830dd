// Package errs holds the typed errors shared by the domain, the use cases and the
// adapters of the marketplace.
//
// Every error type wraps a sentinel (ErrObjectNotFound, ErrTransitionIsInvalid and so on)
// so callers classify failures with errors.Is and read details with errors.As.
// The HTTP adapter maps the sentinels onto status codes.
//
// Messages are always rendered on a single line.
package errs
