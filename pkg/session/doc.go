// Package session owns the authentication lifecycle.
//
// The Manager holds the single process-wide Session snapshot. The
// snapshot is replaced wholesale on every identity-change event; it is
// never partially mutated, so consumers can hold a copy safely.
// Consumers either poll Current or register a Subscriber.
//
// Ordering contract: role resolution for a freshly authenticated
// identity completes before the session is reported ready (Loading is
// false only afterwards). Logout always succeeds locally even when the
// provider sign-out fails.
//
// Auth failures surface as structured errors with fixed user-facing
// messages; see errors.go for the provider-code mapping table.
package session
