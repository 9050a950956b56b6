// Package audit provides the append-only audit log for administrative
// actions.
//
// Every state-changing directory call records one Entry through Logger.
// Recording is fire-and-forget: persistence failures are logged
// operationally and never propagate to the caller. Entries are immutable
// once written; the package exposes no update or delete.
package audit
