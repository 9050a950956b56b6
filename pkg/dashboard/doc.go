// Package dashboard assembles role-specific dashboard read models from
// the user directory, the audit log, and pluggable task, attendance,
// performance, and organization providers.
package dashboard
