// Package identity defines the identity provider boundary.
//
// The provider owns credential verification, account creation, and
// password reset delivery. Session management consumes it through the
// Provider interface and reacts to identity-state changes via
// SubscribeIdentityChanges.
//
// Provider failures carry stable auth/* codes (ProviderError); the
// session layer maps each code to a fixed user-presentable message.
//
// LocalProvider is an in-process implementation with bcrypt credential
// hashes and failed-attempt lockout, in the spirit of the in-memory
// repositories elsewhere in this codebase: development and tests run
// against it, production wires an external provider behind the same
// interface.
package identity
