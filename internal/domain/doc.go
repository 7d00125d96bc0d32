// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/identity).
// This root package holds the error taxonomy, validation types, and the
// subscription phase model shared by every real-time channel.
package domain
