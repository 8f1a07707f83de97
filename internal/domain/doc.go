// Package domain contains shared domain types used across entity sub-packages.
// Entity types live in domain/content. This root package holds the sentinel
// errors and the structured error types (ValidationError, StoreError) shared
// by every layer.
package domain
