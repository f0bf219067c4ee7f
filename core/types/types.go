// Package types defines core domain types shared across all layers.
// This package contains NO pricing logic - only type definitions and
// their small helpers.
package types
