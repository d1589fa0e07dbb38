// Package kernel contains shared value objects used by all domain models:
// UUID identifiers and Money amounts. These types are immutable, validated at
// construction, and safe for concurrent use.
package kernel
