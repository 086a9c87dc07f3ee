// Package kernel contains shared value objects used across the domain model:
// identifiers, postal addresses, and person identity snapshots. All types in
// this package are immutable value objects created through validating
// constructors; their zero values are invalid.
package kernel
