// Package types defines the review-scheduling model: gap tiers, review
// topics, the ordered topic collection, the storage configuration, and the
// standard errors shared by the store and the CLI.
//
// Nothing in this package performs I/O. Functions that depend on the date
// take the current time explicitly, or read it from the Collection's clock.
package types
