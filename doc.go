// Package tillbook keeps the books of a small retail operation.
//
// It records a chart of accounts, double-entry transactions between those
// accounts, stock levels with a daily opening/closing roll-over and the
// end-of-shift cash reconciliation. A [Book] aggregates all collections; it is
// loaded from and saved to a keyed blob store through a [Repository].
//
// Every collection is persisted independently as JSONL (one record per line,
// with a stable field order) so that the data stays human-readable.
//
// This package is the foundation of the `tb` command-line tool.
package tillbook
