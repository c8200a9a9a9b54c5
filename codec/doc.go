// Package codec implements ledgerbin's journal binary format driver:
// Writer and Reader, built on package section's fixed record shapes and
// package wire's primitive I/O. This is the component SPEC_FULL.md calls
// the "journal codec (driver)" — the write/read sequence of spec.md §4.5,
// including the account-tree and commodity-table symbol-table codecs of
// §4.3, the amount codec of §4.2, and the arena-backed entry loader of
// §4.4.
package codec
