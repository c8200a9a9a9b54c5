// Package section defines the low-level binary structures and constants
// for the ledgerbin journal format.
//
// This package provides the fixed-size structural pieces that frame a
// journal stream: the leading stream header, and the fixed portions of
// the source-file and account and commodity records. Everything else —
// strings, counts, the entry/transaction records — is variable-length or
// back-patched and handled directly by package codec using package wire.
//
// # Stream Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (9 bytes, fixed): Magic, FormatVersion, Flag      │
//	├─────────────────────────────────────────────────────────┤
//	│ file_count (uint64)                                      │
//	│ file_count × [mtime(8) + streamed path]                  │
//	├─────────────────────────────────────────────────────────┤
//	│ account_count (uint64)                                   │
//	│ master account, recursive pre-order                      │
//	│  (each: ident(4) + parent_ident(4) + depth(4) +          │
//	│   child_count(4) + streamed name/note)                   │
//	├─────────────────────────────────────────────────────────┤
//	│ string_pool_size (uint64, uncompressed)                  │
//	│ compressed_pool_size (uint64)                             │
//	│ string pool bytes (compress.Codec per format.HeaderFlag) │
//	├─────────────────────────────────────────────────────────┤
//	│ entry_count, transaction_count (uint64 each)             │
//	│ bigint_count (uint64, back-patched)                      │
//	│ commodity_count (uint64)                                 │
//	│ commodity_count × [ident(4) + precision(1) + flags(4) +  │
//	│                    streamed symbol/name/note + history + │
//	│                    last_lookup(8) + conversion amount]   │
//	├─────────────────────────────────────────────────────────┤
//	│ entry_count × entry records (each with its transactions) │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-3    | Magic          | uint32 | format.Magic
//	4-7    | FormatVersion  | uint32 | format.FormatVersion
//	8      | Flag           | uint8  | format.HeaderFlag, packed
//
// Every count field elsewhere in the stream is a fixed uint64, per
// SPEC_FULL.md's Open Question resolution #1 — the original design left
// counts as a host-dependent "unsigned long", which is not a portable
// wire width.
package section
