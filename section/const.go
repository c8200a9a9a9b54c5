package section

// HeaderSize is the fixed size, in bytes, of the stream header: magic,
// version, and the packed flag byte. Every count that follows in the
// stream (file_count, account_count, string_pool_size, entry_count,
// transaction_count, bigint_count, commodity_count) is written at its own
// point, not gathered into this header.
const HeaderSize = 9

// SourceEntryFixedSize is the fixed portion of one source-file record: a
// uint64 mtime (unix microseconds), followed by the source path written
// as a streamed string, whose length is therefore not part of this
// constant.
const SourceEntryFixedSize = 8

// AccountFixedSize is the fixed portion of one account record: ident,
// parent identifier (format.NoneIdent for the root), depth, and child
// count, each a uint32, followed by the account's name and note written
// as streamed strings.
const AccountFixedSize = 16

// CommodityFixedSize is the fixed portion of one commodity record: a
// uint32 ident, a uint8 precision, and a uint32 flag word, followed by
// the commodity's symbol, name, and note written as streamed strings.
const CommodityFixedSize = 9
