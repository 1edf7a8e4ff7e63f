package csvsource

// Record maps header names to raw field values. A header without a key
// in the map had no value in the source row.
type Record map[string]string

// ParseError describes a data row the tokenizer could not parse cleanly.
type ParseError struct {
	// Row is the 0-based index of the data row (the header row is not counted).
	Row     int
	Message string
}

// Table is a tokenized CSV document.
type Table struct {
	Headers     []string
	Records     []Record
	ParseErrors []ParseError
	// Checksum is the xxh3 hash of the raw bytes read from the source.
	Checksum uint64
	// Bytes is the number of raw bytes read.
	Bytes int64
}
