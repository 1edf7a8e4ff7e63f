// Package csvsource reads CSV documents into header-keyed records.
//
// Parse tokenizes any io.Reader with encoding/csv. The first row is the
// header; a leading UTF-8 byte order mark is dropped. Rows whose field count
// differs from the header are kept but reported as ParseError values
// ("Too few fields: expected 3 fields but parsed 2"), so a validator can
// refuse the document before looking at its data. The raw bytes are hashed
// with xxh3 while reading; Table.Checksum identifies the exact input of a
// validation run.
//
// Opener resolves source URIs:
//
//	data/users.csv         local path
//	file:///srv/users.csv  local path
//	s3://bucket/users.csv  S3 object (requires WithS3)
//
// and "-" reads standard input.
//
// S3 errors are classified into package errors (ErrFileNotFound,
// ErrAccessDenied, ...) so callers can branch with errors.Is.
package csvsource
