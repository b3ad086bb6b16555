// Package render turns API response data into output for the terminal.
//
// All data is first normalized into a Value: a Scalar, an insertion-ordered
// *Mapping, or a Sequence. Render then produces either indented JSON, which
// keeps every value intact, or text:
//
//   - a single mapping prints as "key: value" lines
//   - a sequence of mappings prints as a table, or as one block per record
//     once there are more than MultilineThreshold columns
//   - a sequence of scalars prints one value per line
//
// In text mode, fields that look like binary content (see IsBinary) are
// replaced by "[BINARY DATA - N bytes]".
package render
