// Package csvout streams validated frames to a CSV file. Rows are written
// and flushed as they arrive so captures of any length run in constant
// memory, and the file opens with a UTF-8 byte order mark for spreadsheet
// compatibility.
package csvout
