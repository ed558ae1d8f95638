// Package regtext reads and writes the textual .reg format for startup
// entries.
//
// Export writes one section with string values (REG_EXPAND_SZ as hex(2)).
// Parse accepts version 5 files in UTF-16LE or UTF-8 and REGEDIT4 files in
// Windows-1252, and returns the set and delete edits of the sections that
// name the requested key.
package regtext
