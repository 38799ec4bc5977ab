// Package hours provides a terminal reader for the Divine Hours prayer
// offices. It fetches the day's office page from a fixed source, extracts
// a canonical structured document from its semi-structured HTML, renders
// it reader-friendly, and keeps a local record of completed days alongside
// a small prayer journal.
//
// This package contains domain types, interfaces, and the pure extraction
// pipeline, following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// sqlite/, goquery/).
package hours
