// Package properties provides an ordered key/value model for Java-style
// .properties files.
//
// A [Document] keeps every original line, so a document that is parsed and
// serialized without modification reproduces its input byte for byte. Edits
// go through [Document.Set], which rewrites the matching entry in place or
// appends a new one. Config templates are edited through this model instead
// of substring replacement.
package properties
