// Package filesystem abstracts read-only filesystem access behind the
// Provider interface, enabling production use with the OS filesystem and
// testing with an in-memory tree.
package filesystem
