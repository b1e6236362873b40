// Package scan implements candidate file discovery and dispatch. A single
// file root is always scanned regardless of extension; a directory root is
// walked recursively and filtered to the recognized extensions. Each
// candidate is routed to the text reader or the database reader by
// extension, and per-file failures are logged and skipped so one bad file
// never aborts the scan.
package scan
