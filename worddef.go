// Package worddef provides a command-line dictionary lookup client for
// application launchers. It queries a DICT protocol (RFC 2229) server,
// parses the returned definitions, and assembles them into the bulk-text
// result entries a launcher renders.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or protocol (e.g., dict/, viper/, slog/).
package worddef
