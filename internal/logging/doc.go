// Package logging constructs the slog loggers used by the CLI.
//
// Commands log structured events (container created, history recorded) in
// either console or json format per configuration. The attr helpers keep
// call sites uniform without importing log/slog everywhere.
package logging
