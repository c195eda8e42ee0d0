// Package cli implements the confkeeper command set: inspecting, editing,
// saving, and resetting section-oriented configuration stores from the
// command line.
//
// Settings are resolved from CONFKEEPER_* environment variables first, then
// overridden by flags. Commands exit 0 on success, 1 on runtime errors, and
// 2 on usage errors.
package cli
