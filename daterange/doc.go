// Package daterange holds the paired begin/end date control.
//
// Allowed here:
// - the Range value and its calendar Period
// - the DateInput contract plus the headless Input implementation
// - Field, which keeps two inputs in sync and publishes one composite value
// - the shortcut menu attached to a Field
//
// Not allowed here:
// - terminal rendering or key handling (see internal/tui)
// - configuration and process wiring
package daterange
