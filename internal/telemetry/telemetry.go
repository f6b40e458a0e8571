// Package telemetry wires structured debug logging into the core
// algorithms without threading a logger through every exported
// signature. It defaults to a no-op logger; code inside this module that
// wants visibility into Sign/Verify/Convert/ChangeRepresentation calls
// SetLogger once at startup. Being internal, the package cannot be
// imported from outside this module.
package telemetry

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger replaces the package-level logger. Passing zerolog.Nop()
// restores silence.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Debug starts a debug-level event, or a disabled event if no logger has
// been set.
func Debug() *zerolog.Event {
	return logger.Debug()
}
