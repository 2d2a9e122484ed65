// Package debug provides optional file-based debug logging.
//
// When the CAKE_DEBUG environment variable is set to a file path, or a path
// is passed to Init, debug messages are appended to that file. Otherwise,
// logging is a no-op.
package debug
