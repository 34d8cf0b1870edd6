// Package errors provides error handling conventions for the flowmind CLI.
//
// It re-exports the constructors of github.com/cockroachdb/errors ([New],
// [Newf], [Wrap], [Wrapf], [Mark]) so callers get stack traces without
// importing it directly, and defines sentinel errors, an [ExitError] type
// for CLI exit codes, and the exit code constants.
//
// # Sentinel Errors
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // input file missing
//	}
//
// Decoders attach [ErrDecode] with [Mark] so the parser's own message is
// kept while the failure class stays matchable.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): Invalid input, invalid document or configuration
//   - ExitSystem (2): I/O or permission failures
//
// [ExitCode] maps any error to the code main should exit with.
package errors
