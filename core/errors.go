package core

import "errors"

// ErrUnknownAlgorithm indicates New was called with an Algorithm value
// other than ADMM or TWA.
var ErrUnknownAlgorithm = errors.New("core: unknown algorithm")

// ErrGraphBusy indicates a structural mutation (SetFactorEnabled,
// SetLearningRate) was attempted while Iterate is running its factor
// sweep, variable sweep or convergence check (spec.md §7: "undefined...
// implementers should detect with a debug guard"). The onIterate callback
// phase is not guarded. It is reported as a panic, not a returned error, since the
// mutating calls have no error-return channel in the external interface.
var ErrGraphBusy = errors.New("core: structural mutation attempted during an active iteration")
