package equality

import "errors"

// ErrConflictingINF is returned by TWA's strict mode when two incident
// enabled edges both assert INF with disagreeing values. Non-strict mode
// never returns this error; it resolves the conflict by encounter order
// instead (see doc.go).
var ErrConflictingINF = errors.New("equality: conflicting INF messages on variable")
