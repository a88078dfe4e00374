// Package purefn wraps pure functions into memoized closures.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Two shapes are offered, mirroring package pure:
//   - TableizeI1O1 / TableizeI1O2: remember every input (a lazy table).
//   - LastI1O1 / LastI1O2: remember only the latest input (a one-entry table).
//
// The O2 variants take functions returning (value, error); errors are passed
// through and never remembered.
//
// Each call returns a new closure with private state, so two closures built
// from the same function never share entries:
//
//	swatch1 := purefn.LastI1O1(render)
//	swatch2 := purefn.LastI1O1(render)
//
// The closures are not safe for concurrent use.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
