// Package trace provides closest.Tracer implementations.
//
// The solvers in package closest never print. Callers that want to see what
// the divide-and-conquer algorithm is doing attach a tracer with
// closest.WithTracer:
//
//   - Recorder keeps every event in memory, in emission order. The render
//     package turns a recording into a figure with dividing lines and strip
//     bands; tests use it to assert on the event stream.
//   - Logger forwards every event to a *slog.Logger as a structured record.
//
// Both types are meant for a single run at a time and are not safe for
// concurrent use.
package trace
