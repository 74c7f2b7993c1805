// Package algebra composes the algex core into user-facing operations:
// determinant via Gaussian elimination, matrix multiply, and matrix sum,
// each driven by raw text input.
//
// The algebra package provides:
//
//   - Determinant / Multiply / Sum — decode the text, normalize every entry
//     to the given numeric mode, validate dimensions, compute, and format
//     the result; any failure is converted into a structured Result with a
//     human-readable message instead of an error return.
//   - DecodeMatrix — the lenient entry decoder: a matrix literal decodes as
//     written, a vector promotes to 1×N, a bare scalar to 1×1.
//   - Step recording — an injectable Recorder sink observing
//     orchestration-level milestones (parse, validate, each row operation,
//     final result). Recording never alters control flow, and the
//     arithmetic core below this package knows nothing about it. Trace
//     collects steps in memory; LogSink streams them through zerolog.
//
// The numeric mode is an explicit argument to every operation; callers that
// need non-default behavior build a numeric.Mode once and pass it in.
package algebra
