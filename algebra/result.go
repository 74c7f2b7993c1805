package algebra

import (
	"github.com/katalvlaran/algex/matrix"
	"github.com/katalvlaran/algex/numeric"
)

// Result is the shared outcome envelope of every operation. Operations
// never return a Go error for domain failures; they report through OK/Err
// so callers always receive the recorded steps alongside the failure.
type Result struct {
	// OK is true when the operation succeeded.
	OK bool

	// Err holds the human-readable failure message when OK is false.
	Err string

	// Steps is the recorded history, nil when no collecting Recorder was
	// attached.
	Steps []Step
}

// MatrixResult is the outcome of a matrix-valued operation (multiply, sum).
type MatrixResult struct {
	Result

	// A and B are the decoded, mode-normalized operands.
	A, B matrix.Matrix

	// C is the computed matrix; zero value on failure.
	C matrix.Matrix

	// Formatted is C rendered cell by cell under the requested format.
	Formatted [][]string
}

// ScalarResult is the outcome of a scalar-valued operation (determinant).
type ScalarResult struct {
	Result

	// M is the decoded, mode-normalized operand.
	M matrix.Matrix

	// Value is the computed scalar; zero value on failure.
	Value numeric.Number

	// Formatted is Value rendered under the requested format.
	Formatted string
}

// failure builds the error envelope with the recorded steps attached.
func failure(rec recorder, err error) Result {
	rec.fail(err.Error())
	rec.end(false)

	return Result{OK: false, Err: err.Error(), Steps: rec.steps()}
}
