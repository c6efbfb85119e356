// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ...". Functions wrap these with
// row/column context via fmt.Errorf("...: %w", ErrX); callers match with
// errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNonSquare signals that the table is not (n+1)×(n+1).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrHeaderMismatch signals a non-empty header cell that disagrees with
	// the row ID of the same index.
	ErrHeaderMismatch = errors.New("matrix: column header does not match row id")

	// ErrBadCell signals a weight cell that is neither empty, "None" nor a
	// number.
	ErrBadCell = errors.New("matrix: cell is not a weight")

	// ErrDuplicateID signals the same vertex ID on two rows.
	ErrDuplicateID = errors.New("matrix: duplicate vertex id")

	// ErrBadPositions signals a malformed position document.
	ErrBadPositions = errors.New("matrix: invalid positions document")
)
