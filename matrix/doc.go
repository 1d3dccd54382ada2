// Package matrix provides a dense, row-major float64 matrix with region
// copies, origin-offset resize and a memoized determinant.
//
// The matrix package provides:
//
//   - Dense: a rows×cols buffer with bounds-checked At/Set that return
//     errors instead of panicking.
//   - Region engine: SubmatrixAt (independent copy of a window) and
//     ApplyRegion (copy a source-shaped region of another Matrix into m).
//   - Resize engine: ResizeAt swaps the buffer for a new shape and keeps the
//     cells that overlap through an origin offset; everything else is zero.
//   - Determinant: a cached wrapped-diagonal product-sum, cleared by every
//     write (Set, Map, ResizeAt, ApplyRegion). Non-square matrices report NaN.
//   - Traversal: Cells (iter.Seq2 of coordinates), Loop, All, Any, Do, Map.
//
// Errors: every failure wraps ErrInvalidArgument; the narrower sentinels
// (ErrBadShape, ErrBadRegion, ErrOutOfRange, ErrNilMatrix, ErrNonSquare,
// ErrNaNInf) can be matched with errors.Is.
//
// Concurrency:
//
// Each *Dense carries one mutex, held by ResizeAt, CloneDense/Clone,
// Determinant and DiagonalTerms. Those serialize against each other on a
// shared instance. Element access (At, Set), Map, the region engine and the
// traversal primitives do NOT take it: a ResizeAt running concurrently with
// them may be observed as a stale shape or an out-of-range access while the
// buffer is swapped. Share a *Dense across goroutines only if writers and
// readers agree on that envelope. Distinct instances need no coordination.
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{5, 10, 2}, {6, 8, 1}, {5, 44, 0}})
//	m.Determinant() // 278
package matrix
