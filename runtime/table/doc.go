// Package table implements the dining table coordinator: the shared state
// table guarded by a single state mutex, one exclusive lock per fork, the
// fork-availability condition bound to the state mutex, and the admission
// gate limiting the number of hungry or eating philosophers to size-1.
//
// A philosopher goes through the table in a fixed order:
//
//	EnterTable -> SetState(hungry) -> AcquireForks -> SetState(eating)
//	-> SetState(thinking) -> ReleaseForks -> LeaveTable
//
// Forks are always locked lowest index first, and the wait for neighbours to
// stop eating is re-validated under the state mutex after every wake-up.
package table
