// Package algo implements sorting and search algorithms as step generators.
//
// Every algorithm is exposed as a [Generator]: given an input array it
// returns an iterator that yields one array snapshot per visible step.
// A front-end pulls one snapshot per frame, so algorithmic progress is
// decoupled from the rendering frame rate.
//
//   - [Bubble]: adjacent swaps with early exit
//   - [Merge]: top-down merge sort, stable
//   - [Quick]: Lomuto partition with the last element as pivot
//   - [Radix]: LSD base-10 radix sort
//   - [Linear]: linear scan for a target value
//
// # Snapshots
//
// Generators never mutate the caller's slice and every yielded snapshot
// is a fresh copy, so consumers may keep or modify them freely. Breaking
// out of a range loop stops the generator without further work.
package algo
