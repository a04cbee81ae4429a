//go:build lapse_off
// +build lapse_off

package lapse

// No-op build of the instrument, selected with:
//
//	go build -tags=lapse_off
//
// Samplers are still constructed and the API is unchanged, but no
// clock is read, no sample is recorded and no dataset file is created.
// With enabled constant-false the compiler discards the operation
// bodies.
const enabled = false
