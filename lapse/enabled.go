//go:build !lapse_off
// +build !lapse_off

package lapse

// enabled gates every Sampler operation. Building with the lapse_off
// tag flips it to false (see disabled.go), turning the whole instrument
// into a no-op while leaving call sites untouched.
const enabled = true
