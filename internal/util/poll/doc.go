// Package poll provides a bounded, fixed-interval wait for boolean conditions.
//
// The [Until] function checks a condition immediately and then at a fixed
// interval until it holds or the timeout elapses. It is used for every
// readiness check of a bring-up; interval and timeout are always chosen by
// the caller.
package poll
