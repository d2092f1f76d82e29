// Package async provides utilities for parallel task execution with
// error collection.
//
// The [RunParallel] function executes multiple operations concurrently and
// returns all of their errors joined. It is used to validate nodes in
// parallel when sequential validation is switched off.
package async
