// Package async provides utilities for parallel task execution with
// result collection.
//
// The [RunAll] function executes multiple operations concurrently and
// returns every result in task order. It is used to fan out independent
// per-region work across goroutines while keeping reporting order
// deterministic.
package async
