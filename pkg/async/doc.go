// Package async runs independent jobs on their own goroutines and collects
// their results in submission order.
//
// Async starts one job and returns a Future; Map starts a job per input with
// a concurrency limit. WaitAll blocks until every future completes. A job
// whose context is already cancelled when its goroutine starts does not run
// and completes with the context error.
package async
