// Package async provides small generic helpers for running work in the
// background and waiting on it, plus a context-aware Sleep.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller can block with Await, bound the wait with AwaitContext or
// AwaitWithTimeout, or poll with IsComplete. WaitAll and WaitAny coordinate
// several futures.
//
// # Usage
//
//	future := async.Async(ctx, plain, func(ctx context.Context, p string) (string, error) {
//	    return expensiveHash(p)
//	})
//
//	hash, err := future.AwaitContext(ctx)
//	if err != nil {
//	    return err
//	}
//
//	// pause between polls without ignoring cancellation
//	if err := async.Sleep(ctx, 500*time.Millisecond); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Futures resolve with whatever error the function returned. AwaitContext
// returns ctx.Err() when the context ends first and AwaitWithTimeout returns
// ErrTimeout; in both cases the background function keeps running to
// completion.
package async
