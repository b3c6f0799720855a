// Package fetcher wraps net/http for JSON APIs.
//
// Fetch sends one request and always returns a Response describing what
// happened: decoded data on a 2xx answer, the server's "message" or its
// reason phrase otherwise, and Status 0 with the failure text when no
// response arrived. Callers branch on Response.Error instead of a Go error.
//
//	client := fetcher.New(fetcher.WithTimeout(10 * time.Second))
//	res := fetcher.Get[[]Post](ctx, client, "https://api.example.com/posts", fetcher.Options{
//	    Token: accessToken,
//	})
//	if res.Error != "" {
//	    return res.Error
//	}
//
// The default transport is a pooled go-cleanhttp client; requests are never
// retried.
package fetcher
