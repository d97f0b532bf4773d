// Package client provides an HTTP client for the Banking REST API.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries,
// connection pooling, bearer-token authentication, and pluggable logging.
//
// # Basic Usage
//
//	c, err := client.New("http://localhost:8123",
//	    client.WithRetryCount(5),
//	    client.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	if err := c.Authenticate(ctx, "testuser", "password"); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := c.TransferFunds(ctx, client.TransferRequest{
//	    FromAccount: "ACC1000",
//	    ToAccount:   "ACC1001",
//	    Amount:      decimal.NewFromFloat(100),
//	}, client.Bearer)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated before [New] returns.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries on HTTP 429 (rate limit), 500, 502, 503
// and 504, and on transient connection errors. Context cancellation,
// deadline exceeded, and DNS resolution errors are never retried. Supply
// a custom function via [WithRetryPolicy] to override this behaviour.
//
// Retries apply to every operation, including POST /transfer. If the
// server does not deduplicate transfer submissions, a retried POST can
// submit the same transfer twice; callers who cannot tolerate that
// should set [WithRetryCount] to zero.
//
// # Authentication
//
// [Client.Authenticate] obtains a bearer token from the service and
// stores it for subsequent calls. A pre-acquired token can be supplied
// with [WithAuthToken]. Operations that take an [AuthMode] attach the
// token only in [Bearer] mode; [Client.ValidateAccount] always attaches
// a stored token.
//
// # Error Handling
//
// Operations return typed errors: [*ValidationError] for bad input
// rejected before any network call, [*TransportError] for connection
// failures, [*StatusError] for non-2xx responses (including responses
// that survived exhausted retries), [*SchemaError] for 2xx responses
// with an unexpected body, and [ErrClosed] after [Client.Close]. Use
// [errors.As] and [errors.Is] to branch on them.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Ensure your implementation redacts credentials and tokens
// from request and response bodies before persisting logs.
package client
