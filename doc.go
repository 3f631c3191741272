// Package client provides an HTTP client for the Campfire Manager API.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes one typed
// method per backend endpoint: health, Campfire event and club imports,
// club lookups, token registration, and session management.
//
// # Basic Usage
//
//	c := client.New("http://127.0.0.1:8000/api")
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	event, err := c.ImportCampfireEvent(ctx, "123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use [NewFromEnv] to resolve the base URL from the CAMPFIRE_API_BASE_URL
// environment variable instead of passing it explicitly.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
//
// # Authentication
//
// Session-scoped operations (logout, account linking, club history imports)
// attach an Authorization header of the form "Token <value>" whenever a token
// is held. The token is owned by the Client: seed it with [WithAuthToken],
// or manage it over the client's lifetime with [Client.SetAuthToken] and
// [Client.ClearAuthToken], typically from the result of [Client.LoginUser].
// Operations that the backend serves anonymously never attach the header,
// even when a token is set.
//
// # Errors
//
// Application failures (non-2xx responses) surface as [*APIError] carrying
// the HTTP status code and the backend's detail message, so callers can
// branch with [errors.As] instead of matching message text. Transport
// failures are wrapped errors naming the method and path. The client
// performs no retries unless configured to via [WithRetryCount]; there is
// no request timeout beyond what the caller's context imposes.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZapLogger] for a
// ready-made [go.uber.org/zap] adapter. The default [NoopLogger] discards
// all log output. Ensure your implementation redacts credentials and tokens
// from request and response bodies before persisting logs.
package client
