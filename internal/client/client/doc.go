// Package client talks to the recipe REST backend.
//
// # Overview
//
// Gateway is the transport contract (Get/Post/Put/Delete against paths
// relative to the API base URL). HTTPClient implements it over net/http:
//
//   - every request asks the TokenSource for the current token and sends it
//     as "Authorization: Bearer <token>" when present;
//   - every request carries an X-Request-ID for log correlation;
//   - an optional token-bucket limiter paces outgoing calls;
//   - a fixed per-request timeout applies (10s by default).
//
// Successful responses are decoded as-is into the caller's envelope, so the
// caller can inspect "success" itself. Nothing is retried or cached.
//
// # Error Handling
//
//   - *ServerError (errors.Is(err, ErrServer)): the backend answered with an
//     error status; Message is the server's "message" or DefaultServerMessage.
//   - *NetworkError (errors.Is(err, ErrNetwork)): no response at all; carries
//     the attempted URL and the configured base URL.
//   - ErrTransport: anything else.
package client
