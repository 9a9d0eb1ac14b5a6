package client

import (
	"context"
	"net/url"
)

// Gateway is the single entry point to the REST backend. out receives the
// decoded response envelope; pass nil to discard it.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// TokenSource yields the bearer token to attach, if any. It is consulted on
// every request so a login or logout takes effect immediately.
type TokenSource interface {
	GetToken(ctx context.Context) (string, bool)
}
