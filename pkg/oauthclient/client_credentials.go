package oauthclient

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentialsHTTPClient returns an *http.Client that injects a
// bearer token obtained via the client-credentials grant. The token
// source refreshes lazily.
func ClientCredentialsHTTPClient(ctx context.Context, cc *clientcredentials.Config, base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}

	ctx = WithBaseClient(ctx, base)
	return oauth2.NewClient(ctx, cc.TokenSource(ctx))
}

// FetchToken performs a single client-credentials exchange with no
// caching. Callers that want a fresh token per request use this.
func FetchToken(ctx context.Context, cc *clientcredentials.Config, base *http.Client) (*oauth2.Token, error) {
	if base != nil {
		ctx = WithBaseClient(ctx, base)
	}

	return cc.TokenSource(ctx).Token()
}
