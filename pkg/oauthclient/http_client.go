// Package oauthclient has small helpers around golang.org/x/oauth2 for
// talking to client-credentials protected vendor APIs.
package oauthclient

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// HeaderPreservingClient keeps request headers across redirects. Some
// vendor gateways redirect between hosts and drop Authorization
// otherwise.
func HeaderPreservingClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(r *http.Request, via []*http.Request) error {
			if len(via) > 0 {
				r.Header = via[0].Header.Clone()
			}

			return nil
		},
	}
}

func WithBaseClient(ctx context.Context, base *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, base)
}
