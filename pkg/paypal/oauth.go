package paypal

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/oauthclient"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

func (s *service) clientCredentials() *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		TokenURL:     s.apiBase + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
}

// GetAccessToken exchanges client credentials for a bearer token. A
// fresh exchange happens on every call; tokens are not cached across
// requests.
func (s *service) GetAccessToken(ctx context.Context) (*AccessToken, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var base *http.Client
	if hc, ok := s.client.(*http.Client); ok {
		base = hc
	}

	tok, err := oauthclient.FetchToken(ctx, s.clientCredentials(), base)
	if err != nil {
		s.logger.Error("paypal token exchange failed", slog.Any("error", err))
		return nil, err
	}

	return &AccessToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
	}, nil
}
