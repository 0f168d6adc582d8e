package oauth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"travel-agent-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const amadeusTokenPath = "/v1/security/oauth2/token"

// AmadeusOAuth handles the client-credentials flow against the Amadeus API
type AmadeusOAuth struct {
	config *clientcredentials.Config
	logger logger.Logger
}

// NewAmadeusOAuth creates a new Amadeus OAuth handler
func NewAmadeusOAuth(clientID, clientSecret, baseURL string, logger logger.Logger) *AmadeusOAuth {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     strings.TrimRight(baseURL, "/") + amadeusTokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	return &AmadeusOAuth{
		config: config,
		logger: logger,
	}
}

// Configured reports whether both credentials are present
func (o *AmadeusOAuth) Configured() bool {
	return o.config.ClientID != "" && o.config.ClientSecret != ""
}

// HTTPClient returns a client that attaches a bearer token to every request,
// fetching and refreshing it as needed. Token requests share the timeout.
func (o *AmadeusOAuth) HTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if !o.Configured() {
		o.logger.Warn("Amadeus credentials not set, flight search will be skipped")
		return nil
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
	client := o.config.Client(tokenCtx)
	client.Timeout = timeout
	return client
}

// Token fetches a fresh access token
func (o *AmadeusOAuth) Token(ctx context.Context) (*oauth2.Token, error) {
	return o.config.Token(ctx)
}
