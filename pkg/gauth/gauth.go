package gauth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Verifier validates bearer access tokens against an identity provider and
// returns the owner identity the core trusts.
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (UserInfo, error)
}

// GoogleVerifier verifies Google OAuth2 access tokens via the tokeninfo
// endpoint.
type GoogleVerifier struct {
	timeout time.Duration
}

// NewGoogleVerifier creates a verifier with the given per-call timeout.
func NewGoogleVerifier(timeout time.Duration) *GoogleVerifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GoogleVerifier{timeout: timeout}
}

// Verify checks the access token with Google and returns the token's subject.
func (v *GoogleVerifier) Verify(ctx context.Context, accessToken string) (UserInfo, error) {
	if accessToken == "" {
		return UserInfo{}, ErrInvalidToken
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	// The bearer client authenticates the userinfo fallback; tokeninfo itself
	// takes the token as a parameter.
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	httpClient := oauth2.NewClient(ctx, ts)

	svc, err := oauth2api.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	info, err := svc.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == http.StatusBadRequest {
			return UserInfo{}, ErrInvalidToken
		}
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if info.UserId == "" {
		return UserInfo{}, ErrInvalidToken
	}

	return UserInfo{UserID: info.UserId, Email: info.Email}, nil
}
