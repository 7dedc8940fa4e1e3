package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/timeutil"
)

// expiryBuffer is subtracted from the upstream-reported lifetime so a token
// is refreshed before it can expire mid-request.
const expiryBuffer = 10 * time.Second

// TokenSource obtains and caches an OAuth2 access token via the
// client-credentials grant. A cached token is reused until it is within
// expiryBuffer of expiry; concurrent callers share a single refresh.
type TokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	clock        timeutil.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenSource creates a token source for the given OAuth2 endpoint.
// A nil httpClient falls back to http.DefaultClient, a nil clock to the
// system clock.
func NewTokenSource(tokenURL, clientID, clientSecret string, httpClient *http.Client, clock timeutil.Clock) *TokenSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TokenSource{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		clock:        clock,
	}
}

// Token returns a valid access token, fetching a fresh one when the cached
// token is missing or about to expire.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.clock.Now().Before(ts.expiresAt) {
		return ts.token, nil
	}

	token, expiresIn, err := ts.fetch(ctx)
	if err != nil {
		return "", err
	}

	ts.token = token
	ts.expiresAt = ts.clock.Now().Add(time.Duration(expiresIn)*time.Second - expiryBuffer)
	return ts.token, nil
}

// Invalidate discards the cached token so the next Token call refreshes.
// Callers use it after an upstream 401.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""
	ts.expiresAt = time.Time{}
}

func (ts *TokenSource) fetch(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", 0, &domain.UpstreamError{Op: "token", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, &domain.UpstreamError{
			Op:         "token",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("token endpoint returned %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, &domain.UpstreamError{Op: "token", Err: err}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, &domain.UpstreamError{Op: "token", Err: fmt.Errorf("decode token response: %w", err)}
	}
	if tr.AccessToken == "" {
		return "", 0, &domain.UpstreamError{Op: "token", Err: fmt.Errorf("token response missing access_token")}
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}
