package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"golang.org/x/sync/singleflight"
)

const tokenPath = "/v1/oauth2/token"

// defaultTokenTimeout bounds a token grant. The grant is shared by every
// caller waiting on a refresh so it does not follow any one caller's context.
const defaultTokenTimeout = 30 * time.Second

// AccessToken is the result of a client credentials grant.
type AccessToken struct {
	Scope       string `json:"scope"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AppID       string `json:"app_id"`
	ExpiresIn   int64  `json:"expires_in"`
	Nonce       string `json:"nonce"`

	// ExpiresAt is the time the token was obtained plus ExpiresIn.
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the token can no longer be used at now.
func (t *AccessToken) Expired(now time.Time) bool {
	return t == nil || !now.Before(t.ExpiresAt)
}

type tokenCache struct {
	mtx   sync.Mutex
	token *AccessToken
	group singleflight.Group
}

func (tc *tokenCache) current(now time.Time) *AccessToken {
	tc.mtx.Lock()
	defer tc.mtx.Unlock()
	if tc.token.Expired(now) {
		return nil
	}
	tok := *tc.token
	return &tok
}

func (tc *tokenCache) store(tok *AccessToken) {
	tc.mtx.Lock()
	defer tc.mtx.Unlock()
	tc.token = tok
}

func (tc *tokenCache) invalidate() {
	tc.mtx.Lock()
	defer tc.mtx.Unlock()
	tc.token = nil
}

// AccessTokenExpired reports whether the next call will fetch a new token.
func (c *Client) AccessTokenExpired() bool {
	return c.tokens.current(c.now()) == nil
}

// GetAccessToken returns the cached access token, fetching a new one when
// none is held or it has expired. Concurrent callers needing a refresh
// share a single grant request.
func (c *Client) GetAccessToken(ctx context.Context) (*AccessToken, error) {
	if tok := c.tokens.current(c.now()); tok != nil {
		return tok, nil
	}

	ch := c.tokens.group.DoChan("token", func() (interface{}, error) {
		if tok := c.tokens.current(c.now()); tok != nil {
			return tok, nil
		}
		fetch, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.tokenTimeout)
		defer cancel()
		tok, err := c.fetchToken(fetch)
		if err != nil {
			return nil, err
		}
		c.tokens.store(tok)
		return tok, nil
	})

	select {
	case <-ctx.Done():
		return nil, &AuthError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		tok := *res.Val.(*AccessToken)
		return &tok, nil
	}
}

func (c *Client) fetchToken(ctx context.Context) (*AccessToken, error) {
	target, err := c.env.MakeURL(tokenPath)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	obtained := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("GetAccessToken", 0, obtained)
		log.Error(fmt.Errorf("error requesting access token: [%w]", err), log.Data{"env": c.env.Name})
		return nil, &AuthError{Err: err}
	}
	defer resp.Body.Close()
	c.observe("GetAccessToken", resp.StatusCode, obtained)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authErr := &AuthError{StatusCode: resp.StatusCode}
		var oauth models.OAuthError
		if json.Unmarshal(body, &oauth) == nil && oauth.Error != "" {
			authErr.OAuth = &oauth
		}
		log.Error(authErr, log.Data{"env": c.env.Name, "status": resp.StatusCode})
		return nil, authErr
	}

	var tok AccessToken
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, &AuthError{StatusCode: resp.StatusCode, Err: &DecodeError{StatusCode: resp.StatusCode, Body: body, Err: err}}
	}
	if tok.AccessToken == "" {
		return nil, &AuthError{StatusCode: resp.StatusCode, Err: fmt.Errorf("no access token in grant response")}
	}
	tok.ExpiresAt = obtained.Add(time.Duration(tok.ExpiresIn) * time.Second)

	log.Debug("obtained paypal access token", log.Data{"env": c.env.Name, "app_id": tok.AppID, "expires_in": tok.ExpiresIn})
	return &tok, nil
}
