package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/pkg/errors"
	"go.uber.org/zap"
)

// RestClient talks to the hosted gateway: GoTrue-style auth endpoints plus a
// PostgREST-style profiles table. Every call is one request/response pair;
// failures are returned to the caller, never retried here.
type RestClient struct {
	baseURL     string
	anonKey     string
	sessionFile string
	httpClient  *http.Client
	broker      *SessionBroker
	logger      *zap.Logger

	sessionMu sync.RWMutex
	session   *domain.Session
}

type RestConfig struct {
	BaseURL string
	AnonKey string
	// SessionFile persists the access token between runs. Empty disables
	// restore, so every start is signed out.
	SessionFile string
}

func NewRestClient(cfg RestConfig, broker *SessionBroker, logger *zap.Logger) *RestClient {
	if broker == nil {
		broker = NewSessionBroker()
	}
	return &RestClient{
		baseURL:     cfg.BaseURL,
		anonKey:     cfg.AnonKey,
		sessionFile: cfg.SessionFile,
		httpClient:  &http.Client{},
		broker:      broker,
		logger:      logger,
	}
}

// Broker exposes the auth-change stream shared with the realtime socket.
func (c *RestClient) Broker() *SessionBroker {
	return c.broker
}

func (c *RestClient) OnSessionChanged(callback SessionCallback) *Subscription {
	return c.broker.OnSessionChanged(callback)
}

// --- Auth operations -------------------------------------------------------

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// GetCurrentSession restores the persisted session, if any, and validates it
// against the gateway. A rejected token is the normal signed-out start, not
// an error.
func (c *RestClient) GetCurrentSession(ctx context.Context) (*domain.Session, error) {
	restored := c.loadPersistedSession()
	if restored == nil {
		return nil, nil
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/auth/v1/user", restored.AccessToken, nil, &user)
	if err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			c.clearPersistedSession()
			return nil, nil
		}
		return nil, err
	}

	restored.UserID = user.ID
	restored.Email = user.Email
	c.setSession(restored)
	return restored, nil
}

func (c *RestClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var tok tokenResponse
	err := c.doAuthRequest(ctx, "/auth/v1/token?grant_type=password", body, &tok)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		UserID:      tok.User.ID,
		Email:       tok.User.Email,
		AccessToken: tok.AccessToken,
	}
	c.setSession(session)
	c.persistSession(session)
	c.broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn, Session: session})
	return session, nil
}

// SignUp registers a new account. When the gateway requires e-mail
// confirmation the response has no access token and the returned session is
// nil; the caller stays signed out until the user confirms.
func (c *RestClient) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var tok tokenResponse
	if err := c.doAuthRequest(ctx, "/auth/v1/signup", body, &tok); err != nil {
		return nil, err
	}

	if tok.AccessToken == "" {
		return nil, nil
	}

	session := &domain.Session{
		UserID:      tok.User.ID,
		Email:       tok.User.Email,
		AccessToken: tok.AccessToken,
	}
	c.setSession(session)
	c.persistSession(session)
	c.broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn, Session: session})
	return session, nil
}

// SignOut revokes the session server-side and always clears local state,
// even when the revoke request fails: the user asked to be signed out.
func (c *RestClient) SignOut(ctx context.Context) error {
	token := c.currentToken()

	var reqErr error
	if token != "" {
		reqErr = c.doRequest(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil)
		if reqErr != nil {
			c.logger.Warn("Sign-out revoke failed, clearing local session anyway", zap.Error(reqErr))
		}
	}

	c.setSession(nil)
	c.clearPersistedSession()
	c.broker.Emit(domain.SessionEvent{Type: domain.SessionSignedOut})
	return reqErr
}

// --- Profile operations ----------------------------------------------------

func (c *RestClient) SelectVerifiedProfiles(ctx context.Context) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	path := "/rest/v1/profiles?select=*&is_verified=eq.true"
	if err := c.doRequest(ctx, http.MethodGet, path, c.currentToken(), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *RestClient) SelectProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var profiles []*domain.Profile
	path := fmt.Sprintf("/rest/v1/profiles?select=*&id=eq.%s&limit=1", id)
	if err := c.doRequest(ctx, http.MethodGet, path, c.currentToken(), nil, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, errors.NewNotFoundError("profile", id)
	}
	return profiles[0], nil
}

func (c *RestClient) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/profiles?on_conflict=id", c.currentToken(), profile)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	return c.execute(req, nil)
}

// --- Plumbing --------------------------------------------------------------

func (c *RestClient) newRequest(ctx context.Context, method, path, token string, reqBody any) (*http.Request, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, errors.NewAPIError("failed to marshal request", 400, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, errors.NewAPIError("failed to create request", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}

func (c *RestClient) execute(req *http.Request, respBody any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIError("request failed", 500, map[string]any{
			"url": req.URL.String(),
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return errors.NewAPIError(
			extractErrorMessage(bodyBytes, resp.Status),
			resp.StatusCode,
			map[string]any{
				"url":  req.URL.String(),
				"body": string(bodyBytes),
			},
		)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return errors.NewAPIError("failed to decode response", 500, map[string]any{
				"url": req.URL.String(),
			}).WithCause(err)
		}
	}

	return nil
}

func (c *RestClient) doRequest(ctx context.Context, method, path, token string, reqBody, respBody any) error {
	req, err := c.newRequest(ctx, method, path, token, reqBody)
	if err != nil {
		return err
	}
	return c.execute(req, respBody)
}

// doAuthRequest wraps auth endpoints: failures become AuthError so the auth
// view can show the gateway's message verbatim.
func (c *RestClient) doAuthRequest(ctx context.Context, path string, reqBody, respBody any) error {
	err := c.doRequest(ctx, http.MethodPost, path, "", reqBody, respBody)
	if err == nil {
		return nil
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return errors.NewAuthError(apiErr.Message, apiErr.StatusCode, apiErr.Context)
	}
	return err
}

// extractErrorMessage pulls the human-readable message out of a gateway
// error body. GoTrue and PostgREST use different field names.
func extractErrorMessage(body []byte, fallback string) string {
	var parsed struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorField       string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.ErrorDescription != "":
			return parsed.ErrorDescription
		case parsed.Msg != "":
			return parsed.Msg
		case parsed.Message != "":
			return parsed.Message
		case parsed.ErrorField != "":
			return parsed.ErrorField
		}
	}
	return fmt.Sprintf("gateway error: %s", fallback)
}

// --- Session bookkeeping ---------------------------------------------------

func (c *RestClient) setSession(session *domain.Session) {
	c.sessionMu.Lock()
	c.session = session
	c.sessionMu.Unlock()
}

func (c *RestClient) currentToken() string {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

func (c *RestClient) loadPersistedSession() *domain.Session {
	if c.sessionFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.sessionFile)
	if err != nil {
		return nil
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil || session.AccessToken == "" {
		return nil
	}
	return &session
}

func (c *RestClient) persistSession(session *domain.Session) {
	if c.sessionFile == "" || session == nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.sessionFile), 0700); err != nil {
		c.logger.Warn("Failed to create session directory", zap.Error(err))
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := os.WriteFile(c.sessionFile, data, 0600); err != nil {
		c.logger.Warn("Failed to persist session", zap.Error(err))
	}
}

func (c *RestClient) clearPersistedSession() {
	if c.sessionFile == "" {
		return
	}
	_ = os.Remove(c.sessionFile)
}
