// Package session owns the client-side session lifecycle: it reconciles
// the persisted credential and the cached user snapshot with live server
// validation, and is the single authority over session state transitions.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/models"
	"github.com/morikawa/riskadvisor/internal/client/store"
	"github.com/morikawa/riskadvisor/internal/common"
	"github.com/morikawa/riskadvisor/internal/logging"
)

// Controller drives the session state machine. Construct one instance at
// application start and pass it to consumers; it is safe for concurrent
// use.
//
// State transitions are serialized logically rather than by holding a lock
// across network calls: every mutating operation takes a generation number
// when it starts, and its result is discarded if a newer operation has
// started in the meantime. Persisted-store writes happen inside the same
// critical section as the in-memory transition, so the two never diverge.
type Controller struct {
	api    *api.Client
	store  store.Store
	logger logging.Logger

	mu          sync.Mutex
	session     Session
	credential  string
	initialized bool
	generation  uint64

	subscribers map[int]func(Session)
	nextSubID   int
}

// NewController wires the controller to its API client and persisted store.
func NewController(apiClient *api.Client, st store.Store, logger logging.Logger) *Controller {
	return &Controller{
		api:         apiClient,
		store:       st,
		logger:      logger.With("component", "session"),
		session:     Session{Status: StatusUninitialized},
		subscribers: make(map[int]func(Session)),
	}
}

// Current returns a snapshot of the session state.
func (c *Controller) Current() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Session)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// AuthHeader returns the Authorization header for the current credential,
// or common.ErrNotAuthenticated when none is held.
func (c *Controller) AuthHeader() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.credential == "" {
		return nil, common.ErrNotAuthenticated
	}
	cred := models.Credential{AccessToken: c.credential, TokenType: "bearer"}
	return map[string]string{common.AuthHeaderName: cred.AuthorizationValue()}, nil
}

// begin starts a mutating operation and returns its generation number.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

// commit applies fn under the lock unless a newer operation has started
// since gen was taken. It reports whether fn ran, and notifies subscribers
// outside the critical section when it did.
func (c *Controller) commit(ctx context.Context, gen uint64, fn func(ctx context.Context) error) (bool, error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return false, nil
	}
	err := fn(ctx)
	snapshot := c.session
	subs := make([]func(Session), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	return true, err
}

// Initialize reconciles persisted state with the server. It runs at most
// once per controller lifetime; callers should invoke it only after the
// host environment is ready to touch persisted storage.
//
// If a cached user exists it becomes visible immediately as provisional,
// but the status stays Initializing until the "who am I" call resolves.
// Any validation failure fails closed: both persisted entries are cleared
// and the session ends Unauthenticated with the error recorded.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return common.ErrAlreadyInitialized
	}
	c.initialized = true
	c.generation++
	gen := c.generation
	c.session = Session{Status: StatusInitializing}
	c.mu.Unlock()
	c.notify()

	token, err := c.store.Credential(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to read persisted credential", "error", err.Error())
		token = ""
	}

	if token == "" {
		_, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
			c.credential = ""
			c.session = Session{Status: StatusUnauthenticated}
			return c.store.ClearAll(ctx)
		})
		return cerr
	}

	if cached, err := c.store.CachedUser(ctx); err == nil && cached != nil {
		_, _ = c.commit(ctx, gen, func(ctx context.Context) error {
			c.session = Session{Status: StatusInitializing, User: cached, Provisional: true}
			return nil
		})
	}

	user, err := c.whoAmI(ctx, token)
	if err != nil {
		apiErr := asAPIError(err)
		c.logger.Warn(ctx, "credential validation failed, clearing persisted state",
			"code", apiErr.Code)
		_, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
			c.credential = ""
			c.session = Session{Status: StatusUnauthenticated, Err: apiErr.Message, ErrCode: apiErr.Code}
			return c.store.ClearAll(ctx)
		})
		return cerr
	}

	_, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
		c.credential = token
		c.session = Session{Status: StatusAuthenticated, User: user}
		return c.store.SetCachedUser(ctx, *user)
	})
	return cerr
}

// Login authenticates with the backend. On failure the typed error is
// returned for form-level display and recorded on the session; persisted
// state is untouched. On success the credential is persisted first, then
// the authoritative user is fetched; if that follow-up call fails the
// credential stays persisted but the status remains non-Authenticated
// until RefreshUser succeeds.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	gen := c.begin()

	data, err := c.api.Do(ctx, api.Request{
		Path:   "/api/login",
		Method: http.MethodPost,
		Body:   models.LoginRequest{Email: email, Password: password},
	})
	if err != nil {
		apiErr := asAPIError(err)
		applied, _ := c.commit(ctx, gen, func(ctx context.Context) error {
			c.session.Err = apiErr.Message
			c.session.ErrCode = apiErr.Code
			return nil
		})
		if !applied {
			return common.ErrSuperseded
		}
		return err
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	applied, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
		c.credential = resp.AccessToken
		return c.store.SetCredential(ctx, resp.AccessToken)
	})
	if !applied {
		return common.ErrSuperseded
	}
	if cerr != nil {
		return cerr
	}

	user, err := c.whoAmI(ctx, resp.AccessToken)
	if err != nil {
		// Token acquired but identity not yet confirmed: keep the
		// credential, stay non-Authenticated until RefreshUser succeeds.
		apiErr := asAPIError(err)
		applied, _ := c.commit(ctx, gen, func(ctx context.Context) error {
			c.session.Err = apiErr.Message
			c.session.ErrCode = apiErr.Code
			return nil
		})
		if !applied {
			return common.ErrSuperseded
		}
		return err
	}

	applied, cerr = c.commit(ctx, gen, func(ctx context.Context) error {
		c.session = Session{Status: StatusAuthenticated, User: user}
		return c.store.SetCachedUser(ctx, *user)
	})
	if !applied {
		return common.ErrSuperseded
	}
	return cerr
}

// RefreshUser re-validates the current credential and replaces the user
// snapshot. A failure records the error but never demotes an
// Authenticated session; an invalid credential is only acted on by Logout
// or re-initialization.
func (c *Controller) RefreshUser(ctx context.Context) error {
	c.mu.Lock()
	token := c.credential
	c.mu.Unlock()
	if token == "" {
		return common.ErrNotAuthenticated
	}

	gen := c.begin()

	user, err := c.whoAmI(ctx, token)
	if err != nil {
		apiErr := asAPIError(err)
		c.logger.Warn(ctx, "user refresh failed", "code", apiErr.Code)
		_, _ = c.commit(ctx, gen, func(ctx context.Context) error {
			c.session.Err = apiErr.Message
			c.session.ErrCode = apiErr.Code
			return nil
		})
		return err
	}

	applied, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
		c.session = Session{Status: StatusAuthenticated, User: user}
		return c.store.SetCachedUser(ctx, *user)
	})
	if !applied {
		return common.ErrSuperseded
	}
	return cerr
}

// Logout notifies the server on a best-effort basis and unconditionally
// clears local state. From the client's perspective it always succeeds:
// a failed network call still ends the session Unauthenticated.
func (c *Controller) Logout(ctx context.Context) error {
	gen := c.begin()

	c.mu.Lock()
	token := c.credential
	c.mu.Unlock()

	if token != "" {
		cred := models.Credential{AccessToken: token, TokenType: "bearer"}
		_, err := c.api.Do(ctx, api.Request{
			Path:   "/api/logout",
			Method: http.MethodPost,
			Header: map[string]string{common.AuthHeaderName: cred.AuthorizationValue()},
		})
		if err != nil {
			c.logger.Warn(ctx, "logout notification failed", "code", api.CodeOf(err))
		}
	}

	_, cerr := c.commit(ctx, gen, func(ctx context.Context) error {
		c.credential = ""
		c.session = Session{Status: StatusUnauthenticated}
		return c.store.ClearAll(ctx)
	})
	return cerr
}

// ClearError resets the informational error flag without changing status.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.session.Err = ""
	c.session.ErrCode = ""
	c.mu.Unlock()
	c.notify()
}

// whoAmI fetches the authoritative user for the given credential.
func (c *Controller) whoAmI(ctx context.Context, token string) (*models.User, error) {
	cred := models.Credential{AccessToken: token, TokenType: "bearer"}
	data, err := c.api.Do(ctx, api.Request{
		Path:   "/api/user/me",
		Method: http.MethodGet,
		Header: map[string]string{common.AuthHeaderName: cred.AuthorizationValue()},
	})
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// notify sends the current snapshot to all subscribers.
func (c *Controller) notify() {
	c.mu.Lock()
	snapshot := c.session
	subs := make([]func(Session), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

// asAPIError normalizes any failure into the typed API error shape.
func asAPIError(err error) *api.Error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &api.Error{Code: api.CodeUnknown, Message: err.Error()}
}
