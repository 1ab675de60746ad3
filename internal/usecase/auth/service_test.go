package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/session"
)

type mockAPI struct {
	loginErr error
	meCalls  int
	user     *entity.User
}

func (m *mockAPI) Login(_ context.Context, identifier, _ string) (*cms.AuthResult, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &cms.AuthResult{JWT: "jwt-" + identifier, User: &entity.User{ID: 1, Username: identifier}}, nil
}

func (m *mockAPI) Register(_ context.Context, username, email, _ string) (*cms.AuthResult, error) {
	return &cms.AuthResult{JWT: "jwt-new", User: &entity.User{ID: 2, Username: username, Email: email}}, nil
}

func (m *mockAPI) Me(context.Context) (*entity.User, error) {
	m.meCalls++
	return m.user, nil
}

func newTestService(api API) (*Service, *session.Session, *session.MemoryStore, *notifier.Recorder) {
	store := session.NewMemoryStore()
	sess := session.New(store)
	rec := notifier.NewRecorder()
	return NewService(api, sess, rec), sess, store, rec
}

func TestLogin_StoresToken(t *testing.T) {
	svc, sess, _, rec := newTestService(&mockAPI{})

	user, err := svc.Login(context.Background(), entity.LoginForm{Identifier: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	token, ok := sess.Token()
	require.True(t, ok)
	assert.Equal(t, "jwt-alice", token)
	assert.Equal(t, user, sess.User())

	last, _ := rec.Last()
	assert.Equal(t, notifier.LevelSuccess, last.Level)
}

func TestLogin_InvalidFormNeverCallsBackend(t *testing.T) {
	api := &mockAPI{loginErr: errors.New("must not be called")}
	svc, sess, _, _ := newTestService(api)

	_, err := svc.Login(context.Background(), entity.LoginForm{Identifier: "alice", Password: "short"})
	var ve *entity.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)

	_, ok := sess.Token()
	assert.False(t, ok)
}

func TestLogin_BackendRejects(t *testing.T) {
	api := &mockAPI{loginErr: &cms.APIError{StatusCode: 400, Name: "ValidationError", Message: "Invalid identifier or password"}}
	svc, sess, _, rec := newTestService(api)

	_, err := svc.Login(context.Background(), entity.LoginForm{Identifier: "alice", Password: "password123"})
	require.Error(t, err)

	_, ok := sess.Token()
	assert.False(t, ok)
	last, _ := rec.Last()
	assert.Equal(t, "Login failed", last.Title)
	assert.Contains(t, last.Message, "Invalid identifier or password")
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	svc, sess, _, _ := newTestService(&mockAPI{})

	user, err := svc.Register(context.Background(), entity.RegisterForm{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, ok := sess.Token()
	assert.False(t, ok)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _, _, _ := newTestService(&mockAPI{})

	_, err := svc.Register(context.Background(), entity.RegisterForm{Username: "bob", Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestProfile(t *testing.T) {
	api := &mockAPI{user: &entity.User{ID: 1, Username: "alice"}}
	svc, sess, store, _ := newTestService(api)

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.EqualError(t, err, "no token found")
	assert.Zero(t, api.meCalls)

	require.NoError(t, store.Set("tok"))
	user, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, user, sess.User())
}

func TestLogout(t *testing.T) {
	svc, sess, store, rec := newTestService(&mockAPI{})
	require.NoError(t, store.Set("tok"))

	require.NoError(t, svc.Logout(context.Background()))

	_, ok := sess.Token()
	assert.False(t, ok)
	last, _ := rec.Last()
	assert.Equal(t, "Logged out", last.Title)
}
