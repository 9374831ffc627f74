package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// fakePrompter answers prompts from a queue and records what was asked.
type fakePrompter struct {
	answers []string
	asked   []string
	secrets []string
}

func (p *fakePrompter) next(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", tui.ErrPromptCancelled
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *fakePrompter) Secret(label string) (string, error) {
	p.secrets = append(p.secrets, label)
	return p.next(label)
}

func (p *fakePrompter) Line(label string) (string, error) {
	return p.next(label)
}

func (p *fakePrompter) Confirm(label string) (bool, error) {
	answer, err := p.next(label)
	return answer == "y", err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

type testApp struct {
	*App
	auth   *mock.MockClientAuthService
	vault  *mock.MockClientVaultService
	prompt *fakePrompter
	clip   *fakeClipboard
	out    *bytes.Buffer
	errOut *bytes.Buffer
	closed bool
}

func newTestApp(t *testing.T, answers ...string) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	ta := &testApp{
		auth:   mock.NewMockClientAuthService(ctrl),
		vault:  mock.NewMockClientVaultService(ctrl),
		prompt: &fakePrompter{answers: answers},
		clip:   &fakeClipboard{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}

	app, err := NewApp(models.NewAppBuildInfo("1.4.0", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)

	app.prompt = ta.prompt
	app.clip = ta.clip
	app.out = ta.out
	app.errOut = ta.errOut
	app.connect = func(context.Context, string, *logger.Logger) (*service.ClientServices, func() error, error) {
		services := &service.ClientServices{AuthService: ta.auth, VaultService: ta.vault}
		return services, func() error { ta.closed = true; return nil }, nil
	}

	ta.App = app
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.Run(context.Background(), args)
}

func TestNewApp_NilLogger(t *testing.T) {
	_, err := NewApp(models.AppBuildInfo{}, nil)
	assert.ErrorIs(t, err, errNilLogger)
}

func TestApp_ConnectFailure(t *testing.T) {
	ta := newTestApp(t)
	connectErr := errors.New("client config: bad address")
	ta.connect = func(context.Context, string, *logger.Logger) (*service.ClientServices, func() error, error) {
		return nil, nil, connectErr
	}

	err := ta.run("list")
	assert.ErrorIs(t, err, connectErr)
	assert.Contains(t, ta.errOut.String(), "bad address")
}

func TestApp_ConfigFlagReachesConnect(t *testing.T) {
	ta := newTestApp(t)

	var gotPath string
	connect := ta.connect
	ta.connect = func(ctx context.Context, path string, log *logger.Logger) (*service.ClientServices, func() error, error) {
		gotPath = path
		return connect(ctx, path, log)
	}
	ta.vault.EXPECT().List(gomock.Any()).Return(nil, nil)

	require.NoError(t, ta.run("--config", "/etc/vault/client.json", "list"))
	assert.Equal(t, "/etc/vault/client.json", gotPath)
	assert.True(t, ta.closed)
}

func TestRegisterCommand(t *testing.T) {
	ta := newTestApp(t, "login-pw", "correct horse battery staple", "correct horse battery staple")

	ta.auth.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", "login-pw", "correct horse battery staple").
		Return(validators.PassphraseStrength{Score: 4}, nil)

	require.NoError(t, ta.run("register", "-u", "alice", "-e", "alice@example.com"))
	assert.Equal(t, []string{"Login password", "Master passphrase", "Repeat master passphrase"}, ta.prompt.secrets)
	assert.Contains(t, ta.out.String(), "Registered and logged in as alice.")
	assert.Empty(t, ta.errOut.String())
}

func TestRegisterCommand_WeakPassphraseWarns(t *testing.T) {
	ta := newTestApp(t, "alice", "alice@example.com", "login-pw", "password1", "password1")

	ta.auth.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "login-pw", "password1").
		Return(validators.PassphraseStrength{Score: 0, CrackTime: "instant"}, nil)

	require.NoError(t, ta.run("register"))
	assert.Equal(t, []string{"Username", "Email", "Login password", "Master passphrase", "Repeat master passphrase"}, ta.prompt.asked)
	assert.Contains(t, ta.errOut.String(), "weak master passphrase")
}

func TestRegisterCommand_PassphraseMismatch(t *testing.T) {
	ta := newTestApp(t, "login-pw", "correct horse battery staple", "correct horse battery stapel")

	err := ta.run("register", "-u", "alice", "-e", "alice@example.com")
	assert.ErrorIs(t, err, errPassphraseMismatch)
}

func TestLoginCommand(t *testing.T) {
	ta := newTestApp(t, "login-pw", "correct horse battery staple")

	ta.auth.EXPECT().Login(gomock.Any(), "alice@example.com", "login-pw", "correct horse battery staple").Return(nil)

	require.NoError(t, ta.run("login", "--email", "alice@example.com"))
	assert.Contains(t, ta.out.String(), "Logged in.")
}

func TestLoginCommand_WrongPassphrase(t *testing.T) {
	ta := newTestApp(t, "login-pw", "not my passphrase")

	ta.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrCouldNotDecrypt)

	err := ta.run("login", "-e", "alice@example.com")
	assert.ErrorIs(t, err, service.ErrCouldNotDecrypt)
	assert.Contains(t, ta.errOut.String(), "could not be decrypted")
	assert.NotContains(t, ta.errOut.String(), "not my passphrase")
}

func TestLogoutCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, ta.run("logout"))
	assert.Contains(t, ta.out.String(), "Logged out.")
}

func TestPromptCancelled(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run("login", "-e", "alice@example.com")
	assert.ErrorIs(t, err, tui.ErrPromptCancelled)
	assert.Contains(t, ta.errOut.String(), "Cancelled.")
}

func TestNotLoggedInIsDescribed(t *testing.T) {
	ta := newTestApp(t)
	ta.vault.EXPECT().List(gomock.Any()).Return(nil, service.ErrNotLoggedIn)

	err := ta.run("list")
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	assert.Contains(t, ta.errOut.String(), "not logged in")
}

func TestVersionCommand(t *testing.T) {
	t.Run("server reachable", func(t *testing.T) {
		ta := newTestApp(t)
		ta.vault.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

		require.NoError(t, ta.run("version"))
		assert.Contains(t, ta.out.String(), "1.4.0")
		assert.Contains(t, ta.out.String(), "2.0.0")
	})

	t.Run("server unreachable", func(t *testing.T) {
		ta := newTestApp(t)
		ta.vault.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("dial tcp: connection refused"))

		require.NoError(t, ta.run("version"))
		assert.Contains(t, ta.out.String(), "1.4.0")
		assert.Contains(t, ta.out.String(), "N/A")
	})
}
