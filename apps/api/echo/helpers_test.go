package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/records"
	"github.com/trezcool/ecoquest/core/session"
	"github.com/trezcool/ecoquest/core/user"
	emailsvc "github.com/trezcool/ecoquest/services/email"
)

const password = "Sunflower42!"

var (
	testConf = &core.Config{
		TestMode:         true,
		AppName:          "EcoQuest",
		SecretKey:        "secret",
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "EcoQuest", Address: "noreply@localhost"},
		Server: core.ServerConfig{
			JWTExpirationDelta: 10 * time.Minute,
		},
	}

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

type testApp struct {
	*Server
	sessions *session.Registry
	users    *user.Service
}

func setup(t *testing.T, opts ...func(*session.Options)) testApp {
	t.Helper()

	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	user.InitValidators(validate, translator)
	photo.InitValidators(validate, translator)

	now := time.Date(2025, 1, 22, 9, 0, 0, 0, time.UTC)
	sopts := session.Options{
		Deps: records.Deps{
			Validate: validate,
			Now:      func() time.Time { return now },
			IntN:     func(int) int { return 0 },
		},
		Mailer:     emailsvc.NewConsoleServiceMock(testConf),
		ReplyDelay: time.Millisecond,
	}
	for _, opt := range opts {
		opt(&sopts)
	}
	sessions := session.NewRegistry(sopts)
	users := user.NewServiceMock(validate)
	t.Cleanup(sessions.CloseAll)

	srv := NewServer(ServerDeps{
		Conf:       testConf,
		Logger:     core.NewNopLogger(),
		Users:      users,
		Sessions:   sessions,
		Translator: translator,
	})
	t.Cleanup(func() { _ = srv.Close() })
	return testApp{Server: srv, sessions: sessions, users: users}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// do serves one request and returns the recorder.
func (app testApp) do(method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	app.ServeHTTP(rec, req)
	return rec
}

// login signs a new account in and returns its token and session.
func (app testApp) login(t *testing.T, email, role string) (string, *session.Session) {
	t.Helper()
	rec := app.do(http.MethodPost, "/v1/auth/login", "", marchallObj(t, user.Login{
		Email: email, Password: password, Role: role,
	}))
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	claims := new(Claims)
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testConf.SecretKey), nil
	})
	require.NoError(t, err)
	sess, err := app.sessions.Get(claims.Subject)
	require.NoError(t, err)
	return resp.Token, sess
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
