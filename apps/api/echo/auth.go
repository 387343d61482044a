package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/session"
	"github.com/trezcool/ecoquest/core/user"
)

var (
	contextTokenKey   = "userToken"
	contextUserKey    = "user"
	contextSessionKey = "session"
)

// Claims represents the authorization claims transmitted via a JWT.
// The subject is the session id.
type Claims struct {
	jwt.StandardClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

type tokenizer struct {
	issuer     string
	signingKey []byte
	expiration time.Duration
	now        func() time.Time
}

func newTokenizer(conf *core.Config) tokenizer {
	return tokenizer{
		issuer:     conf.AppName,
		signingKey: []byte(conf.SecretKey),
		expiration: conf.Server.JWTExpirationDelta,
		now:        time.Now,
	}
}

// jwtConfig is the JWT auth middleware config.
func (t tokenizer) jwtConfig() middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    t.signingKey,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

func (t tokenizer) claims(sess *session.Session) *Claims {
	now := t.now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    t.issuer,
			Subject:   sess.ID,
			ExpiresAt: now.Add(t.expiration).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID: sess.UserID,
		Role:   sess.Role,
	}
}

// generate returns a signed JWT token string for sess.
func (t tokenizer) generate(sess *session.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), t.claims(sess))
	ss, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (*session.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(*session.Session); ok {
		return sess, nil
	}
	return nil, errUnauthorized
}

func getContextUser(ctx echo.Context) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}
	return user.User{}, errUnauthorized
}

// sessionMiddleware resolves the token's session and its user.
// Sessions closed by logout or expired by the janitor are rejected.
func sessionMiddleware(sessions *session.Registry, users *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			sess, err := sessions.Get(claims.Subject)
			if err != nil {
				if core.IsNotFound(err) {
					return errSessionExpired
				}
				return errors.Wrap(err, "getting session")
			}
			usr, err := users.GetByID(sess.UserID)
			if err != nil {
				if core.IsNotFound(err) {
					return errSessionExpired
				}
				return errors.Wrap(err, "finding user by ID")
			}
			ctx.Set(contextSessionKey, sess)
			ctx.Set(contextUserKey, usr)
			return next(ctx)
		}
	}
}
