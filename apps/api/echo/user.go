package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core/session"
	"github.com/trezcool/ecoquest/core/user"
)

type authApi struct {
	tokens   tokenizer
	users    *user.Service
	sessions *session.Registry
	metrics  *Metrics
}

func registerAuthAPI(
	g *echo.Group,
	authed []echo.MiddlewareFunc,
	tokens tokenizer,
	users *user.Service,
	sessions *session.Registry,
	metrics *Metrics,
) {
	api := authApi{
		tokens:   tokens,
		users:    users,
		sessions: sessions,
		metrics:  metrics,
	}

	// un-authed endpoints
	ag := g.Group("/auth")
	ag.POST("/login", api.login)

	// authed endpoints
	ag.POST("/logout", api.logout, authed...)

	mg := g.Group("/me", authed...)
	mg.GET("", api.me)
	mg.PUT("/avatar", api.setAvatar, roleMiddleware(user.RoleStudent))
	mg.PUT("/age-group", api.setAgeGroup, roleMiddleware(user.RoleStudent))
}

type (
	LoginResponse struct {
		Token    string    `json:"token"`
		Created  bool      `json:"created"`
		User     user.User `json:"user"`
		NextStep string    `json:"next_step"`
	}

	MeResponse struct {
		User     user.User `json:"user"`
		NextStep string    `json:"next_step"`
	}
)

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	var data user.Login
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Login")
	}

	usr, created, err := api.users.Login(data)
	if err != nil {
		return err
	}
	sess, err := api.sessions.Open(usr)
	if err != nil {
		return errors.Wrap(err, "opening session")
	}
	api.metrics.sessionsOpened.WithLabelValues(usr.Role).Inc()

	token, err := api.tokens.generate(sess)
	if err != nil {
		api.sessions.Close(sess.ID)
		return errors.Wrap(err, "generating token")
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	return ctx.JSON(code, LoginResponse{Token: token, Created: created, User: usr, NextStep: usr.NextStep()})
}

func (api *authApi) logout(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	api.sessions.Close(sess.ID)
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, MeResponse{User: usr, NextStep: usr.NextStep()})
}

func (api *authApi) setAvatar(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	var data user.SetAvatar
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetAvatar")
	}

	usr, err = api.users.SetAvatar(usr.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, MeResponse{User: usr, NextStep: usr.NextStep()})
}

func (api *authApi) setAgeGroup(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	var data user.SetAgeGroup
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetAgeGroup")
	}

	usr, err = api.users.SetAgeGroup(usr.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, MeResponse{User: usr, NextStep: usr.NextStep()})
}
