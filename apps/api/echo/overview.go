package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func registerOverviewAPI(g *echo.Group) {
	g.GET("", dashboardOverview)
}

// dashboardOverview returns the landing cards of the caller's dashboard.
func dashboardOverview(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if usr.IsStudent() {
		return ctx.JSON(http.StatusOK, sess.StudentOverview(usr))
	}
	return ctx.JSON(http.StatusOK, sess.TeacherOverview(usr))
}
