package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core/game"
	"github.com/trezcool/ecoquest/core/goal"
	"github.com/trezcool/ecoquest/core/leaderboard"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/tree"
)

// Student dashboard panels. All handlers expect sessionMiddleware and roleMiddleware(user.RoleStudent).

func registerGoalAPI(g *echo.Group) {
	g.GET("", listGoals)
	g.POST("", createGoal)
	g.GET("/stats", goalStats)
	g.POST("/:id/progress", updateGoalProgress)
}

func listGoals(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Goals.List())
}

func createGoal(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data goal.NewGoal
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGoal")
	}
	g, err := sess.Goals.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, g)
}

func goalStats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Goals.Stats())
}

func updateGoalProgress(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	var data goal.ProgressUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProgressUpdate")
	}
	g, err := sess.Goals.Progress(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, g)
}

func registerTreeAPI(g *echo.Group) {
	g.GET("", listTrees)
	g.POST("", plantTree)
	g.GET("/stats", treeStats)
}

func listTrees(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Trees.List())
}

func plantTree(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data tree.NewTree
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTree")
	}
	t, err := sess.Trees.Plant(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func treeStats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Trees.Stats())
}

func registerPhotoAPI(g *echo.Group) {
	g.GET("", listPhotos)
	g.POST("", capturePhoto)
	g.GET("/stats", photoStats)
}

func listPhotos(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Photos.List())
}

// capturePhoto accepts an empty body: the simulated camera fills every field.
func capturePhoto(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data photo.Capture
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to Capture")
		}
	}
	p, err := sess.Photos.Capture(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, p)
}

func photoStats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Photos.Stats())
}

func registerCatalogueAPI(g *echo.Group) {
	g.GET("", gameCatalogue)
}

func gameCatalogue(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, game.Catalogue(usr.Level))
}

func registerLeaderboardAPI(g *echo.Group) {
	g.GET("", rankings)
}

func rankings(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	var q categoryQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to categoryQuery")
	}
	return ctx.JSON(http.StatusOK, sess.Leaderboard.Rankings(q.Category, leaderboard.Player{
		Name:   usr.Name,
		Avatar: usr.Avatar,
		Level:  usr.Level,
		XP:     usr.XP,
	}))
}
