package echoapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core/content"
	"github.com/trezcool/ecoquest/core/game"
	"github.com/trezcool/ecoquest/core/quiz"
	"github.com/trezcool/ecoquest/core/student"
)

// Teacher dashboard panels. All handlers expect sessionMiddleware and roleMiddleware(user.RoleTeacher).

func registerQuizAPI(g *echo.Group) {
	g.GET("", listQuizzes)
	g.POST("", createQuiz)
	g.GET("/stats", quizStats)
	g.GET("/samples/:topic", sampleQuestions)
	g.PUT("/:id/toggle", toggleQuiz)
	g.DELETE("/:id", removeQuiz)
}

func listQuizzes(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Quizzes.List())
}

func createQuiz(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data quiz.NewQuiz
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuiz")
	}
	q, err := sess.Quizzes.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, q)
}

func quizStats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Quizzes.Stats())
}

func sampleQuestions(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	qs, ok := sess.Quizzes.SampleQuestions(ctx.Param("topic"))
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, qs)
}

func toggleQuiz(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	q, err := sess.Quizzes.ToggleActive(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, q)
}

func removeQuiz(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := sess.Quizzes.Remove(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func registerGameAPI(g *echo.Group) {
	g.GET("", listGames)
	g.POST("", createGame)
	g.GET("/stats", gameStats)
	g.PUT("/:id/toggle", toggleGame)
	g.DELETE("/:id", removeGame)
}

func listGames(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Games.List())
}

func createGame(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data game.NewGame
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGame")
	}
	g, err := sess.Games.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, g)
}

func gameStats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Games.Stats())
}

func toggleGame(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	g, err := sess.Games.ToggleActive(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, g)
}

func removeGame(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := sess.Games.Remove(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

type rosterApi struct {
	metrics *Metrics
}

func registerRosterAPI(g *echo.Group, metrics *Metrics) {
	api := rosterApi{metrics: metrics}

	g.GET("", api.search)
	g.POST("", api.add)
	g.GET("/stats", api.stats)
	g.POST("/import", api.importCSV)
}

func (api *rosterApi) search(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var q searchQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to searchQuery")
	}
	return ctx.JSON(http.StatusOK, sess.Students.Search(q.Search))
}

func (api *rosterApi) add(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	s, err := sess.Students.Add(data, student.Inviter{Name: usr.Name, ClassCode: sess.ClassCode(usr)})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *rosterApi) stats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Students.Stats())
}

// importCSV reads the roster from the multipart `file` field, or from the raw body otherwise.
func (api *rosterApi) importCSV(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	var r io.Reader = ctx.Request().Body
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := ctx.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "missing file").SetInternal(err)
		}
		f, err := fh.Open()
		if err != nil {
			return errors.Wrap(err, "opening uploaded file")
		}
		defer f.Close()
		r = f
	}

	imported, err := sess.Students.ImportCSV(r)
	if err != nil {
		return errors.Wrap(err, "importing students")
	}
	if imported == nil {
		imported = []student.Student{}
	}
	api.metrics.importedStudents.Add(float64(len(imported)))
	return ctx.JSON(http.StatusCreated, imported)
}

func registerAnalyticsAPI(g *echo.Group) {
	g.GET("", analyticsReport)
	g.GET("/export", exportAnalytics)
}

func analyticsReport(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var q rangeQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to rangeQuery")
	}
	report, err := sess.Analytics.Report(q.Range)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report)
}

func exportAnalytics(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var q rangeQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to rangeQuery")
	}
	filename, data, err := sess.Analytics.Export(q.Range)
	if err != nil {
		return err
	}
	return attachment(ctx, filename, data)
}

func registerContentAPI(g *echo.Group) {
	g.POST("", generateContent)
	g.POST("/export", exportContent)
}

func generate(ctx echo.Context) (content.Material, error) {
	sess, err := getContextSession(ctx)
	if err != nil {
		return content.Material{}, errors.Wrap(err, "getting context session")
	}
	var data content.Request
	if err := ctx.Bind(&data); err != nil {
		return content.Material{}, errors.Wrap(err, "binding to Request")
	}
	return sess.Content.Generate(data)
}

func generateContent(ctx echo.Context) error {
	m, err := generate(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

func exportContent(ctx echo.Context) error {
	m, err := generate(ctx)
	if err != nil {
		return err
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	filename, data, err := sess.Content.Export(m)
	if err != nil {
		return errors.Wrap(err, "exporting content")
	}
	return attachment(ctx, filename, data)
}
