package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/chat"
)

type chatApi struct {
	metrics *Metrics
}

func registerChatAPI(g *echo.Group, metrics *Metrics) {
	api := chatApi{metrics: metrics}

	g.GET("/messages", api.messages)
	g.POST("/messages", api.send, rateLimitMiddleware())
	g.GET("/suggestions", api.suggestions)
}

type SendMessage struct {
	Text string `json:"text"`
}

func (api *chatApi) messages(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	return ctx.JSON(http.StatusOK, sess.Chat.Messages())
}

// send appends the user message; the assistant reply shows up in the transcript after the reply delay.
func (api *chatApi) send(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var data SendMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SendMessage")
	}
	data.Text = core.CleanString(data.Text)
	if data.Text == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "text", Error: "this field is required"})
	}

	msg, err := sess.Chat.Send(data.Text)
	if err != nil {
		if errors.Is(err, chat.ErrClosed) {
			return errSessionExpired
		}
		return errors.Wrap(err, "sending message")
	}
	api.metrics.ObserveReply(msg)
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *chatApi) suggestions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, chat.GetSuggestions())
}
