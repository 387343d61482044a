package echoapi

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// idParam reads the `:id` path param; ids that are not positive integers are not found.
func idParam(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id < 1 {
		return 0, errHttpNotFound
	}
	return id, nil
}

type (
	searchQuery struct {
		Search string `query:"search"`
	}

	categoryQuery struct {
		Category string `query:"category"`
	}

	rangeQuery struct {
		Range string `query:"range"`
	}
)

// attachment sends data as a downloadable JSON file.
func attachment(ctx echo.Context, filename string, data []byte) error {
	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": filename}),
	)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}
