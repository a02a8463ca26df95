package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/company-query-builder/internal/dto"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/middleware"
	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler(version string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		elapsed := time.Since(middleware.StartedAt(c))

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, dto.NewResponse(version, nil, ve.Error(), elapsed))
			return
		}

		var qe *QueryBuildError
		if errors.As(err, &qe) {
			slog.Error("Query build failed",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"details", qe.Details())
			_ = c.JSON(http.StatusInternalServerError, dto.NewResponse(version, nil, qe.Error(), elapsed))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("Error %d", he.Code)
			_ = c.JSON(he.Code, dto.NewResponse(version, nil, msg, elapsed))
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, dto.NewResponse(version, nil, "Error 500", elapsed))
	}
}
