package router

import (
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/company-query-builder/internal/dto"
	"github.com/DjordjeVuckovic/company-query-builder/internal/es"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/middleware"
	"github.com/labstack/echo/v4"
)

// QueryBuilder is the core operation the router exposes.
type QueryBuilder interface {
	Build(raw url.Values) (*es.Document, error)
}

type CompanyRouter struct {
	e       *echo.Echo
	builder QueryBuilder
	version string
}

func NewCompanyRouter(e *echo.Echo, builder QueryBuilder, version string) *CompanyRouter {
	return &CompanyRouter{
		e:       e,
		builder: builder,
		version: version,
	}
}

func (r *CompanyRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.GET("/company_query_builder", r.companyQueryHandler)
}

// companyQueryHandler godoc
// @Summary Build a company search query
// @Description Translates company search filters into an Elasticsearch query document. The query is not executed.
// @Tags companies
// @Produce json
// @Param revenue query string false "Revenue range, e.g. 1000-50000, 1000- or -50000"
// @Param cash query string false "Cash range, same format as revenue"
// @Param cid query []string false "Company id, repeatable" collectionFormat(multi)
// @Param sector_context query []string false "Sector id, repeatable" collectionFormat(multi)
// @Param ecommerce query string false "Only e-commerce companies (true, false, 1, 0)"
// @Param exclude_tps query string false "Exclude third-party suppliers (true, false, 1, 0)"
// @Param aggregate query string false "Aggregate flag (true, false, 1, 0)"
// @Param trading_activity query string false "Trading activity window, YYYYMMDD-YYYYMMDD"
// @Param limit query int false "Maximum results window (capped at 500)"
// @Param offset query int false "Result offset"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /v1/company_query_builder [get]
func (r *CompanyRouter) companyQueryHandler(c echo.Context) error {
	doc, err := r.builder.Build(c.QueryParams())
	if err != nil {
		return err
	}

	elapsed := time.Since(middleware.StartedAt(c))
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.JSON(http.StatusOK, dto.NewResponse(r.version, doc, "", elapsed))
}
