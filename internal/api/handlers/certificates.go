package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/ecycle/internal/certificate"
	"github.com/donaldgifford/ecycle/internal/engine"
)

// CertificatePageHandler renders printable certificate pages.
type CertificatePageHandler struct {
	engine *engine.Engine
}

// NewCertificatePageHandler creates a new CertificatePageHandler.
func NewCertificatePageHandler(eng *engine.Engine) *CertificatePageHandler {
	return &CertificatePageHandler{engine: eng}
}

// Bulk handles GET /certificates/bulk/:id.
//
// @Summary Bulk disposal certificate page
// @Tags certificates
// @Produce html
// @Param id path int true "Bulk pickup ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /certificates/bulk/{id} [get]
func (h *CertificatePageHandler) Bulk(c echo.Context) error {
	return h.render(c, h.engine.BulkCertificate)
}

// Pickup handles GET /certificates/pickups/:id.
//
// @Summary Recycling certificate page
// @Tags certificates
// @Produce html
// @Param id path int true "Pickup ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /certificates/pickups/{id} [get]
func (h *CertificatePageHandler) Pickup(c echo.Context) error {
	return h.render(c, h.engine.PickupCertificate)
}

func (*CertificatePageHandler) render(
	c echo.Context,
	build func(context.Context, int64) (*certificate.Summary, error),
) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errorBody("invalid id"))
	}

	s, err := build(c.Request().Context(), id)
	if err != nil {
		return c.JSON(statusFor(err), errorBody("building certificate: "+err.Error()))
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return certificate.Page(s).Render(c.Request().Context(), c.Response())
}
