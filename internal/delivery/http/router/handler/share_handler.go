package handler

import (
	"net/http"

	"folio/config"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler serves a QR code pointing at the deployed site, for printing
// on business cards and slides.
type ShareHandler struct {
	qr  service.QRCodeService
	cfg *config.Config
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(qr service.QRCodeService, cfg *config.Config) *ShareHandler {
	return &ShareHandler{
		qr:  qr,
		cfg: cfg,
	}
}

// QR renders the site's public URL as a PNG QR code.
func (h *ShareHandler) QR(c echo.Context) error {
	url := h.cfg.Site.PublicURL
	if url == "" {
		return domainerrors.ErrItemNotFound.WithDetails("no public URL is configured")
	}

	png, err := h.qr.GenerateLinkQR(url)
	if err != nil {
		return errors.Wrap(err, "failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
