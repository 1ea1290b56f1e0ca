package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRCodeSize = 256

// GetOrderQRCode handles GET /api/v1/orders/{id}/qrcode. The PNG encodes the
// public URL of the order.
func (s *Server) GetOrderQRCode(ctx echo.Context, id uuid.UUID, params QRCodeParams) error {
	o, err := s.getOrder(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	size := defaultQRCodeSize
	if params.Size != nil {
		size = *params.Size
	}
	png, err := qrcode.Encode(s.orderURL(o.ID().String()), qrcode.Medium, size)
	if err != nil {
		return s.fail(ctx, fmt.Errorf("encode qr code: %w", err))
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) orderURL(id string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/api/v1/orders/" + id
}
