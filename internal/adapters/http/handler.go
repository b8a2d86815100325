package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
	"github.com/randomtoy/kinun-go/internal/ports"
)

const (
	qrPath        = "/v1/line/qr.png"
	qrDefaultSize = 200
	qrMinSize     = 64
	qrMaxSize     = 1024
)

type Handler struct {
	svc  *app.DiagnosisService
	form app.FormOptions
	qr   ports.QREncoder
}

// NewHandler wires the API. A nil qr disables the QR endpoint.
func NewHandler(svc *app.DiagnosisService, form app.FormOptions, qr ports.QREncoder) *Handler {
	return &Handler{svc: svc, form: form, qr: qr}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/archetypes", h.ListArchetypes)
	e.GET("/v1/form/options", h.FormOptions)
	e.GET("/v1/diagnosis", h.Diagnose)
	e.GET(qrPath, h.LineQR)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListArchetypes(c echo.Context) error {
	all := h.svc.Archetypes()
	out := ArchetypeListResponse{Archetypes: make([]ArchetypeResponse, len(all))}
	for i, a := range all {
		out.Archetypes[i] = toArchetype(a)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) FormOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.form)
}

func (h *Handler) Diagnose(c echo.Context) error {
	year, err := intParam(c, "year")
	if err != nil {
		return mapError(c, err)
	}
	month, err := intParam(c, "month")
	if err != nil {
		return mapError(c, err)
	}
	day, err := intParam(c, "day")
	if err != nil {
		return mapError(c, err)
	}

	res, err := h.svc.Diagnose(year, month, day)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(res, h.share(c, res), requestID))
}

func (h *Handler) share(c echo.Context, res app.Result) ShareResp {
	s := ShareResp{
		Mode:         shareMode(c.Request().UserAgent()),
		AddFriendURL: res.AddFriendURL,
		MessageURL:   res.MessageURL,
	}
	if s.Mode == shareModeQR {
		s.QRFallbackURL = h.svc.Links().QRFallbackURL()
		if h.qr != nil {
			s.QRImageURL = qrPath
		}
	}
	return s
}

func (h *Handler) LineQR(c echo.Context) error {
	if h.qr == nil {
		return mapError(c, fmt.Errorf("qr: %w", domain.ErrFeatureDisabled))
	}

	size := qrDefaultSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < qrMinSize || parsed > qrMaxSize {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("size must be an integer between %d and %d", qrMinSize, qrMaxSize),
			})
		}
		size = parsed
	}

	png, err := h.qr.PNG(h.svc.Links().AddFriendURL(), size)
	if err != nil {
		return mapError(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func intParam(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s missing", domain.ErrIncompleteDate, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrIncompleteDate, name, raw)
	}
	return v, nil
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrIncompleteDate), errors.Is(err, domain.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.UserMessage(err)})
	case errors.Is(err, domain.ErrFeatureDisabled):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
