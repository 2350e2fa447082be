package scheduling

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the public availability endpoint. Slot search is
// unauthenticated: it is what the booking widget calls.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/slots", h.FindSlots)
}

func (h *Handler) FindSlots(c echo.Context) error {
	var req SlotsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.FindSlots(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidRange), errors.Is(err, ErrServiceRequired):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, resp)
}
