package list_rentals

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidDateFormat = "formato de data invalido, esperado YYYY-MM-DD"
	msgInvalidItemID     = "identificador de item invalido"
)

type Handler struct {
	service RentalsService
	logger  Logger
}

func NewHandler(service RentalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals?from=YYYY-MM-DD&to=YYYY-MM-DD&itemId=N
//
// Без параметра from расписание начинается с сегодняшнего дня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ScheduleRequest{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		req.To = &to
	}

	if raw := query.Get("itemId"); raw != "" {
		itemID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || itemID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidItemID)
			return
		}
		req.ItemID = &itemID
	}

	result, err := h.service.GetSchedule(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /rentals - Failed to fetch schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
