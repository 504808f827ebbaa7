package check_availability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/preflight"
)

const (
	msgInvalidItemID     = "identificador de item invalido"
	msgInvalidDateFormat = "formato de data invalido, esperado YYYY-MM-DD"
	msgInvalidPeriod     = "periodo invalido, esperado matutino ou vespertino"
	msgInvalidClassSlot  = "aula invalida, esperado '1 aula' a '5 aula'"
	msgSlotExcluded      = "este horario esta bloqueado para reservas"
	msgSlotTaken         = "este horario ja esta reservado"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

type Handler struct {
	service PreflightService
	logger  Logger
}

func NewHandler(service PreflightService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preflight/availability?itemId=N&date=YYYY-MM-DD&period=P&classSlot=S
//
// Некорректная дата не является ошибкой запроса: клиент опрашивает
// эндпоинт на каждое изменение формы, поэтому отвечаем 200 с
// available=false и подсказкой о формате.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	itemID, err := strconv.ParseInt(query.Get("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
			Available: false,
			Reason:    "invalid_date",
			Message:   msgInvalidDateFormat,
		})
		return
	}

	period, err := domain.ParsePeriod(query.Get("period"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	classSlot, err := domain.ParseClassSlot(query.Get("classSlot"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClassSlot)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), itemID, date, period, classSlot)
	if err != nil {
		h.logger.Error("GET /preflight/availability - Check failed: item=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	if result.Available {
		handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{Available: true})
		return
	}

	response := &AvailabilityResponse{
		Available: false,
		Reason:    string(result.Reason),
	}

	switch result.Reason {
	case preflight.ReasonExcluded:
		response.Message = msgSlotExcluded
	case preflight.ReasonConflict:
		response.Message = msgSlotTaken
		if result.Conflict != nil && result.Conflict.OwnerUsername != "" {
			response.Message = fmt.Sprintf("este horario ja esta reservado por %s", result.Conflict.OwnerUsername)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
