package check_conflict

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidItemID     = "identificador de item invalido"
	msgInvalidDateFormat = "formato de data invalido, esperado YYYY-MM-DD"
	msgInvalidPeriod     = "periodo invalido, esperado matutino ou vespertino"
	msgInvalidClassSlot  = "aula invalida, esperado '1 aula' a '5 aula'"
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	Conflict bool   `json:"conflict"`
	Message  string `json:"message,omitempty"`
	RentalID *int64 `json:"rentalId,omitempty"`
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

// Handle GET /api/v1/preflight/conflict?itemId=N&date=YYYY-MM-DD&period=P&classSlot=S
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	itemID, err := strconv.ParseInt(query.Get("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
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

	result, err := h.service.CheckConflict(r.Context(), itemID, date, period, classSlot)
	if err != nil {
		h.logger.Error("GET /preflight/conflict - Check failed: item=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.HasConflict() {
		handlers.RespondJSON(w, http.StatusOK, &ConflictResponse{Conflict: false})
		return
	}

	message := "este horario ja esta reservado"
	if result.OwnerUsername != "" {
		message = fmt.Sprintf("este horario ja esta reservado por %s", result.OwnerUsername)
	}

	handlers.RespondJSON(w, http.StatusOK, &ConflictResponse{
		Conflict: true,
		Message:  message,
		RentalID: &result.Conflicting.ID,
	})
}
