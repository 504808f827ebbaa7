package create_exclusion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/exclusions"
)

const (
	msgInvalidRequestBody = "corpo da requisicao invalido"
	msgInvalidPeriodSlot  = "periodo ou aula invalidos"
	msgItemNotFound       = "item nao encontrado"
)

type Handler struct {
	service ExclusionsService
	logger  Logger
}

func NewHandler(service ExclusionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/exclusions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateExclusionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /exclusions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /exclusions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodSlot)
		return
	}

	rule, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, exclusions.ErrItemNotFound):
			h.logger.Warn("POST /exclusions - Item not found: item=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, exclusions.ErrInvalidInput):
			h.logger.Warn("POST /exclusions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /exclusions - Failed to create rule: item=%d, error=%v", req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /exclusions - Rule created: id=%d, item=%d, weekday=%d",
		rule.ID, rule.ItemID, rule.Weekday)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainRule(rule))
}
