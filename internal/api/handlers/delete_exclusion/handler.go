package delete_exclusion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/exclusions"
)

const (
	msgInvalidRuleID = "identificador de regra invalido"
	msgRuleNotFound  = "regra de bloqueio nao encontrada"
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

// Handle DELETE /api/v1/exclusions/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil || ruleID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, exclusions.ErrRuleNotFound):
			h.logger.Warn("DELETE /exclusions/%d - Rule not found", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /exclusions/%d - Failed to delete rule: %v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /exclusions/%d - Rule deleted", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
