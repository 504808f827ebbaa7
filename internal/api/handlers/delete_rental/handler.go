package delete_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "identificador de reserva invalido"
	msgRentalNotFound  = "reserva nao encontrada"
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

// Handle DELETE /api/v1/rentals/{rentalId}
//
// Удаление не перепроверяет бизнес-правила: это административный
// override, доступный по решению оператора.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "usuario nao autenticado")
		return
	}

	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil || rentalID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	if err := h.service.Delete(r.Context(), rentalID, actorID); err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("DELETE /rentals/%d - Rental not found", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		default:
			h.logger.Error("DELETE /rentals/%d - Failed to delete rental: actor=%d, error=%v",
				rentalID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rentals/%d - Rental deleted: actor=%d", rentalID, actorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
