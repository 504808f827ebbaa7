package get_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
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

// Handle GET /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil || rentalID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	result, err := h.service.GetByID(r.Context(), rentalID)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("GET /rentals/%d - Rental not found", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		default:
			h.logger.Error("GET /rentals/%d - Failed to fetch rental: %v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
