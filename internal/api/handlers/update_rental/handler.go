package update_rental

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	updateRental "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental"
)

const (
	msgInvalidRentalID    = "identificador de reserva invalido"
	msgInvalidRequestBody = "corpo da requisicao invalido"
	msgInvalidDateFormat  = "formato de data invalido, esperado YYYY-MM-DD"
	msgRentalNotFound     = "reserva nao encontrada"
	msgDuplicateSlot      = "ja existe uma reserva identica"
	msgPastOrTodayDate    = "a data da reserva deve ser posterior a hoje"
	msgItemNotFound       = "item nao encontrado"
	msgActorNotFound      = "usuario nao encontrado"
	msgAccessDenied       = "sem permissao para reservar em nome de outro usuario"
)

type Handler struct {
	useCase UpdateRentalUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rentals/{rentalId}
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

	var req UpdateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rentals/%d - Invalid request body: %v", rentalID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(rentalID, actorID)
	if err != nil {
		h.logger.Warn("PUT /rentals/%d - Failed to parse request: %v", rentalID, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var dupErr *updateRental.DuplicateSlotError

		switch {
		case errors.As(err, &dupErr):
			h.logger.Warn("PUT /rentals/%d - Duplicate slot: actor=%d, holder=%s",
				rentalID, actorID, dupErr.OwnerUsername)
			handlers.RespondError(w, http.StatusConflict, duplicateMessage(dupErr))

		case errors.Is(err, updateRental.ErrDuplicateSlot):
			h.logger.Warn("PUT /rentals/%d - Duplicate slot: actor=%d", rentalID, actorID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, updateRental.ErrRentalNotFound):
			h.logger.Warn("PUT /rentals/%d - Rental not found", rentalID)
			handlers.RespondNotFound(w, msgRentalNotFound)

		case errors.Is(err, updateRental.ErrPastOrTodayDate):
			h.logger.Warn("PUT /rentals/%d - Date not in the future: actor=%d, date=%s",
				rentalID, actorID, req.Date)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPastOrTodayDate)

		case errors.Is(err, updateRental.ErrItemNotFound):
			h.logger.Warn("PUT /rentals/%d - Item not found: item=%d", rentalID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, updateRental.ErrActorNotFound):
			h.logger.Warn("PUT /rentals/%d - Acting user not found: actor=%d", rentalID, actorID)
			handlers.RespondNotFound(w, msgActorNotFound)

		case errors.Is(err, updateRental.ErrAccessDenied):
			h.logger.Warn("PUT /rentals/%d - Access denied: actor=%d", rentalID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateRental.ErrInvalidInput):
			h.logger.Warn("PUT /rentals/%d - Invalid input: error=%v", rentalID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /rentals/%d - Failed to update rental: actor=%d, error=%v",
				rentalID, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /rentals/%d - Rental updated successfully: actor=%d", rentalID, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// duplicateMessage собирает сообщение с данными занимающего слот бронирования
func duplicateMessage(e *updateRental.DuplicateSlotError) string {
	if e.OwnerUsername == "" {
		return msgDuplicateSlot
	}
	return fmt.Sprintf("este horario ja esta reservado por %s", e.OwnerUsername)
}
