package create_rental

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "corpo da requisicao invalido"
	msgInvalidDateFormat  = "formato de data invalido, esperado YYYY-MM-DD"
	msgExclusionBlocked   = "este horario esta bloqueado para reservas"
	msgQuotaExceeded      = "limite semanal de reservas atingido"
	msgPastOrTodayDate    = "a data da reserva deve ser posterior a hoje"
	msgItemNotFound       = "item nao encontrado"
	msgActorNotFound      = "usuario nao encontrado"
	msgAccessDenied       = "sem permissao para reservar em nome de outro usuario"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "usuario nao autenticado")
		return
	}

	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и енумов)
	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("POST /rentals - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *createRental.SlotConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /rentals - Slot conflict: actor=%d, item=%d, holder=%s",
				actorID, req.ItemID, conflictErr.OwnerUsername)
			handlers.RespondError(w, http.StatusConflict, conflictMessage(conflictErr))

		case errors.Is(err, createRental.ErrSlotConflict):
			h.logger.Warn("POST /rentals - Slot conflict: actor=%d, item=%d", actorID, req.ItemID)
			handlers.RespondError(w, http.StatusConflict, "este horario ja esta reservado")

		case errors.Is(err, createRental.ErrExclusionBlocked):
			h.logger.Warn("POST /rentals - Exclusion blocked: actor=%d, item=%d, date=%s",
				actorID, req.ItemID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgExclusionBlocked)

		case errors.Is(err, createRental.ErrQuotaExceeded):
			h.logger.Warn("POST /rentals - Weekly quota exceeded: actor=%d", actorID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgQuotaExceeded)

		case errors.Is(err, createRental.ErrPastOrTodayDate):
			h.logger.Warn("POST /rentals - Date not in the future: actor=%d, date=%s", actorID, req.Date)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPastOrTodayDate)

		case errors.Is(err, createRental.ErrItemNotFound):
			h.logger.Warn("POST /rentals - Item not found: item=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createRental.ErrActorNotFound):
			h.logger.Warn("POST /rentals - Acting user not found: actor=%d", actorID)
			handlers.RespondNotFound(w, msgActorNotFound)

		case errors.Is(err, createRental.ErrAccessDenied):
			h.logger.Warn("POST /rentals - Access denied: actor=%d", actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: actor=%d, error=%v", actorID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rentals - Failed to create rental: actor=%d, item=%d, error=%v",
				actorID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /rentals - Rental created successfully: rental_id=%d, actor=%d, item=%d",
		result.ID, actorID, req.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// conflictMessage собирает сообщение с данными конфликтующего бронирования
func conflictMessage(e *createRental.SlotConflictError) string {
	if e.OwnerUsername == "" {
		return "este horario ja esta reservado"
	}
	return fmt.Sprintf("este horario ja esta reservado por %s", e.OwnerUsername)
}
