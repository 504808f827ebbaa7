package create_item

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/items"
)

const (
	msgInvalidRequestBody = "corpo da requisicao invalido"
)

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name      string `json:"name"`
	Available *bool  `json:"available,omitempty"` // по умолчанию true
}

// ItemResponse HTTP response model
type ItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	service ItemsService
	logger  Logger
}

func NewHandler(service ItemsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.service.Create(r.Context(), req.Name, available)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /items - Failed to create item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items - Item created: id=%d, name=%s", item.ID, item.Name)
	handlers.RespondJSON(w, http.StatusCreated, &ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Available: item.Available,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	})
}
