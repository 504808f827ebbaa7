package list_items

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ItemResponse HTTP response model
type ItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	CreatedAt string `json:"createdAt"`
}

// ItemsResponse HTTP модель списка ресурсов
type ItemsResponse struct {
	Items []*ItemResponse `json:"items"`
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

// Handle GET /api/v1/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /items - Failed to fetch items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainItems(items))
}

func fromDomainItems(items []*domain.Item) *ItemsResponse {
	out := make([]*ItemResponse, len(items))
	for i, item := range items {
		out[i] = &ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Available: item.Available,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ItemsResponse{Items: out}
}
