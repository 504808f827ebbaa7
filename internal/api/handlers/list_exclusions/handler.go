package list_exclusions

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidItemID = "identificador de item invalido"
)

// ExclusionResponse HTTP response model
type ExclusionResponse struct {
	ID        int64   `json:"id"`
	ItemID    int64   `json:"itemId"`
	Weekday   int     `json:"weekday"`
	Period    *string `json:"period,omitempty"`
	ClassSlot *string `json:"classSlot,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ExclusionsResponse HTTP модель списка правил
type ExclusionsResponse struct {
	Rules []*ExclusionResponse `json:"rules"`
}

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

// Handle GET /api/v1/exclusions?itemId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var itemID *int64
	if raw := r.URL.Query().Get("itemId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondBadRequest(w, msgInvalidItemID)
			return
		}
		itemID = &id
	}

	rules, err := h.service.List(r.Context(), itemID)
	if err != nil {
		h.logger.Error("GET /exclusions - Failed to fetch rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainRules(rules))
}

func fromDomainRules(rules []*domain.ExclusionRule) *ExclusionsResponse {
	out := make([]*ExclusionResponse, len(rules))
	for i, rule := range rules {
		resp := &ExclusionResponse{
			ID:        rule.ID,
			ItemID:    rule.ItemID,
			Weekday:   rule.Weekday,
			CreatedAt: rule.CreatedAt.Format(time.RFC3339),
		}
		if rule.Period != nil {
			period := string(*rule.Period)
			resp.Period = &period
		}
		if rule.ClassSlot != nil {
			classSlot := string(*rule.ClassSlot)
			resp.ClassSlot = &classSlot
		}
		out[i] = resp
	}
	return &ExclusionsResponse{Rules: out}
}
