package set_user_quota

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/profiles"
)

const (
	msgInvalidUserID      = "identificador de usuario invalido"
	msgInvalidRequestBody = "corpo da requisicao invalido"
)

// SetQuotaRequest HTTP request model. Null weeklyQuota сбрасывает
// пользователя на квоту по умолчанию.
type SetQuotaRequest struct {
	WeeklyQuota *int `json:"weeklyQuota"`
}

// QuotaResponse HTTP response model
type QuotaResponse struct {
	UserID      int64 `json:"userId"`
	WeeklyQuota *int  `json:"weeklyQuota"`
}

type Handler struct {
	service ProfilesService
	logger  Logger
}

func NewHandler(service ProfilesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/quota
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req SetQuotaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%d/quota - Invalid request body: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.SetQuota(r.Context(), userID, req.WeeklyQuota)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /users/%d/quota - Invalid input: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/%d/quota - Failed to set quota: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if profile.WeeklyQuota != nil {
		h.logger.Info("PUT /users/%d/quota - Quota set to %d", userID, *profile.WeeklyQuota)
	} else {
		h.logger.Info("PUT /users/%d/quota - Quota reset to default", userID)
	}

	handlers.RespondJSON(w, http.StatusOK, &QuotaResponse{
		UserID:      profile.UserID,
		WeeklyQuota: profile.WeeklyQuota,
	})
}
