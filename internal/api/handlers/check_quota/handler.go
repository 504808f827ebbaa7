package check_quota

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidUserID     = "identificador de usuario invalido"
	msgInvalidDateFormat = "formato de data invalido, esperado YYYY-MM-DD"
	msgQuotaExceeded     = "limite semanal de reservas atingido"
)

// QuotaResponse HTTP response model
type QuotaResponse struct {
	Exceeded bool   `json:"exceeded"`
	Message  string `json:"message,omitempty"`
}

type Handler struct {
	service PreflightService
	logger  Logger
}

func NewHandler(service PreflightService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preflight/quota?userId=N&date=YYYY-MM-DD
//
// Квота проверяется в неделе выбранной даты, не текущей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := strconv.ParseInt(query.Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	exceeded, err := h.service.CheckQuota(r.Context(), userID, date)
	if err != nil {
		h.logger.Error("GET /preflight/quota - Check failed: user=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &QuotaResponse{Exceeded: exceeded}
	if exceeded {
		response.Message = msgQuotaExceeded
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
