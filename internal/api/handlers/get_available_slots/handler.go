package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	getAvailableSlots "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "parâmetro date é obrigatório"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidServiceID = "service_id inválido"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/available-slots?date=YYYY-MM-DD&service_id=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}

	if rawServiceID := r.URL.Query().Get("service_id"); rawServiceID != "" {
		serviceID, err := strconv.ParseInt(rawServiceID, 10, 64)
		if err != nil || serviceID <= 0 {
			h.logger.Warn("GET /available-slots - Invalid service_id: %s", rawServiceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /available-slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
