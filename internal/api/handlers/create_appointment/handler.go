package create_appointment

import (
	"errors"
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	createAppointment "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/create_appointment"
)

const (
	msgCreated            = "Agendamento realizado com sucesso!"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgServiceNotFound    = "serviço não encontrado"
	msgDayClosed          = "a clínica não atende neste dia"
	msgOutsideHours       = "horário fora do expediente"
	msgDateBlocked        = "este dia está bloqueado"
	msgSlotConflict       = "este horário acabou de ser reservado, escolha outro"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: date=%s, time=%s", req.AppointmentDate, req.AppointmentTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrDateBlocked):
			h.logger.Warn("POST /appointments - Date blocked: date=%s", req.AppointmentDate)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrDayClosed):
			h.logger.Warn("POST /appointments - Clinic closed: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: date=%s, time=%s", req.AppointmentDate, req.AppointmentTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, date=%s, time=%s",
		result.ID, req.AppointmentDate, req.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, &CreatedResponse{
		Message:     msgCreated,
		Appointment: FromUseCaseResponse(result),
	})
}
