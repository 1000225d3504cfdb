package admin_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	appointmentsService "github.com/edumrsdw-devops/cadoreClinic/internal/service/appointments"
	appointmentsModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "id inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidStatus      = "status inválido"
	msgNotFound           = "agendamento não encontrado"
	msgNothingToUpdate    = "nada para atualizar"
)

type Handler struct {
	appointmentsService AppointmentsService
	logger              Logger
}

func NewHandler(appointmentsService AppointmentsService, logger Logger) *Handler {
	return &Handler{
		appointmentsService: appointmentsService,
		logger:              logger,
	}
}

// HandleList GET /api/admin/appointments?date&status&page&limit
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &appointmentsModels.ListAppointmentsRequest{
		Page:  parseIntOrDefault(query.Get("page"), 1),
		Limit: parseIntOrDefault(query.Get("limit"), 20),
	}

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if rawStatus := query.Get("status"); rawStatus != "" {
		req.Status = &rawStatus
	}

	result, err := h.appointmentsService.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/admin/appointments/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req appointmentsModels.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.appointmentsService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNothingToUpdate)
		default:
			h.logger.Error("PATCH /admin/appointments/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/admin/appointments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentsService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/appointments/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleStats GET /api/admin/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.appointmentsService.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// HandleExport GET /api/admin/export?start_date&end_date
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &appointmentsModels.ExportRequest{}

	if rawStart := query.Get("start_date"); rawStart != "" {
		start, err := time.Parse(domain.DateFormat, rawStart)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}

	if rawEnd := query.Get("end_date"); rawEnd != "" {
		end, err := time.Parse(domain.DateFormat, rawEnd)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	csv, err := h.appointmentsService.Export(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/export - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agendamentos.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
