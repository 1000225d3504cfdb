package admin_appointments

import (
	"context"

	appointmentsModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, req *appointmentsModels.ListAppointmentsRequest) (*appointmentsModels.AppointmentListResponse, error)
	Update(ctx context.Context, id int64, req *appointmentsModels.UpdateAppointmentRequest) (*appointmentsModels.AppointmentResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*appointmentsModels.StatsResponse, error)
	Export(ctx context.Context, req *appointmentsModels.ExportRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
