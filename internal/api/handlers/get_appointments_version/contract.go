package get_appointments_version

import (
	"context"

	settingsModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings/models"
)

type SettingsService interface {
	GetAppointmentsVersion(ctx context.Context) (*settingsModels.VersionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
