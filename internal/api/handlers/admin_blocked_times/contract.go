package admin_blocked_times

import (
	"context"

	scheduleModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedTimes(ctx context.Context) ([]scheduleModels.BlockedTimeResponse, error)
	CreateBlockedTime(ctx context.Context, req *scheduleModels.CreateBlockedTimeRequest) (*scheduleModels.BlockedTimeResponse, error)
	DeleteBlockedTime(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
