package create_appointment

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// Request modelo de requisição de criação de agendamento
type Request struct {
	ClientName  string
	ClientPhone string
	ClientEmail *string
	ServiceID   int64
	Date        time.Time
	StartTime   types.TimeString
	Notes       *string
}

// Response modelo de resposta do agendamento criado
type Response struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ClientEmail     *string
	ServiceID       int64
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeString
	LocationCountry string
	Status          string
	Notes           *string
	CreatedAt       time.Time
}
