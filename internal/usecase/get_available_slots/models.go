package get_available_slots

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// Request modelo de requisição dos horários disponíveis
type Request struct {
	Date      time.Time // Data consultada (sem hora)
	ServiceID *int64    // ID do serviço (opcional; ausente usa a duração padrão)
}

// Response modelo de resposta com os horários disponíveis
type Response struct {
	Date            time.Time          // Data consultada
	Slots           []types.TimeString // Horários de início disponíveis, em ordem crescente
	DurationMinutes int                // Duração considerada no cálculo
	Message         string             // Mensagem quando o dia está fechado ou bloqueado
	International   *InternationalInfo // Janela internacional cobrindo a data, se houver
}

// InternationalInfo janela de atendimento internacional (informativo)
type InternationalInfo struct {
	CountryCode string
	CountryName string
	FlagEmoji   string
	City        *string
}
