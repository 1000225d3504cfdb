package domain

// Slot computation constants
const (
	// SlotStepMinutes passo fixo entre candidatos de horário
	SlotStepMinutes = 30

	// DefaultServiceDurationMinutes duração usada quando o serviço não é
	// informado ou não existe
	DefaultServiceDurationMinutes = 60

	// DefaultLocationCountry país padrão dos atendimentos fora de janelas
	// internacionais
	DefaultLocationCountry = "BR"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses conjunto de status aceitos na borda da API.
// O banco trata status como texto aberto; a validação acontece nos models.
var ValidStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseStatus valida e converte uma string em AppointmentStatus
func ParseStatus(s string) (AppointmentStatus, bool) {
	for _, valid := range ValidStatuses {
		if AppointmentStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
