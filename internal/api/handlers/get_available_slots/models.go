package get_available_slots

import (
	getAvailableSlots "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/get_available_slots"
)

// SlotsResponse modelo HTTP da resposta de horários disponíveis
type SlotsResponse struct {
	Slots         []string           `json:"slots"`
	Duration      int                `json:"duration"`
	Message       string             `json:"message,omitempty"`
	International *InternationalInfo `json:"international,omitempty"`
}

// InternationalInfo janela internacional cobrindo a data consultada
type InternationalInfo struct {
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	FlagEmoji   string  `json:"flag_emoji"`
	City        *string `json:"city,omitempty"`
}

// FromUseCaseResponse converte a resposta do use case em resposta HTTP
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	out := &SlotsResponse{
		Slots:    slots,
		Duration: resp.DurationMinutes,
		Message:  resp.Message,
	}

	if resp.International != nil {
		out.International = &InternationalInfo{
			CountryCode: resp.International.CountryCode,
			CountryName: resp.International.CountryName,
			FlagEmoji:   resp.International.FlagEmoji,
			City:        resp.International.City,
		}
	}

	return out
}
