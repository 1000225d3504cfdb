package appointments

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// utf8BOM prefixo que faz o Excel abrir o CSV com acentuação correta
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"ID", "Cliente", "Telefone", "Email", "Serviço",
	"Data", "Horário", "País", "Status", "Observações",
}

// buildCSV monta o arquivo CSV exportado pelo painel
func buildCSV(appointments []*domain.Appointment) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, appointment := range appointments {
		record := []string{
			formatID(appointment.ID),
			appointment.ClientName,
			appointment.ClientPhone,
			derefOrEmpty(appointment.ClientEmail),
			appointment.ServiceName,
			appointment.Date.Format(domain.DateFormat),
			appointment.StartTime.String(),
			appointment.LocationCountry,
			string(appointment.Status),
			derefOrEmpty(appointment.Notes),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
