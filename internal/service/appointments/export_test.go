package appointments

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

func TestBuildCSV(t *testing.T) {
	email := "maria@example.com"
	notes := "Primeira visita"
	appointments := []*domain.Appointment{
		{
			ID:              1,
			ClientName:      "Maria Silva",
			ClientPhone:     "+55 11 99999-0000",
			ClientEmail:     &email,
			ServiceName:     "Limpeza de Pele",
			Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			LocationCountry: "BR",
			Status:          domain.StatusConfirmed,
			Notes:           &notes,
		},
		{
			ID:              2,
			ClientName:      "João Souza",
			ClientPhone:     "+55 11 98888-0000",
			ServiceName:     "Peeling Químico",
			Date:            time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			StartTime:       "14:30",
			LocationCountry: "PT",
			Status:          domain.StatusCancelled,
		},
	}

	data, err := buildCSV(appointments)
	require.NoError(t, err)

	// o BOM vem antes de qualquer conteúdo
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	reader := csv.NewReader(bytes.NewReader(data[len(utf8BOM):]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"1", "Maria Silva", "+55 11 99999-0000", "maria@example.com",
		"Limpeza de Pele", "2026-09-07", "10:00", "BR", "confirmed", "Primeira visita",
	}, records[1])

	// campos opcionais ausentes saem vazios
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "", records[2][9])
	assert.Equal(t, "cancelled", records[2][8])
}

func TestBuildCSV_EmptyList(t *testing.T) {
	data, err := buildCSV(nil)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, utf8BOM))

	reader := csv.NewReader(bytes.NewReader(data[len(utf8BOM):]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}
