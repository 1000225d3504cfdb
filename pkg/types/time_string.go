package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString representa um horário do dia no formato "HH:MM" (24h, granularidade de minuto).
// É usado como tipo de valor em todo o sistema: nos modelos de domínio, nos DTOs HTTP
// e nas colunas TEXT do banco de dados.
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidTimeFormat é retornado quando a string não está no formato HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange é retornado quando uma operação aritmética sai do intervalo do dia
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// NewTimeString cria um TimeString a partir de um time.Time (descarta data e segundos)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString valida e converte uma string "HH:MM" em TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converte minutos desde a meia-noite em TimeString
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate verifica o formato HH:MM (00:00 - 23:59)
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsZero indica se o valor não foi preenchido
func (t TimeString) IsZero() bool {
	return t == ""
}

// String devolve a representação "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes converte o horário em minutos desde a meia-noite.
// O valor precisa ter sido validado antes; entrada inválida retorna erro.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes soma minutos ao horário, sem ultrapassar o fim do dia
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + minutes)
}

// IsBefore compara estritamente (t < other). Valores inválidos comparam como falso.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter compara estritamente (t > other). Valores inválidos comparam como falso.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// Scan implementa sql.Scanner para colunas TEXT e TIME
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = normalize(v)
		return nil
	case []byte:
		*t = normalize(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

// Value implementa driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// normalize corta sufixos de segundos ("HH:MM:SS" -> "HH:MM") vindos de colunas TIME
func normalize(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
