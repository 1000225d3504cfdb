package migrate

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/ptr"
)

//go:embed schema.sql
var schemaSQL string

// Logger interface mínima de log usada pela migração
type Logger interface {
	Info(format string, v ...interface{})
}

// Run aplica o esquema e, na primeira subida, a carga inicial de dados.
// É idempotente: tabelas já existentes e dados já carregados são preservados.
func Run(ctx context.Context, db *sql.DB, log Logger) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: Run - exec schema: %v", ErrApplySchema, err)
	}

	seeded, err := seedAdminUser(ctx, db)
	if err != nil {
		return err
	}
	if seeded {
		log.Info("migrate: default admin user created (username=admin)")
	}

	if err := seedServices(ctx, db); err != nil {
		return err
	}
	if err := seedWorkingHours(ctx, db); err != nil {
		return err
	}
	if err := seedInternationalDates(ctx, db); err != nil {
		return err
	}
	if err := seedSettings(ctx, db); err != nil {
		return err
	}

	log.Info("migrate: schema up to date")
	return nil
}

func seedAdminUser(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return false, fmt.Errorf("%w: seedAdminUser - count users: %v", ErrSeed, err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("%w: seedAdminUser - hash password: %v", ErrSeed, err)
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO admin_users (username, password_hash, name) VALUES ($1, $2, $3)",
		"admin", string(hash), "Administrador",
	)
	if err != nil {
		return false, fmt.Errorf("%w: seedAdminUser - insert user: %v", ErrSeed, err)
	}

	return true, nil
}

type seedService struct {
	name        string
	description *string
	duration    int
	price       *float64
}

func seedServices(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return fmt.Errorf("%w: seedServices - count services: %v", ErrSeed, err)
	}
	if count > 0 {
		return nil
	}

	services := []seedService{
		{"Consulta de Avaliação", ptr.Ptr("Avaliação completa com plano de tratamento"), 60, ptr.Ptr(150.0)},
		{"Limpeza de Pele", ptr.Ptr("Limpeza profunda com extração"), 45, ptr.Ptr(180.0)},
		{"Peeling Químico", ptr.Ptr("Renovação celular com ácidos"), 45, ptr.Ptr(250.0)},
		{"Microagulhamento", ptr.Ptr("Estímulo de colágeno com dermapen"), 90, ptr.Ptr(350.0)},
		{"Retorno", ptr.Ptr("Consulta de acompanhamento"), 60, nil},
	}

	for i, svc := range services {
		_, err := db.ExecContext(ctx,
			"INSERT INTO services (name, description, duration, price, sort_order) VALUES ($1, $2, $3, $4, $5)",
			svc.name, svc.description, svc.duration, svc.price, i+1,
		)
		if err != nil {
			return fmt.Errorf("%w: seedServices - insert service %q: %v", ErrSeed, svc.name, err)
		}
	}

	return nil
}

func seedWorkingHours(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM working_hours").Scan(&count); err != nil {
		return fmt.Errorf("%w: seedWorkingHours - count rows: %v", ErrSeed, err)
	}
	if count > 0 {
		return nil
	}

	// 0=domingo..6=sábado; domingo fica cadastrado porém inativo
	for day := 0; day <= 6; day++ {
		start, end, active := "09:00", "18:00", true
		switch day {
		case 0:
			active = false
		case 6:
			end = "14:00"
		}

		_, err := db.ExecContext(ctx,
			"INSERT INTO working_hours (day_of_week, start_time, end_time, active) VALUES ($1, $2, $3, $4)",
			day, start, end, active,
		)
		if err != nil {
			return fmt.Errorf("%w: seedWorkingHours - insert day %d: %v", ErrSeed, day, err)
		}
	}

	return nil
}

func seedInternationalDates(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM international_dates").Scan(&count); err != nil {
		return fmt.Errorf("%w: seedInternationalDates - count rows: %v", ErrSeed, err)
	}
	if count > 0 {
		return nil
	}

	windows := []struct {
		code, name, flag, start, end string
		city                         *string
	}{
		{"PT", "Portugal", "🇵🇹", "2026-10-05", "2026-10-16", ptr.Ptr("Lisboa")},
		{"NL", "Holanda", "🇳🇱", "2026-11-09", "2026-11-13", ptr.Ptr("Amsterdã")},
		{"ES", "Espanha", "🇪🇸", "2026-12-01", "2026-12-04", ptr.Ptr("Madri")},
	}

	for _, w := range windows {
		_, err := db.ExecContext(ctx,
			"INSERT INTO international_dates (country_code, country_name, flag_emoji, start_date, end_date, city) VALUES ($1, $2, $3, $4, $5, $6)",
			w.code, w.name, w.flag, w.start, w.end, w.city,
		)
		if err != nil {
			return fmt.Errorf("%w: seedInternationalDates - insert window %s: %v", ErrSeed, w.code, err)
		}
	}

	return nil
}

func seedSettings(ctx context.Context, db *sql.DB) error {
	defaults := map[string]string{
		"map_address": "Av. Paulista, 1000 - São Paulo, SP",
		"map_lat":     "-23.5613",
		"map_lng":     "-46.6565",
	}

	for key, value := range defaults {
		_, err := db.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING",
			key, value,
		)
		if err != nil {
			return fmt.Errorf("%w: seedSettings - insert key %s: %v", ErrSeed, key, err)
		}
	}

	return nil
}
