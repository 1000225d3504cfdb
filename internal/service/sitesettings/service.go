package sitesettings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	settingsRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/settings"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings/models"
)

const (
	appointmentsVersionKey = "appointments_version"

	keyMapAddress = "map_address"
	keyMapLat     = "map_lat"
	keyMapLng     = "map_lng"
)

// Service serviço das configurações do site
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService cria o serviço de configurações
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetAppointmentsVersion devolve o marcador de versão dos agendamentos.
// O site usa a mudança desse valor para recarregar os horários disponíveis.
func (s *Service) GetAppointmentsVersion(ctx context.Context) (*models.VersionResponse, error) {
	value, err := s.settingsRepo.GetValue(ctx, appointmentsVersionKey)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return &models.VersionResponse{Version: nil}, nil
		}
		s.logger.Error("GetAppointmentsVersion: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAppointmentsVersion - repository error: %v", ErrInternal, err)
	}

	return &models.VersionResponse{Version: &value}, nil
}

// GetMap devolve as configurações do mapa. Chaves ausentes viram campos vazios.
func (s *Service) GetMap(ctx context.Context) (*models.MapSettings, error) {
	settings := &models.MapSettings{}

	var err error
	if settings.Address, err = s.getOrEmpty(ctx, keyMapAddress); err != nil {
		return nil, err
	}
	if settings.Lat, err = s.getOrEmpty(ctx, keyMapLat); err != nil {
		return nil, err
	}
	if settings.Lng, err = s.getOrEmpty(ctx, keyMapLng); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateMap grava as configurações do mapa
func (s *Service) UpdateMap(ctx context.Context, req *models.MapSettings) (*models.MapSettings, error) {
	s.logger.Info("UpdateMap: updating map settings")

	if strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	pairs := map[string]string{
		keyMapAddress: req.Address,
		keyMapLat:     req.Lat,
		keyMapLng:     req.Lng,
	}

	for key, value := range pairs {
		if err := s.settingsRepo.SetValue(ctx, key, value); err != nil {
			s.logger.Error("UpdateMap: failed to set key %s: %v", key, err)
			return nil, fmt.Errorf("%w: UpdateMap - failed to set %s: %v", ErrInternal, key, err)
		}
	}

	return s.GetMap(ctx)
}

func (s *Service) getOrEmpty(ctx context.Context, key string) (string, error) {
	value, err := s.settingsRepo.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return "", nil
		}
		s.logger.Error("getOrEmpty: repository error for key %s: %v", key, err)
		return "", fmt.Errorf("%w: failed to get %s: %v", ErrInternal, key, err)
	}
	return value, nil
}
