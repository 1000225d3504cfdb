package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	contactRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/contact"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/contact/models"
)

// Service serviço das mensagens de contato
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService cria o serviço de mensagens
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create grava uma mensagem enviada pelo formulário do site
func (s *Service) Create(ctx context.Context, req *models.CreateMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("Create: new contact message from %s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	created, err := s.contactRepo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created message id=%d", created.ID)
	return models.FromDomainMessage(created), nil
}

// List lista as mensagens recebidas (painel admin)
func (s *Service) List(ctx context.Context) ([]models.MessageResponse, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMessageList(messages), nil
}

// MarkRead marca uma mensagem como lida
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	s.logger.Info("MarkRead: message id=%d", id)

	if err := s.contactRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("MarkRead: message id=%d not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("MarkRead: repository error for message id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete remove uma mensagem
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting message id=%d", id)

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("Delete: message id=%d not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("Delete: repository error for message id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
