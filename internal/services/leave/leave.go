// Package leave содержит бизнес-логику работы с заявками на отпуск:
// создание, выборку и аудит (смену статуса администратором).
package leave

import (
	"context"
	"log/slog"

	"github.com/chweng/leave-system/internal/models"
)

// LeaveRepository определяет методы для работы с заявками в хранилище.
type LeaveRepository interface {
	// ListLeaves возвращает заявки в порядке создания; пустой studentID — все заявки.
	ListLeaves(ctx context.Context, studentID string) ([]models.LeaveRequest, error)
	// CreateLeave создаёт заявку в состоянии Pending и возвращает её.
	CreateLeave(ctx context.Context, studentID, date, reason string) (models.LeaveRequest, error)
	// UpdateLeaveStatus перезаписывает статус заявки по ID.
	UpdateLeaveStatus(ctx context.Context, id int, status models.Status) (models.LeaveRequest, error)
}

// Service реализует бизнес-логику работы с заявками.
type Service struct {
	repo LeaveRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo LeaveRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает заявки студента либо все заявки при пустом studentID.
// Права вызывающего не проверяются: это известный пробел исходной системы,
// сохранённый ради поведенческого паритета (см. DESIGN.md).
func (s *Service) List(ctx context.Context, studentID string) ([]models.LeaveRequest, error) {
	return s.repo.ListLeaves(ctx, studentID)
}

// Apply создаёт новую заявку и возвращает созданную запись.
// Присутствие полей проверяет обработчик; формат даты не валидируется.
func (s *Service) Apply(ctx context.Context, req models.DummyLeave) (models.LeaveRequest, error) {
	created, err := s.repo.CreateLeave(ctx, req.StudentID, req.Date, req.Reason)
	if err != nil {
		return models.LeaveRequest{}, err
	}

	s.log.Info("created new leave request",
		slog.Int("id", created.ID),
		slog.String("student_id", created.StudentID))

	return created, nil
}

// Audit перезаписывает статус заявки. Значение статуса не ограничивается
// тремя каноническими: произвольная строка принимается, как и в исходной
// системе. Ошибка хранилища ErrLeaveNotFound пробрасывается вызывающему.
func (s *Service) Audit(ctx context.Context, id int, status string) (models.LeaveRequest, error) {
	updated, err := s.repo.UpdateLeaveStatus(ctx, id, models.Status(status))
	if err != nil {
		return models.LeaveRequest{}, err
	}

	s.log.Info("leave request audited",
		slog.Int("id", updated.ID),
		slog.String("status", string(updated.Status)))

	return updated, nil
}
