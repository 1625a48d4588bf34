// Package memstore реализует хранилище записей в памяти процесса.
//
// Хранилище владеет коллекцией пользователей, коллекцией заявок и счётчиком
// идентификаторов. Все операции выполняются единственной владеющей горутиной,
// которая последовательно читает их из канала: это явная фиксация модели
// "одного писателя" вместо неявных блокировок. Данные не переживают
// перезапуск процесса.
package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chweng/leave-system/internal/models"
)

// ErrLeaveNotFound возвращается, когда заявка с указанным ID отсутствует.
var ErrLeaveNotFound = errors.New("leave request not found")

// ErrUserNotFound возвращается, когда пользователь с указанным логином отсутствует.
var ErrUserNotFound = errors.New("user not found")

// Seed описывает начальное наполнение хранилища при старте процесса.
type Seed struct {
	Users  []models.User
	Leaves []models.LeaveRequest
	NextID int
}

// DefaultSeed возвращает стартовый набор данных: два пользователя и две заявки.
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{Account: "12156208", Password: "123", Name: "王小明", Role: models.RoleStudent},
			{Account: "admin", Password: "admin", Name: "系統管理員", Role: models.RoleAdmin},
		},
		Leaves: []models.LeaveRequest{
			{ID: 1, StudentID: "12156208", Date: "2023-12-01", Reason: "病假", Status: models.StatusPending},
			{ID: 2, StudentID: "12156231", Date: "2023-12-05", Reason: "事假", Status: models.StatusApproved},
		},
		NextID: 3,
	}
}

// Store — хранилище пользователей и заявок в памяти.
//
// Поля users, leaves и nextID принадлежат горутине run и никогда не
// читаются извне напрямую; публичные методы передают ей замыкания через ops.
type Store struct {
	ops  chan func()
	done chan struct{}

	users  map[string]models.User
	leaves []models.LeaveRequest
	nextID int
}

// New создаёт хранилище, наполняет его данными из seed и запускает
// владеющую горутину. Хранилище следует закрывать методом Close.
func New(seed Seed) *Store {
	s := &Store{
		ops:    make(chan func()),
		done:   make(chan struct{}),
		users:  make(map[string]models.User, len(seed.Users)),
		leaves: make([]models.LeaveRequest, 0, len(seed.Leaves)),
		nextID: seed.NextID,
	}
	for _, u := range seed.Users {
		s.users[u.Account] = u
	}
	s.leaves = append(s.leaves, seed.Leaves...)
	if s.nextID < 1 {
		s.nextID = 1
	}

	go s.run()
	return s
}

// Close останавливает владеющую горутину. Операции после Close завершаются ошибкой.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) run() {
	for {
		select {
		case op := <-s.ops:
			op()
		case <-s.done:
			return
		}
	}
}

// do передаёт операцию владеющей горутине и дожидается её выполнения.
func (s *Store) do(ctx context.Context, op string, fn func()) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	executed := make(chan struct{})
	wrapped := func() {
		fn()
		close(executed)
	}

	select {
	case s.ops <- wrapped:
	case <-s.done:
		return fmt.Errorf("%s: store is closed", op)
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}

	select {
	case <-executed:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// FindUser возвращает пользователя по логину или ErrUserNotFound.
func (s *Store) FindUser(ctx context.Context, account string) (*models.User, error) {
	const op = "memstore.FindUser"

	var (
		user  models.User
		found bool
	)
	err := s.do(ctx, op, func() {
		user, found = s.users[account]
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return &user, nil
}

// ListLeaves возвращает заявки в порядке создания. Пустой studentID означает
// отсутствие фильтра: возвращаются все заявки. Возвращаются копии записей.
func (s *Store) ListLeaves(ctx context.Context, studentID string) ([]models.LeaveRequest, error) {
	const op = "memstore.ListLeaves"

	var result []models.LeaveRequest
	err := s.do(ctx, op, func() {
		result = make([]models.LeaveRequest, 0, len(s.leaves))
		for _, l := range s.leaves {
			if studentID == "" || l.StudentID == studentID {
				result = append(result, l)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateLeave назначает следующий ID из счётчика, создаёт заявку в состоянии
// Pending, добавляет её в конец коллекции и возвращает копию созданной записи.
func (s *Store) CreateLeave(ctx context.Context, studentID, date, reason string) (models.LeaveRequest, error) {
	const op = "memstore.CreateLeave"

	var created models.LeaveRequest
	err := s.do(ctx, op, func() {
		created = models.LeaveRequest{
			ID:        s.nextID,
			StudentID: studentID,
			Date:      date,
			Reason:    reason,
			Status:    models.StatusPending,
		}
		s.leaves = append(s.leaves, created)
		s.nextID++
	})
	if err != nil {
		return models.LeaveRequest{}, err
	}
	return created, nil
}

// UpdateLeaveStatus находит заявку по ID и безусловно перезаписывает её статус,
// возвращая обновлённую запись. Предыдущее состояние не проверяется: повторный
// вызов с тем же статусом идемпотентен. Если заявки нет — ErrLeaveNotFound.
func (s *Store) UpdateLeaveStatus(ctx context.Context, id int, status models.Status) (models.LeaveRequest, error) {
	const op = "memstore.UpdateLeaveStatus"

	var (
		updated models.LeaveRequest
		found   bool
	)
	err := s.do(ctx, op, func() {
		for i := range s.leaves {
			if s.leaves[i].ID == id {
				s.leaves[i].Status = status
				updated = s.leaves[i]
				found = true
				return
			}
		}
	})
	if err != nil {
		return models.LeaveRequest{}, err
	}
	if !found {
		return models.LeaveRequest{}, fmt.Errorf("%s: %w", op, ErrLeaveNotFound)
	}
	return updated, nil
}
