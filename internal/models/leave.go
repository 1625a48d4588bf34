package models

// Status описывает состояние заявки. Внутри системы используются три
// значения-константы, однако операция аудита принимает произвольную строку —
// внешний контракт исходной системы сохранён без ужесточения.
type Status string

// Допустимые терминальные состояния заявки.
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest представляет заявку студента на отпуск.
//
// ID назначается хранилищем из монотонно растущего счётчика и никогда не
// переиспользуется. Заявка создаётся в состоянии Pending и далее только
// меняет статус; удаление не предусмотрено.
type LeaveRequest struct {
	ID        int    `json:"id"`         // Уникальный идентификатор заявки
	StudentID string `json:"student_id"` // Логин студента-заявителя
	Date      string `json:"date"`       // Дата отпуска в формате YYYY-MM-DD
	Reason    string `json:"reason"`     // Причина, свободный текст
	Status    Status `json:"status"`     // Текущее состояние заявки
}

// DummyLeave используется для приёма данных заявки из JSON-запроса,
// прежде чем передать их в хранилище. Все поля обязательны: проверяется
// только присутствие, формат даты не валидируется.
type DummyLeave struct {
	StudentID string `json:"student_id" validate:"required"` // Логин студента
	Date      string `json:"date" validate:"required"`       // Дата в формате YYYY-MM-DD
	Reason    string `json:"reason" validate:"required"`     // Причина
}
