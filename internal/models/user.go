// Package models содержит доменные структуры системы учёта заявок на отпуск:
// пользователей, заявки и вспомогательные типы для приёма данных из JSON-запросов.
package models

// User представляет учётную запись системы.
//
// Account — уникальный ключ поиска, по нему хранится не более одной записи.
// Пароль хранится открытым текстом: сравнение учётных данных в этой системе —
// точное совпадение строк (осознанное ограничение прототипа, см. DESIGN.md).
type User struct {
	Account  string // Уникальный логин (номер студента или "admin")
	Password string // Пароль открытым текстом
	Name     string // Отображаемое имя
	Role     string // Роль пользователя, student или admin
}

// Роли пользователей.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)
