// Package web раздаёт встроенную одностраничную клиентскую часть системы.
//
// Страница собрана в статический файл и вшита в бинарник через go:embed:
// отдельного процесса для фронтенда не требуется, клиент ходит в API
// того же сервера по базовому пути /api.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// Index возвращает обработчик, отдающий клиентскую страницу.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	}
}
