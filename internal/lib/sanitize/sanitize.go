// Package sanitize очищает пользовательский текст от HTML-разметки
// перед сохранением в базу. Хранится только чистый текст, экранирование
// при выводе выполняют шаблоны.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean удаляет из строки всю разметку, оставляя только текст.
// Пустая строка на входе дает пустую строку на выходе.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	cleaned := policy.Sanitize(s)
	// bluemonday экранирует сущности, а в базе должен лежать чистый текст
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
