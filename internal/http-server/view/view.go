// Package view рендерит HTML-страницы. Используется штатная композиция
// шаблонов html/template: общий каркас "layout" и именованный блок
// "content", который определяет каждая страница.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

//go:embed templates/*.html
var files embed.FS

//go:embed static
var staticFiles embed.FS

const layoutFile = "templates/layout.html"

// Static отдает встроенные статические файлы: /css/main.css и прочие.
func Static() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Data общий контекст страницы. Client/Admin и Flashes заполняются
// из сессии, Content — данными конкретной страницы.
type Data struct {
	Title   string
	Client  *session.ClientIdentity
	Admin   *session.AdminIdentity
	Flashes []string
	Content any
}

// Renderer хранит разобранные шаблоны страниц. Через менеджер сессий
// он забирает одноразовые сообщения: сообщение показывается один раз
// и сразу удаляется из сессии.
type Renderer struct {
	pages   map[string]*template.Template
	manager *session.Manager
	log     *slog.Logger
}

var funcs = template.FuncMap{
	// money форматирует сумму в минимальных единицах валюты
	"money": func(v int64) string {
		return fmt.Sprintf("$%d.%02d", v/100, v%100)
	},
}

// New разбирает все встроенные шаблоны страниц вместе с каркасом.
func New(log *slog.Logger, manager *session.Manager) (*Renderer, error) {
	const op = "view.New"

	entries, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		if entry == layoutFile {
			continue
		}
		name := entry[len("templates/"):]
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, layoutFile, entry)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, manager: manager, log: log}, nil
}

// Render отдает страницу page со статусом status. Сессионные поля Data
// берутся из сессии запроса, если они не заполнены обработчиком.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data Data) {
	const op = "view.Render"

	tmpl, ok := rd.pages[page]
	if !ok {
		rd.log.Error("unknown template", slog.String("op", op), slog.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if s := session.From(r.Context()); s != nil {
		if data.Client == nil {
			data.Client = s.Client
		}
		if data.Admin == nil {
			data.Admin = s.Admin
		}
		if len(s.Flashes) > 0 {
			data.Flashes = s.PopFlashes()
			// cookie должен уйти до записи заголовков ответа
			if err := rd.manager.Save(r.Context(), w, s); err != nil {
				rd.log.Error("failed to save session", slog.String("op", op), sl.Err(err))
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		rd.log.Error("failed to execute template", slog.String("op", op),
			slog.String("page", page), sl.Err(err))
	}
}

// RenderError отдает страницу ошибки с заданным статусом и сообщением.
func (rd *Renderer) RenderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error.html", Data{
		Title:   fmt.Sprintf("Error %d", status),
		Content: message,
	})
}

// NotFound обработчик для несуществующих маршрутов.
func (rd *Renderer) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.RenderError(w, r, http.StatusNotFound, "Pagina no encontrada")
	}
}
