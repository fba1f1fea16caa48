package page

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
	"github.com/zhouzirui/expert-chat/backend/internal/render"
	"github.com/zhouzirui/expert-chat/backend/internal/service/ai"
	chatService "github.com/zhouzirui/expert-chat/backend/internal/service/chat"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Handler serves the single chat page.
type Handler struct {
	chatSvc  *chatService.Service
	markdown *render.Markdown
}

// New creates the page handler.
func New(chatSvc *chatService.Service, markdown *render.Markdown) *Handler {
	return &Handler{chatSvc: chatSvc, markdown: markdown}
}

// RegisterRoutes registers the page routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleAsk)
}

type view struct {
	Personas []persona.Persona
	Selected string
	Question string
	Answer   template.HTML
	Answered bool
	Failed   bool
}

func (h *Handler) newView(selected string) view {
	personas := h.chatSvc.Personas()
	if selected == "" && len(personas) > 0 {
		selected = string(personas[0].ID)
	}
	return view{Personas: personas, Selected: selected}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.write(w, http.StatusOK, h.newView(""))
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	label := r.PostFormValue("persona")
	v := h.newView(label)
	v.Question = r.PostFormValue("question")

	// newView's fallback only decides which radio is checked.
	answer, err := h.chatSvc.Ask(r.Context(), label, v.Question)
	switch {
	case errors.Is(err, chatService.ErrEmptyQuestion):
		h.write(w, http.StatusOK, v)
		return
	case errors.Is(err, ai.ErrProvider):
		v.Failed = true
		h.write(w, http.StatusBadGateway, v)
		return
	case err != nil:
		log.Printf("[page] unexpected error: %v", err)
		v.Failed = true
		h.write(w, http.StatusInternalServerError, v)
		return
	}

	rendered, err := h.markdown.HTML(answer.Content)
	if err != nil {
		log.Printf("[page] answer %s shown as plain text: %v", answer.ID, err)
		rendered = template.HTML(template.HTMLEscapeString(answer.Content))
	}
	v.Answer = rendered
	v.Answered = true
	h.write(w, http.StatusOK, v)
}

func (h *Handler) write(w http.ResponseWriter, status int, v view) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, v); err != nil {
		log.Printf("[page] failed to render template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[page] failed to write response: %v", err)
	}
}
