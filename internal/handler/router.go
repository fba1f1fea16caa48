package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/expert-chat/backend/internal/handler/chat"
	"github.com/zhouzirui/expert-chat/backend/internal/handler/page"
	"github.com/zhouzirui/expert-chat/backend/internal/handler/persona"
	middlewarePkg "github.com/zhouzirui/expert-chat/backend/internal/middleware"
	personaModel "github.com/zhouzirui/expert-chat/backend/internal/model/persona"
	"github.com/zhouzirui/expert-chat/backend/internal/render"
	chatService "github.com/zhouzirui/expert-chat/backend/internal/service/chat"
	"github.com/zhouzirui/expert-chat/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, chatSvc *chatService.Service, markdown *render.Markdown) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	page.New(chatSvc, markdown).RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.CORS)

		persona.New(personas).RegisterRoutes(api)
		chat.New(chatSvc).RegisterRoutes(api)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
