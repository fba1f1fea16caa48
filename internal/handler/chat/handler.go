package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/expert-chat/backend/internal/service/ai"
	chatService "github.com/zhouzirui/expert-chat/backend/internal/service/chat"
	"github.com/zhouzirui/expert-chat/backend/pkg/utils"
)

// Handler 提问接口的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ask", h.handleAsk)
}

// handleAsk 把问题交给所选角色并返回回答
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Persona  string `json:"persona"`
		Question string `json:"question"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.chatSvc.Ask(r.Context(), payload.Persona, payload.Question)
	if err != nil {
		switch {
		case errors.Is(err, chatService.ErrEmptyQuestion):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ai.ErrProvider):
			utils.RespondError(w, http.StatusBadGateway, "completion failed")
		default:
			log.Printf("[chat] unexpected error: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, answer)
}
