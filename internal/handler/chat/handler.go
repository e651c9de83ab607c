package chat

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/gradientm/gradientm-chat/internal/model/chat"
	chatservice "github.com/gradientm/gradientm-chat/internal/service/chat"
	"github.com/gradientm/gradientm-chat/internal/service/transcript"
)

// Handler 聊天页面的HTTP处理器
type Handler struct {
	store     *transcript.Store
	chatSvc   *chatservice.Service
	staticDir string
	tmpl      *template.Template
}

// New 创建聊天处理器
func New(store *transcript.Store, chatSvc *chatservice.Service, staticDir string) *Handler {
	return &Handler{
		store:     store,
		chatSvc:   chatSvc,
		staticDir: staticDir,
		tmpl:      template.Must(template.New("chat").Parse(chatPage)),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/chat", h.handleChatPage)
	r.Post("/chat", h.handleChatSubmit)
	r.Get("/reset", h.handleReset)
}

// handleHome serves the public landing document the widget is embedded in.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// handleChatPage renders the current transcript snapshot.
func (h *Handler) handleChatPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Conversation []chatmodel.Turn
	}{
		Conversation: h.store.Snapshot(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("[chat] render failed: %v", err)
	}
}

// handleChatSubmit runs one conversation turn, then redirects back to
// GET /chat so a full-page reload shows the updated transcript. Empty
// input redirects without touching the transcript.
func (h *Handler) handleChatSubmit(w http.ResponseWriter, r *http.Request) {
	question := r.FormValue("question")

	if _, err := h.chatSvc.Ask(r.Context(), question); err != nil {
		if !errors.Is(err, chatservice.ErrEmptyQuestion) {
			log.Printf("[chat] turn failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

// handleReset clears the conversation and redirects back to /chat.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.store.Reset()
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}
