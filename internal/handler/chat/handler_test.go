package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/zhouzirui/expert-chat/backend/internal/model/chat"
	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
	"github.com/zhouzirui/expert-chat/backend/internal/service/ai"
	chatservice "github.com/zhouzirui/expert-chat/backend/internal/service/chat"
)

type fakeCompleter struct {
	calls int
	reply string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func setupRouter(completer *fakeCompleter) *chi.Mux {
	chatSvc := chatservice.NewService(ai.NewPromptManager(), persona.NewMemoryStore(persona.Seed()), completer)
	handler := New(chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postAsk(r http.Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAskReturnsAnswer(t *testing.T) {
	completer := &fakeCompleter{reply: "だぴょん"}
	r := setupRouter(completer)

	payload, _ := json.Marshal(map[string]string{"persona": "friendly-teacher", "question": "なに？"})
	resp := postAsk(r, payload)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var answer chatModel.Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		t.Fatalf("decode answer: %v", err)
	}
	if answer.Content != "だぴょん" || answer.PersonaID != "friendly-teacher" {
		t.Fatalf("unexpected answer: %+v", answer)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	completer := &fakeCompleter{reply: "never"}
	r := setupRouter(completer)

	resp := postAsk(r, []byte(`{"persona":"veteran-engineer","question":""}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if completer.calls != 0 {
		t.Fatalf("provider must not be called, got %d", completer.calls)
	}
}

func TestAskInvalidBody(t *testing.T) {
	r := setupRouter(&fakeCompleter{})

	resp := postAsk(r, []byte(`{"question":`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAskProviderFailure(t *testing.T) {
	r := setupRouter(&fakeCompleter{err: &ai.ProviderError{Err: ai.ErrCredentialMissing}})

	resp := postAsk(r, []byte(`{"persona":"veteran-engineer","question":"What is a pointer?"}`))

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}
