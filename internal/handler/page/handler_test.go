package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
	"github.com/zhouzirui/expert-chat/backend/internal/render"
	"github.com/zhouzirui/expert-chat/backend/internal/service/ai"
	chatservice "github.com/zhouzirui/expert-chat/backend/internal/service/chat"
)

type fakeCompleter struct {
	calls        int
	systemPrompt string
	reply        string
	err          error
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt, _ string) (string, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	return f.reply, f.err
}

func setupRouter(completer *fakeCompleter) *chi.Mux {
	chatSvc := chatservice.NewService(ai.NewPromptManager(), persona.NewMemoryStore(persona.Seed()), completer)

	r := chi.NewRouter()
	New(chatSvc, render.NewMarkdown()).RegisterRoutes(r)
	return r
}

func submit(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIndexListsPersonas(t *testing.T) {
	r := setupRouter(&fakeCompleter{})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, p := range persona.Seed() {
		if !strings.Contains(body, p.Name) {
			t.Errorf("persona %s missing from page", p.ID)
		}
	}
	if !strings.Contains(body, `value="veteran-engineer" checked`) {
		t.Error("first persona should be selected by default")
	}
	if strings.Contains(body, "回答が届きました") {
		t.Error("no answer expected before submission")
	}
}

func TestSubmitShowsAnswer(t *testing.T) {
	completer := &fakeCompleter{reply: "ポインタは**アドレス**である。"}
	r := setupRouter(completer)

	resp := submit(r, url.Values{"persona": {"veteran-engineer"}, "question": {"What is a pointer?"}})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "回答が届きました！") {
		t.Error("missing success banner")
	}
	if !strings.Contains(body, "<strong>アドレス</strong>") {
		t.Error("answer should be rendered from markdown")
	}
	if !strings.Contains(body, `value="What is a pointer?"`) {
		t.Error("question should stay in the input")
	}
}

func TestSubmitEmptyQuestionIsNoop(t *testing.T) {
	completer := &fakeCompleter{reply: "never"}
	r := setupRouter(completer)

	resp := submit(r, url.Values{"persona": {"friendly-teacher"}, "question": {""}})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if completer.calls != 0 {
		t.Fatalf("provider must not be called, got %d", completer.calls)
	}
	if !strings.Contains(resp.Body.String(), `value="friendly-teacher" checked`) {
		t.Error("selected persona should be kept")
	}
}

func TestSubmitProviderFailure(t *testing.T) {
	r := setupRouter(&fakeCompleter{err: &ai.ProviderError{Err: ai.ErrCredentialMissing}})

	resp := submit(r, url.Values{"persona": {"veteran-engineer"}, "question": {"hello"}})

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "回答の取得に失敗しました") {
		t.Error("missing failure banner")
	}
	if strings.Contains(body, "回答が届きました") {
		t.Error("success banner must not be shown on failure")
	}
}

func TestSubmitWithoutPersonaUsesDefaultPrompt(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	r := setupRouter(completer)

	resp := submit(r, url.Values{"question": {"hello"}})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if want := ai.NewPromptManager().SystemPrompt(""); completer.systemPrompt != want {
		t.Fatalf("expected default prompt, got %q", completer.systemPrompt)
	}
	if !strings.Contains(resp.Body.String(), `value="veteran-engineer" checked`) {
		t.Error("first radio should still be checked for display")
	}
}

func TestSubmitSelectedPersonaPrompt(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	r := setupRouter(completer)

	submit(r, url.Values{"persona": {"friendly-teacher"}, "question": {"hello"}})

	if want := ai.NewPromptManager().SystemPrompt(string(persona.FriendlyTeacher)); completer.systemPrompt != want {
		t.Fatalf("expected friendly-teacher prompt, got %q", completer.systemPrompt)
	}
}
