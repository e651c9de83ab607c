package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gradientm/gradientm-chat/internal/handler"
	chatservice "github.com/gradientm/gradientm-chat/internal/service/chat"
	"github.com/gradientm/gradientm-chat/internal/service/transcript"
)

type stubClient struct{}

func (stubClient) Complete(context.Context, []chatservice.Message) (string, error) {
	return "ok", nil
}

func TestEveryResponseCarriesFrameHeader(t *testing.T) {
	store := transcript.NewStore()
	svc := chatservice.NewService(store, stubClient{})
	r := handler.NewRouter(store, svc, t.TempDir())

	for _, path := range []string{"/", "/chat", "/reset"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if got := resp.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
			t.Fatalf("%s: X-Frame-Options = %q, want SAMEORIGIN", path, got)
		}
	}
}
