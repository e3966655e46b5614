package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testGateway(endpoint string) *AligoGateway {
	return &AligoGateway{
		client:   &http.Client{Timeout: time.Second},
		endpoint: endpoint,
		apiKey:   "key",
		userID:   "shop",
		sender:   "021234567",
	}
}

func TestAligoGateway_Send(t *testing.T) {
	t.Run("log-only mode without credentials", func(t *testing.T) {
		g := &AligoGateway{client: http.DefaultClient}
		if err := g.Send(context.Background(), "01012345678", "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("posts the form and accepts result_code 1", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if r.PostForm.Get("receiver") != "01012345678" || r.PostForm.Get("msg_type") != "LMS" {
				t.Fatalf("unexpected form: %v", r.PostForm)
			}
			if r.PostForm.Get("key") != "key" || r.PostForm.Get("user_id") != "shop" {
				t.Fatalf("missing credentials: %v", r.PostForm)
			}
			w.Write([]byte(`{"result_code":1,"message":"success"}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		if err := g.Send(context.Background(), "01012345678", "완료되었습니다"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider error code surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result_code":-101,"message":"invalid key"}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		if err := g.Send(context.Background(), "01012345678", "hello"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("string result_code is tolerated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result_code":"1","message":"success"}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		if err := g.Send(context.Background(), "01012345678", "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
