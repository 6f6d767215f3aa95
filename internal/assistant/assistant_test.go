package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
)

func TestAskUnconfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	got := c.Ask(context.Background(), "ctx", nil)
	if !strings.Contains(got, "not configured") {
		t.Errorf("Ask without key = %q, want a not-configured message", got)
	}
}

func TestAskReturnsModelReply(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("auth header = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{{Message: Message{Role: "assistant", Content: "  Split the work into two steps.  "}}},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	got := c.Ask(context.Background(), "Task TASK-1: fix the loader", []Message{
		{Role: "user", Content: "What next?"},
	})
	if got != "Split the work into two steps." {
		t.Errorf("Ask = %q", got)
	}

	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("request messages = %+v, want system turn first", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0].Content, "fix the loader") {
		t.Errorf("system turn missing task context: %q", gotReq.Messages[0].Content)
	}
	if gotReq.Messages[1].Content != "What next?" {
		t.Errorf("user turn = %+v", gotReq.Messages[1])
	}
}

func TestAskRecoversFromAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	got := c.Ask(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	if !strings.Contains(got, "unavailable") {
		t.Errorf("Ask on 429 = %q, want unavailable message", got)
	}
}

func TestAskRecoversFromNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	got := c.Ask(context.Background(), "", nil)
	if !strings.Contains(got, "unavailable") {
		t.Errorf("Ask on dead endpoint = %q, want unavailable message", got)
	}
}

func TestAskTimesOutInsteadOfBlocking(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)

	start := time.Now()
	got := c.Ask(context.Background(), "", nil)
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Ask blocked for %v", elapsed)
	}
	if !strings.Contains(got, "unavailable") {
		t.Errorf("Ask on timeout = %q, want unavailable message", got)
	}
}

func TestTaskContext(t *testing.T) {
	task := &models.Task{
		ID:          "TASK-7",
		Title:       "Tune warehouse",
		Description: "queries spilling",
		Status:      models.StatusInProgress,
		Tags:        []string{"snowflake"},
	}
	for i := 0; i < 8; i++ {
		task.Activity = append(task.Activity, models.Activity{
			At: "2025-08-20T09:00:00Z", Who: "satya", Text: strings.Repeat("x", i+1),
		})
	}

	got := TaskContext(task)
	if !strings.Contains(got, "TASK-7") || !strings.Contains(got, "Tune warehouse") {
		t.Errorf("context missing task header: %q", got)
	}
	if !strings.Contains(got, "snowflake") {
		t.Errorf("context missing tags: %q", got)
	}
	if strings.Count(got, "satya:") != maxContextNotes {
		t.Errorf("context notes = %d, want capped at %d", strings.Count(got, "satya:"), maxContextNotes)
	}
	// Oldest entries are dropped, newest kept.
	if !strings.Contains(got, strings.Repeat("x", 8)) {
		t.Errorf("context missing newest note: %q", got)
	}
}
