package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"punchlog/pkg/output"
	"punchlog/pkg/timesheet"
)

func testReport() *output.Report {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	res := &timesheet.Result{
		DailyLog: []timesheet.Interval{
			{
				Name: "Alice", Date: monday, Day: "Monday",
				Week: "Jan 06 - Jan 12 2025", ISOYear: 2025, ISOWeek: 2,
				ClockIn: monday.Add(9 * time.Hour), ClockOut: monday.Add(17 * time.Hour),
				Hours: 8,
			},
		},
		WeeklySummary: []timesheet.WeeklyTotal{
			{Name: "Alice", Week: "Jan 06 - Jan 12 2025", ISOYear: 2025, ISOWeek: 2, TotalHours: 8},
		},
	}
	return output.NewReport(res, timesheet.WeekPolicyComplete)
}

func TestSend(t *testing.T) {
	var gotBody []byte
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{
		URL:   server.URL,
		Token: "secret",
	})

	if !resp.Success() {
		t.Fatalf("Send failed: status=%d err=%v", resp.StatusCode, resp.Error)
	}
	if resp.Body != `{"ok":true}` {
		t.Errorf("body = %q", resp.Body)
	}

	if ct := gotHeaders.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if ua := gotHeaders.Get("User-Agent"); ua != "punchlog-webhook" {
		t.Errorf("User-Agent = %q", ua)
	}
	if auth := gotHeaders.Get("Authorization"); auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}

	var payload output.Report
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload is not a report: %v", err)
	}
	if payload.Summary.Intervals != 1 {
		t.Errorf("payload intervals = %d, want 1", payload.Summary.Intervals)
	}
}

func TestSend_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization header set without a token")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Fatalf("Send failed: %v", resp.Error)
	}
}

func TestSend_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Fatal("Success() = true for a 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Error == nil || !strings.Contains(resp.Error.Error(), "status 500") {
		t.Errorf("error = %v", resp.Error)
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{URL: url})
	if resp.Success() {
		t.Fatal("Success() = true against a closed server")
	}
	if resp.Error == nil {
		t.Fatal("expected a transport error")
	}
}

func TestSend_Timeout(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(), SendOptions{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})
	<-started
	if resp.Success() {
		t.Fatal("Success() = true for a timed-out request")
	}
	if resp.Error == nil {
		t.Fatal("expected a timeout error")
	}
}
