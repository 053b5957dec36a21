package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

const providerBody = `{
	"data": [{
		"temp": 61.4,
		"wind_speed": 6.2,
		"wind_deg": 225,
		"weather": [{"description": "clear"}]
	}]
}`

func newTestClient(t *testing.T, store Store, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, store, testLogger())

	return client, server
}

func TestResolve(t *testing.T) {
	var lastQuery atomic.Value
	client, _ := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		lastQuery.Store(r.URL.Query())
		_, _ = w.Write([]byte(providerBody))
	})

	summary, ok := client.Resolve(context.Background(), Query{
		Date: "2025-06-14", Time: "05:47", Lat: 47.58, Lng: -122.41,
	})
	if !ok {
		t.Fatal("expected a resolved summary")
	}
	if summary != "61°F · Clear · Wind SW 6mph" {
		t.Errorf("unexpected summary: %q", summary)
	}

	q := lastQuery.Load().(url.Values)
	if q.Get("appid") != "test-key" {
		t.Errorf("expected api key param, got %q", q.Get("appid"))
	}
	if q.Get("units") != "imperial" {
		t.Errorf("expected imperial units, got %q", q.Get("units"))
	}

	// 2025-06-14T05:47:00Z
	wantDt := fmt.Sprintf("%d", time.Date(2025, 6, 14, 5, 47, 0, 0, time.UTC).Unix())
	if q.Get("dt") != wantDt {
		t.Errorf("expected dt=%s, got %q", wantDt, q.Get("dt"))
	}
}

func TestResolve_CacheIdempotence(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(providerBody))
	})

	ctx := context.Background()
	first, ok := client.Resolve(ctx, Query{Date: "2025-06-14", Lat: 47.58, Lng: -122.41, Time: "05:47"})
	if !ok {
		t.Fatal("expected first resolution to succeed")
	}

	// Same day, nearby coordinates: rounds to the same key, no second call.
	second, ok := client.Resolve(ctx, Query{Date: "2025-06-14", Lat: 47.61, Lng: -122.38, Time: "20:11"})
	if !ok {
		t.Fatal("expected cached resolution to succeed")
	}

	if first != second {
		t.Errorf("cached summary changed: %q vs %q", first, second)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly one provider call, got %d", calls.Load())
	}
}

func TestResolve_FailuresAreMisses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
		},
		{
			name: "empty data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": []}`))
			},
		},
		{
			name: "missing condition",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": [{"temp": 61, "wind_speed": 6, "wind_deg": 225, "weather": []}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, nil, tt.handler)
			summary, ok := client.Resolve(context.Background(), Query{Date: "2025-06-14", Lat: 1, Lng: 1})
			if ok {
				t.Errorf("expected a miss, got %q", summary)
			}
		})
	}
}

type fakeStore struct {
	entries map[string]string
	puts    int
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s, ok := f.entries[key]
	return s, ok, nil
}

func (f *fakeStore) Put(_ context.Context, key, summary string) error {
	f.entries[key] = summary
	f.puts++
	return nil
}

func TestResolve_PersistentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit skips provider", func(t *testing.T) {
		store := &fakeStore{entries: map[string]string{
			CacheKey("2025-06-14", 47.6, -122.4): "58°F · Overcast · Wind W 9mph",
		}}
		var calls atomic.Int32
		client, _ := newTestClient(t, store, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(providerBody))
		})

		summary, ok := client.Resolve(ctx, Query{Date: "2025-06-14", Lat: 47.58, Lng: -122.41})
		if !ok || summary != "58°F · Overcast · Wind W 9mph" {
			t.Fatalf("expected stored summary, got %q (ok=%v)", summary, ok)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no provider calls, got %d", calls.Load())
		}
	})

	t.Run("provider result written through", func(t *testing.T) {
		store := &fakeStore{entries: map[string]string{}}
		client, _ := newTestClient(t, store, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(providerBody))
		})

		_, ok := client.Resolve(ctx, Query{Date: "2025-06-14", Lat: 47.58, Lng: -122.41})
		if !ok {
			t.Fatal("expected resolution to succeed")
		}
		if store.puts != 1 {
			t.Errorf("expected one store write, got %d", store.puts)
		}
	})
}
