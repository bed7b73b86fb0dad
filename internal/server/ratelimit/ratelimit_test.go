package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func testConfig(limit, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  limit,
		DefaultWindow: time.Minute,
		DefaultBurst:  burst,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
	}
}

// frozenLimiter returns a limiter whose clock only moves when advance is called.
func frozenLimiter(cfg *Config) (*Limiter, func(time.Duration)) {
	l := NewLimiter(cfg)
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, func(d time.Duration) { current = current.Add(d) }
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := frozenLimiter(testConfig(60, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "/records", "GET")
		if !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 60 {
			t.Errorf("Expected limit 60, got %d", info.Limit)
		}
		if info.Remaining != 2-i {
			t.Errorf("Expected %d remaining, got %d", 2-i, info.Remaining)
		}
	}

	allowed, info := l.Allow("10.0.0.1", "/records", "GET")
	if allowed {
		t.Fatal("Expected 4th request to be denied")
	}
	if info.RetryAfter <= 0 || info.RetryAfter > time.Second {
		t.Errorf("Expected retry after within one second, got %v", info.RetryAfter)
	}
}

func TestLimiter_Refill(t *testing.T) {
	l, advance := frozenLimiter(testConfig(60, 1))
	defer l.Stop()

	if allowed, _ := l.Allow("10.0.0.1", "/rank", "GET"); !allowed {
		t.Fatal("Expected first request to be allowed")
	}
	if allowed, _ := l.Allow("10.0.0.1", "/rank", "GET"); allowed {
		t.Fatal("Expected second request to be denied")
	}

	advance(time.Second)

	if allowed, _ := l.Allow("10.0.0.1", "/rank", "GET"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l, _ := frozenLimiter(testConfig(60, 1))
	defer l.Stop()

	l.Allow("10.0.0.1", "/rank", "GET")
	if allowed, _ := l.Allow("10.0.0.2", "/rank", "GET"); !allowed {
		t.Error("Expected a different client to have its own bucket")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Whitelist["127.0.0.1"] = true
	l, _ := frozenLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		if allowed, _ := l.Allow("127.0.0.1", "/records", "GET"); !allowed {
			t.Fatalf("Expected whitelisted request %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig(100, 100)
	cfg.Blacklist["192.168.1.1"] = true
	l, _ := frozenLimiter(cfg)
	defer l.Stop()

	if allowed, _ := l.Allow("192.168.1.1", "/records", "GET"); allowed {
		t.Error("Expected blacklisted client to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST"); !allowed {
			t.Fatal("Expected all requests to be allowed when disabled")
		}
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	cfg := testConfig(1000, 1000)
	cfg.EndpointConfigs = DefaultEndpointConfigs()
	l, _ := frozenLimiter(cfg)
	defer l.Stop()

	// /analyze has a burst of 5
	for i := 0; i < 5; i++ {
		if allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST"); !allowed {
			t.Fatalf("Expected analyze request %d to be allowed", i+1)
		}
	}
	allowed, info := l.Allow("10.0.0.1", "/analyze", "POST")
	if allowed {
		t.Error("Expected 6th analyze request to be denied")
	}
	if info.Limit != 30 {
		t.Errorf("Expected endpoint limit 30, got %d", info.Limit)
	}

	// Reads are unaffected
	if allowed, _ := l.Allow("10.0.0.1", "/records", "GET"); !allowed {
		t.Error("Expected GET /records to use the default limit")
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l, _ := frozenLimiter(testConfig(1, 1))
	defer l.Stop()

	for i := 0; i < 10; i++ {
		if allowed, _ := l.Allow("10.0.0.1", "/health", "GET"); !allowed {
			t.Fatal("Expected health checks to be unlimited")
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l := NewLimiter(testConfig(6000, 100))
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(client int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				if allowed, _ := l.Allow(fmt.Sprintf("10.0.0.%d", client), "/rank", "GET"); allowed {
					mu.Lock()
					allowedCount++
					mu.Unlock()
				}
			}
		}(i)
	}
	wg.Wait()

	if allowedCount != 50 {
		t.Errorf("Expected 50 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	l, advance := frozenLimiter(testConfig(60, 10))
	defer l.Stop()

	l.Allow("10.0.0.1", "/rank", "GET")
	advance(2 * time.Hour)
	l.Allow("10.0.0.2", "/rank", "GET")

	l.cleanupBuckets(l.now().Add(-1 * time.Hour))

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.buckets) != 1 {
		t.Errorf("Expected 1 bucket after cleanup, got %d", len(l.buckets))
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/compare", Method: "POST", Limit: 5},
		{Path: "/records/", Method: "GET", Limit: 7},
	}

	if c := MatchEndpoint("/compare", "POST", configs); c == nil || c.Limit != 5 {
		t.Errorf("Expected exact match, got %+v", c)
	}
	if c := MatchEndpoint("/records/abc", "GET", configs); c == nil || c.Limit != 7 {
		t.Errorf("Expected prefix match, got %+v", c)
	}
	if c := MatchEndpoint("/compare", "GET", configs); c != nil {
		t.Errorf("Expected no match for other method, got %+v", c)
	}
	if c := MatchEndpoint("/anything", "OPTIONS", configs); c == nil || c.Limit != 0 {
		t.Errorf("Expected OPTIONS to be unlimited, got %+v", c)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	l := NewLimiter(nil)
	defer l.Stop()

	if allowed, _ := l.Allow("10.0.0.1", "/rank", "GET"); !allowed {
		t.Error("Expected default limiter to allow requests")
	}
}
