// Package ratelimit: IP bazlı login rate limiting.
//
// Her IP için sabit pencere (fixed window) sayacı tutulur. Pencere içinde
// maxAttempts aşılırsa Allow false döner; başarılı login Reset ile sayacı siler.
// Bağımlılığı olmayan leaf paket: handlers ve middleware ikisi de import edebilir.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// LoginRateLimiter, IP → pencere sayacı.
type LoginRateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxAttempts int
	period      time.Duration
	now         func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewLoginRateLimiter, limiter oluşturur ve süresi dolan pencereleri
// dakikada bir temizleyen goroutine'i başlatır.
func NewLoginRateLimiter(maxAttempts int, period time.Duration) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		windows:     make(map[string]*window),
		maxAttempts: maxAttempts,
		period:      period,
		now:         time.Now,
		stop:        make(chan struct{}),
	}

	go rl.cleanupLoop(time.Minute)

	return rl
}

// Allow, ip için bir deneme sayar ve limitin aşılıp aşılmadığını döner.
func (rl *LoginRateLimiter) Allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) >= rl.period {
		rl.windows[ip] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.maxAttempts
}

// Reset, ip'nin sayacını siler (başarılı login sonrası).
func (rl *LoginRateLimiter) Reset(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.windows, ip)
}

// RetryAfter, pencerenin kapanmasına kalan süreyi tam saniyeye yukarı yuvarlar.
// Retry-After header değeri olarak kullanılır.
func (rl *LoginRateLimiter) RetryAfter(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok {
		return 0
	}

	remaining := rl.period - rl.now().Sub(w.start)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}

// Close, cleanup goroutine'ini durdurur.
func (rl *LoginRateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *LoginRateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

func (rl *LoginRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, w := range rl.windows {
		if now.Sub(w.start) >= rl.period {
			delete(rl.windows, ip)
		}
	}
}

// ExtractIP, client IP'sini X-Forwarded-For → X-Real-IP → RemoteAddr sırasıyla çıkarır.
// Uygulama reverse proxy arkasında çalıştığında RemoteAddr proxy'nin adresidir.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, saniyeyi okunabilir hale getirir: 120 → "2 minute(s)".
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
