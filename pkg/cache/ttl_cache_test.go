package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock, testlerde zamanı elle ilerletmek için.
type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*TTLCache[string, int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string, int](ttl, 0)
	c.now = clock.Now
	return c, clock
}

func TestGetExpires(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)
	defer c.Close()

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(30 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.evictExpired()
	assert.Equal(t, 0, c.Len())
}

func TestGetOrLoad(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	defer c.Close()

	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls)

	clock.Advance(2 * time.Minute)
	_, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	defer c.Close()

	boom := errors.New("boom")
	_, err := c.GetOrLoad("k", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestZeroTTLDisablesCache(t *testing.T) {
	c, _ := newTestCache(0)
	defer c.Close()

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestDeleteAndClose(t *testing.T) {
	c := New[string, int](time.Minute, 10*time.Millisecond)
	c.Set("a", 1)
	c.Delete("a")
	assert.Equal(t, 0, c.Len())

	c.Close()
	assert.NotPanics(t, c.Close)
}
