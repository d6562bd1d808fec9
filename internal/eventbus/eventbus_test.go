package eventbus

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesearch/internal/domain"
	"sitesearch/internal/logging"
)

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) snapshot() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(EventSearchSubmitted, rec.handle)

	for _, q := range []string{"a", "b", "c"} {
		b.Publish(domain.SearchSubmittedEvent{Query: q})
	}

	require.Eventually(t, func() bool { return rec.len() == 3 }, time.Second, 5*time.Millisecond)

	var got []string
	for _, e := range rec.snapshot() {
		got = append(got, e.(domain.SearchSubmittedEvent).Query)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	copied := &recorder{}
	completed := &recorder{}
	b.Subscribe(EventLinkCopied, copied.handle)
	b.Subscribe(EventSearchCompleted, completed.handle)

	b.Publish(domain.LinkCopiedEvent{ResultID: "3"})

	require.Eventually(t, func() bool { return copied.len() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, completed.len())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	first := &recorder{}
	second := &recorder{}
	unsub := b.Subscribe(EventLinkCopied, first.handle)
	b.Subscribe(EventLinkCopied, second.handle)
	unsub()

	b.Publish(domain.LinkCopiedEvent{ResultID: "1"})

	require.Eventually(t, func() bool { return second.len() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, first.len())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(EventLinkCopied, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventLinkCopied, rec.handle)

	b.Publish(domain.LinkCopiedEvent{ResultID: "1"})
	b.Publish(domain.LinkCopiedEvent{ResultID: "2"})

	require.Eventually(t, func() bool { return rec.len() == 2 }, time.Second, 5*time.Millisecond)
}

func TestHandlerPanicIsLoggedAfterLateSetup(t *testing.T) {
	prev := logging.Logger
	t.Cleanup(func() { logging.Logger = prev })

	// the bus is created before logging is configured, as the CLI does
	b := New()
	defer b.Close()

	path := filepath.Join(t.TempDir(), "sitesearch.log")
	_, err := logging.Setup(path, false)
	require.NoError(t, err)

	b.Subscribe(EventLinkCopied, func(DomainEvent) { panic("boom") })
	b.Publish(domain.LinkCopiedEvent{ResultID: "1"})

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.Contains(string(data), "event handler panic")
	}, time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sitesearch.eventbus")
	assert.Contains(t, string(data), `"panic":"boom"`)
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(EventLinkCopied, rec.handle)
	b.Close()
	b.Close()

	assert.NotPanics(t, func() {
		b.Publish(domain.LinkCopiedEvent{ResultID: "1"})
	})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, rec.len())
}
