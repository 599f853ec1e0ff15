package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector accumulates events thread-safely
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) add(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) byType(eventType string) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := []Event{}
	for _, ev := range c.events {
		if ev.Type == eventType {
			res = append(res, ev)
		}
	}
	return res
}

func TestSimulator_ConnectDisconnect(t *testing.T) {
	s := New(time.Hour, time.Hour)
	c := &collector{}
	s.Subscribe(c.add)

	require.False(t, s.Connected())
	s.Connect()
	require.True(t, s.Connected())
	s.Connect() // idempotent
	s.Disconnect()
	require.False(t, s.Connected())
	s.Disconnect() // idempotent

	status := c.byType(EventConnectionStatus)
	require.Len(t, status, 2)
	assert.True(t, status[0].Connected)
	assert.False(t, status[1].Connected)
}

func TestSimulator_EmitsOnIntervals(t *testing.T) {
	s := New(20*time.Millisecond, 45*time.Millisecond)
	c := &collector{}
	s.Subscribe(c.add)

	s.Connect()
	defer s.Disconnect()

	require.Eventually(t, func() bool {
		return len(c.byType(EventNewContent)) >= 2 && len(c.byType(EventContentUpdate)) >= 1
	}, 2*time.Second, 5*time.Millisecond)

	newContent := c.byType(EventNewContent)
	require.NotNil(t, newContent[0].Item)
	assert.NotEmpty(t, newContent[0].Item.Title)
	assert.NotEqual(t, newContent[0].Item.Title, newContent[1].Item.Title, "headlines rotate")
}

func TestSimulator_StopsAfterDisconnect(t *testing.T) {
	s := New(10*time.Millisecond, 10*time.Millisecond)
	c := &collector{}
	s.Subscribe(c.add)

	s.Connect()
	require.Eventually(t, func() bool {
		return len(c.byType(EventNewContent)) >= 1
	}, time.Second, time.Millisecond)
	s.Disconnect()

	count := len(c.byType(EventNewContent))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, len(c.byType(EventNewContent)), "no events after disconnect")
}

func TestSimulator_TriggerRefresh(t *testing.T) {
	s := New(time.Hour, time.Hour)
	c := &collector{}
	s.Subscribe(c.add)

	s.TriggerRefresh()

	events := c.byType(EventNewContent)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Item)
	assert.Equal(t, "news", string(events[0].Item.Type))
}

func TestSimulator_Unsubscribe(t *testing.T) {
	s := New(time.Hour, time.Hour)
	first := &collector{}
	second := &collector{}

	token := s.Subscribe(first.add)
	s.Subscribe(second.add)

	s.TriggerRefresh()
	s.Unsubscribe(token)
	s.TriggerRefresh()

	assert.Len(t, first.byType(EventNewContent), 1)
	assert.Len(t, second.byType(EventNewContent), 2)
}

func TestSimulator_ListenerPanicContained(t *testing.T) {
	s := New(time.Hour, time.Hour)
	c := &collector{}

	s.Subscribe(func(Event) { panic("bad listener") })
	s.Subscribe(c.add)

	s.TriggerRefresh()
	assert.Len(t, c.byType(EventNewContent), 1, "healthy listener still notified")
}
