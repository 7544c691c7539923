package cartControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversToMatchingOwnerOnly(t *testing.T) {
	n := NewNotifier()
	mine := n.Subscribe("user:abc")
	other := n.Subscribe("user:xyz")
	defer n.Unsubscribe(mine)
	defer n.Unsubscribe(other)

	n.Publish(Event{Owner: "user:abc", Action: "added", ProductID: 7})

	select {
	case ev := <-mine:
		assert.Equal(t, "added", ev.Action)
		assert.Equal(t, uint(7), ev.ProductID)
		assert.False(t, ev.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event for subscribed owner")
	}

	select {
	case ev := <-other:
		t.Fatalf("unexpected event for other owner: %+v", ev)
	default:
	}
}

func TestNotifier_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	n := NewNotifier()
	ch := n.Subscribe("guest:g1")
	defer n.Unsubscribe(ch)

	// Overfill the buffer; Publish must never block the mutation path.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			n.Publish(Event{Owner: "guest:g1", Action: "updated"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestNotifier_UnsubscribeTwiceIsSafe(t *testing.T) {
	n := NewNotifier()
	ch := n.Subscribe("user:abc")
	n.Unsubscribe(ch)
	require.NotPanics(t, func() { n.Unsubscribe(ch) })
}
