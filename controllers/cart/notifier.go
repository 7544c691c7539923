package cartControllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event describes a single cart mutation, keyed by the owning tier
// ("user:<uid>" or "guest:<guest_id>").
type Event struct {
	Owner     string    `json:"owner"`
	Action    string    `json:"action"` // added, updated, removed, cleared
	ProductID uint      `json:"product_id,omitempty"`
	At        time.Time `json:"at"`
}

// Notifier is the subscription registry for cart-change events. Mutating
// handlers publish into it after every successful write; presentation
// observers (cart badge, totals) subscribe per owner. Delivery is
// fire-and-forget: a slow subscriber drops events rather than blocking
// the mutation.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan Event]string
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[chan Event]string)}
}

func (n *Notifier) Subscribe(owner string) chan Event {
	ch := make(chan Event, 8)
	n.mu.Lock()
	n.subs[ch] = owner
	n.mu.Unlock()
	return ch
}

func (n *Notifier) Unsubscribe(ch chan Event) {
	n.mu.Lock()
	if _, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(ch)
	}
	n.mu.Unlock()
}

func (n *Notifier) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch, owner := range n.subs {
		if owner != ev.Owner {
			continue
		}
		select {
		case ch <- ev:
		default:
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CartEventsHandler streams cart-change events for the caller's tier over a
// websocket. Authenticated callers get their user feed, guests pass guest_id.
func CartEventsHandler(n *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner string
		if uid, ok := c.Get("user_id"); ok {
			owner = "user:" + uid.(string)
		} else if guestID := c.Query("guest_id"); guestID != "" {
			owner = "guest:" + guestID
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ch := n.Subscribe(owner)
		defer n.Unsubscribe(ch)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
