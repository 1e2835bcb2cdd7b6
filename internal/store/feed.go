package store

import "sync"

// Topic names a group of tables whose changes are published together.
type Topic string

const (
	TopicEvents   Topic = "events"
	TopicProducts Topic = "products"
	TopicReviews  Topic = "reviews"
	TopicCart     Topic = "cart"
	TopicOrders   Topic = "orders"
)

// AllTopics lists every topic.
var AllTopics = []Topic{TopicEvents, TopicProducts, TopicReviews, TopicCart, TopicOrders}

// Feed fans out change notifications to subscribers.
// Each subscriber channel holds at most one pending notification, so bursts
// of writes coalesce into a single wake-up.
type Feed struct {
	mu   sync.Mutex
	subs map[Topic]map[chan struct{}]struct{}
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[Topic]map[chan struct{}]struct{})}
}

// Subscribe returns a channel that receives a value after changes to any of
// topics, and a function that cancels the subscription.
func (f *Feed) Subscribe(topics ...Topic) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	f.mu.Lock()
	for _, topic := range topics {
		if f.subs[topic] == nil {
			f.subs[topic] = make(map[chan struct{}]struct{})
		}
		f.subs[topic][ch] = struct{}{}
	}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, topic := range topics {
				delete(f.subs[topic], ch)
			}
		})
	}
	return ch, cancel
}

// Publish notifies subscribers of topics without blocking.
func (f *Feed) Publish(topics ...Topic) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, topic := range topics {
		for ch := range f.subs[topic] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// Subscribers returns the number of subscriptions on topic.
func (f *Feed) Subscribers(topic Topic) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[topic])
}
