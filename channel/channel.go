/*
File    : vexel/channel/channel.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package channel implements Vexel's inter-thread message-passing
// channels (spec §4.6): a process-wide registry of FIFO queues, each
// guarded by its own mutex and condition variable, with a separate mutex
// serializing access to the id→channel map itself. Channel ids are never
// reused (spec §9).
package channel

import (
	"fmt"
	"sync"

	"github.com/stuncs69/vexel/objects"
)

// Channel is a single FIFO message queue.
type Channel struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []objects.Value
	closed bool
}

func newChannel() *Channel {
	c := &Channel{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Registry is the process-wide id→Channel table (spec §9: "guarded by a
// single mutex for id lookup; per-channel mutex+condition for queue
// operations").
type Registry struct {
	mu       sync.Mutex
	channels map[int64]*Channel
	nextID   int64
}

// NewRegistry builds an empty channel registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[int64]*Channel)}
}

// Create allocates a new channel and returns its monotonically assigned id.
func (r *Registry) Create() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.channels[id] = newChannel()
	return id
}

func (r *Registry) lookup(id int64) (*Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[id]
	return ch, ok
}

// Send enqueues v on channel id and wakes any waiting receiver.
func (r *Registry) Send(id int64, v objects.Value) error {
	ch, ok := r.lookup(id)
	if !ok {
		return fmt.Errorf("unknown channel %d", id)
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return fmt.Errorf("send on closed channel %d", id)
	}
	ch.queue = append(ch.queue, v)
	ch.cond.Signal()
	return nil
}

// Recv blocks until channel id has a value or is closed, returning the
// head value, or Null once a closed channel has drained (spec §4.6).
func (r *Registry) Recv(id int64) (objects.Value, error) {
	ch, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown channel %d", id)
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for len(ch.queue) == 0 && !ch.closed {
		ch.cond.Wait()
	}
	if len(ch.queue) == 0 {
		return objects.NullValue, nil
	}
	v := ch.queue[0]
	ch.queue = ch.queue[1:]
	return v, nil
}

// Close marks channel id closed and wakes every waiter.
func (r *Registry) Close(id int64) error {
	ch, ok := r.lookup(id)
	if !ok {
		return fmt.Errorf("unknown channel %d", id)
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.closed = true
	ch.cond.Broadcast()
	return nil
}

// Default is the single process-wide registry the thread_* builtins use.
var Default = NewRegistry()
