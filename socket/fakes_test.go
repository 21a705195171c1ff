package socket_test

import (
	"sync"

	"vibematch_server/socket"
)

type emission struct {
	room     string
	exceptID string
	event    string
	args     []interface{}
}

// fakeBroadcaster implements socket.Broadcaster over an in-memory room map
// and records every emission. Room-wide emissions are also pushed onto a
// channel so countdown tests can wait for ticks deterministically.
type fakeBroadcaster struct {
	mu        sync.Mutex
	rooms     map[string]map[string]*fakeClient
	emissions []emission
	emitCh    chan emission
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{
		rooms:  make(map[string]map[string]*fakeClient),
		emitCh: make(chan emission, 256),
	}
}

func (b *fakeBroadcaster) EmitToRoom(room, event string, args ...interface{}) {
	e := emission{room: room, event: event, args: args}
	b.mu.Lock()
	b.emissions = append(b.emissions, e)
	b.mu.Unlock()
	b.emitCh <- e
}

func (b *fakeBroadcaster) EmitToOthers(room, exceptID, event string, args ...interface{}) {
	e := emission{room: room, exceptID: exceptID, event: event, args: args}
	b.mu.Lock()
	b.emissions = append(b.emissions, e)
	b.mu.Unlock()
}

func (b *fakeBroadcaster) RoomLen(room string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rooms[room])
}

func (b *fakeBroadcaster) recorded() []emission {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]emission, len(b.emissions))
	copy(out, b.emissions)
	return out
}

// byEvent returns every recorded emission with the given event name.
func (b *fakeBroadcaster) byEvent(event string) []emission {
	var out []emission
	for _, e := range b.recorded() {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (b *fakeBroadcaster) join(room string, c *fakeClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rooms[room] == nil {
		b.rooms[room] = make(map[string]*fakeClient)
	}
	b.rooms[room][c.id] = c
}

func (b *fakeBroadcaster) leave(room string, c *fakeClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.rooms[room], c.id)
}

// fakeClient implements socket.Client and records direct emissions.
type fakeClient struct {
	id  string
	hub *fakeBroadcaster

	mu      sync.Mutex
	direct  []emission
	inRooms map[string]bool
}

var _ socket.Client = (*fakeClient)(nil)

func (b *fakeBroadcaster) newClient(id string) *fakeClient {
	return &fakeClient{id: id, hub: b, inRooms: make(map[string]bool)}
}

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) Join(room string) {
	c.mu.Lock()
	c.inRooms[room] = true
	c.mu.Unlock()
	c.hub.join(room, c)
}

func (c *fakeClient) Leave(room string) {
	c.mu.Lock()
	delete(c.inRooms, room)
	c.mu.Unlock()
	c.hub.leave(room, c)
}

func (c *fakeClient) Emit(event string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.direct = append(c.direct, emission{event: event, args: args})
}

func (c *fakeClient) received(event string) []emission {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []emission
	for _, e := range c.direct {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}
