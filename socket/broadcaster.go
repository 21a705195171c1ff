package socket

import (
	socketio "github.com/googollee/go-socket.io"
)

// Client is one connected socket as the lobby/chat handlers see it.
// socketio.Conn satisfies it directly; tests use fakes.
type Client interface {
	ID() string
	Join(room string)
	Leave(room string)
	Emit(event string, args ...interface{})
}

// Broadcaster is the room-level side of the transport. Membership counts
// are always read live from the transport, never tracked separately, so
// reconnects and crashes cannot make the count drift.
type Broadcaster interface {
	EmitToRoom(room, event string, args ...interface{})
	EmitToOthers(room, exceptID, event string, args ...interface{})
	RoomLen(room string) int
}

const namespace = "/"

// SocketBroadcaster adapts a socket.io server to the Broadcaster interface.
type SocketBroadcaster struct {
	Server *socketio.Server
}

func (b *SocketBroadcaster) EmitToRoom(room, event string, args ...interface{}) {
	b.Server.BroadcastToRoom(namespace, room, event, args...)
}

// EmitToOthers sends to every connection in the room except one. socket.io
// has no server-side "everyone but the sender" broadcast, so this walks the
// room.
func (b *SocketBroadcaster) EmitToOthers(room, exceptID, event string, args ...interface{}) {
	b.Server.ForEach(namespace, room, func(conn socketio.Conn) {
		if conn.ID() != exceptID {
			conn.Emit(event, args...)
		}
	})
}

func (b *SocketBroadcaster) RoomLen(room string) int {
	return b.Server.RoomLen(namespace, room)
}
