package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
	"github.com/jonboulle/clockwork"
)

// NewSocketServer initializes the Socket.IO server and wires the lobby and
// chat handlers to it.
func NewSocketServer(clock clockwork.Clock) *socketio.Server {
	server := socketio.NewServer(nil)
	broadcaster := &SocketBroadcaster{Server: server}

	lobby := NewLobbyService(broadcaster, clock)
	chat := NewChatRoomService(broadcaster, clock)

	server.OnConnect(namespace, func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	// Lobby events
	server.OnEvent(namespace, "join-event", func(c socketio.Conn, eventCode string) {
		lobby.JoinEvent(c, eventCode)
	})
	server.OnEvent(namespace, "leave-event", func(c socketio.Conn, eventCode string) {
		lobby.LeaveEvent(c, eventCode)
	})
	server.OnEvent(namespace, "start-countdown", func(c socketio.Conn, p StartCountdownPayload) {
		lobby.StartCountdown(c, p)
	})
	server.OnEvent(namespace, "update-leaderboard", func(c socketio.Conn, p UpdateLeaderboardPayload) {
		lobby.UpdateLeaderboard(c, p)
	})
	server.OnEvent(namespace, "trigger-match-reveal", func(c socketio.Conn, eventCode string) {
		lobby.TriggerMatchReveal(c, eventCode)
	})

	// Chat events
	server.OnEvent(namespace, "join-chat", func(c socketio.Conn, p JoinChatPayload) {
		chat.JoinChat(c, p)
	})
	server.OnEvent(namespace, "leave-chat", func(c socketio.Conn, p LeaveChatPayload) {
		chat.LeaveChat(c, p)
	})
	server.OnEvent(namespace, "send-message", func(c socketio.Conn, p SendMessagePayload) {
		chat.SendMessage(c, p)
	})
	server.OnEvent(namespace, "report-message", func(c socketio.Conn, p ReportMessagePayload) {
		chat.ReportMessage(c, p)
	})
	server.OnEvent(namespace, "typing-start", func(c socketio.Conn, p TypingPayload) {
		chat.TypingStart(c, p)
	})
	server.OnEvent(namespace, "typing-stop", func(c socketio.Conn, p TypingPayload) {
		chat.TypingStop(c, p)
	})

	server.OnError(namespace, func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	// Chat session maps are only cleaned up by an explicit leave-chat, but
	// lobby counts must reflect the dropped connection.
	server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
		lobby.HandleDisconnect(c, c.Rooms())
	})

	return server
}
