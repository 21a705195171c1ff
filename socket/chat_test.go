package socket_test

import (
	"fmt"
	"testing"
	"time"

	"vibematch_server/models"
	"vibematch_server/socket"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoom = "chat:ABC123:Player104#Player901"

func newChat() (*socket.ChatRoomService, *fakeBroadcaster, *clockwork.FakeClock) {
	b := newFakeBroadcaster()
	clock := clockwork.NewFakeClock()
	return socket.NewChatRoomService(b, clock), b, clock
}

func joinPayload(participantID, displayName string) socket.JoinChatPayload {
	return socket.JoinChatPayload{
		EventCode:     "ABC123",
		MatchID:       "Player104#Player901",
		ParticipantID: participantID,
		DisplayName:   displayName,
	}
}

func messagePayload(senderID, content string) socket.SendMessagePayload {
	return socket.SendMessagePayload{
		EventCode: "ABC123",
		MatchID:   "Player104#Player901",
		SenderID:  senderID,
		Content:   content,
	}
}

func TestJoinChat_AnnouncesAndSendsHistory(t *testing.T) {
	chat, b, _ := newChat()

	alice := b.newClient("s1")
	chat.JoinChat(alice, joinPayload("Player104", "Alice"))

	// Empty history goes to the joiner only.
	histories := alice.received("chat-history")
	require.Len(t, histories, 1)
	assert.Empty(t, histories[0].args[0].(socket.ChatHistory).Messages)

	chat.SendMessage(alice, messagePayload("Player104", "hey there"))

	bob := b.newClient("s2")
	chat.JoinChat(bob, joinPayload("Player901", "Bob"))

	// Bob's join is announced to the others, not echoed back to him.
	joined := b.byEvent("chat-participant-joined")
	require.Len(t, joined, 2)
	assert.Equal(t, "s2", joined[1].exceptID)
	presence := joined[1].args[0].(socket.ChatPresence)
	assert.Equal(t, "Player901", presence.ParticipantID)
	assert.Equal(t, "Bob", presence.DisplayName)

	// Bob receives the existing history on join.
	histories = bob.received("chat-history")
	require.Len(t, histories, 1)
	messages := histories[0].args[0].(socket.ChatHistory).Messages
	require.Len(t, messages, 1)
	assert.Equal(t, "hey there", messages[0].Content)
	assert.Equal(t, "Alice", messages[0].DisplayName)
}

func TestJoinChat_MissingFieldsIgnored(t *testing.T) {
	chat, b, _ := newChat()
	c := b.newClient("s1")

	chat.JoinChat(c, socket.JoinChatPayload{EventCode: "ABC123", MatchID: "m"})
	chat.JoinChat(c, socket.JoinChatPayload{EventCode: "ABC123", ParticipantID: "P1"})
	chat.JoinChat(c, socket.JoinChatPayload{MatchID: "m", ParticipantID: "P1"})

	assert.Empty(t, c.received("chat-history"))
	assert.Zero(t, chat.SessionCount())
}

func TestSendMessage_BroadcastsToWholeRoom(t *testing.T) {
	chat, b, clock := newChat()
	c := b.newClient("s1")
	chat.JoinChat(c, joinPayload("Player104", "Alice"))

	chat.SendMessage(c, messagePayload("Player104", "hello"))

	emitted := b.byEvent("new-message")
	require.Len(t, emitted, 1)
	assert.Equal(t, testRoom, emitted[0].room)
	assert.Empty(t, emitted[0].exceptID, "sender included for consistent ordering")

	message := emitted[0].args[0].(models.ChatMessage)
	assert.NotEmpty(t, message.MessageID)
	assert.Equal(t, "Player104", message.SenderID)
	assert.Equal(t, "Alice", message.DisplayName)
	assert.Equal(t, "hello", message.Content)
	assert.True(t, message.Timestamp.Equal(clock.Now()))
}

func TestSendMessage_BeforeJoinCreatesSession(t *testing.T) {
	chat, b, _ := newChat()
	c := b.newClient("s1")

	// Client raced ahead of its own join-chat; the message still lands.
	chat.SendMessage(c, messagePayload("Player104", "first"))
	require.Equal(t, 1, chat.SessionCount())

	// Unknown sender falls back to the raw id for display.
	emitted := b.byEvent("new-message")
	require.Len(t, emitted, 1)
	message := emitted[0].args[0].(models.ChatMessage)
	assert.Equal(t, "Player104", message.DisplayName)
}

func TestSendMessage_HistoryCappedAtHundred(t *testing.T) {
	chat, b, _ := newChat()
	alice := b.newClient("s1")
	chat.JoinChat(alice, joinPayload("Player104", "Alice"))

	for i := 1; i <= 101; i++ {
		chat.SendMessage(alice, messagePayload("Player104", fmt.Sprintf("message %d", i)))
	}

	// A fresh joiner sees exactly the last 100, oldest dropped.
	bob := b.newClient("s2")
	chat.JoinChat(bob, joinPayload("Player901", "Bob"))

	histories := bob.received("chat-history")
	require.Len(t, histories, 1)
	messages := histories[0].args[0].(socket.ChatHistory).Messages
	require.Len(t, messages, 100)
	assert.Equal(t, "message 2", messages[0].Content)
	assert.Equal(t, "message 101", messages[99].Content)
}

func TestSendMessage_InvalidIgnored(t *testing.T) {
	chat, b, _ := newChat()
	c := b.newClient("s1")

	chat.SendMessage(c, messagePayload("Player104", ""))
	chat.SendMessage(c, messagePayload("", "hello"))
	chat.SendMessage(c, socket.SendMessagePayload{MatchID: "m", SenderID: "P1", Content: "x"})

	assert.Empty(t, b.byEvent("new-message"))
	assert.Zero(t, chat.SessionCount())
}

func TestLeaveChat_ReclaimsEmptySession(t *testing.T) {
	chat, b, _ := newChat()

	alice := b.newClient("s1")
	bob := b.newClient("s2")
	chat.JoinChat(alice, joinPayload("Player104", "Alice"))
	chat.JoinChat(bob, joinPayload("Player901", "Bob"))
	require.Equal(t, 1, chat.SessionCount())

	leave := socket.LeaveChatPayload{EventCode: "ABC123", MatchID: "Player104#Player901", ParticipantID: "Player104"}
	chat.LeaveChat(alice, leave)

	left := b.byEvent("chat-participant-left")
	require.Len(t, left, 1)
	presence := left[0].args[0].(socket.ChatPresence)
	assert.Equal(t, "Alice", presence.DisplayName)
	assert.Equal(t, 1, chat.SessionCount(), "session survives while Bob remains")

	leave.ParticipantID = "Player901"
	chat.LeaveChat(bob, leave)
	assert.Zero(t, chat.SessionCount(), "empty session reclaimed")
}

func TestRejoinOverridesDisplayName(t *testing.T) {
	chat, b, _ := newChat()
	c := b.newClient("s1")

	chat.JoinChat(c, joinPayload("Player104", "Alice"))
	chat.JoinChat(c, joinPayload("Player104", "Alicia"))

	chat.SendMessage(c, messagePayload("Player104", "renamed"))
	emitted := b.byEvent("new-message")
	require.Len(t, emitted, 1)
	assert.Equal(t, "Alicia", emitted[0].args[0].(models.ChatMessage).DisplayName)
}

func TestReportMessage_AcknowledgesReporterOnly(t *testing.T) {
	chat, b, clock := newChat()
	alice := b.newClient("s1")
	bob := b.newClient("s2")
	chat.JoinChat(alice, joinPayload("Player104", "Alice"))
	chat.JoinChat(bob, joinPayload("Player901", "Bob"))

	chat.SendMessage(alice, messagePayload("Player104", "rude message"))
	sent := b.byEvent("new-message")[0].args[0].(models.ChatMessage)

	chat.ReportMessage(bob, socket.ReportMessagePayload{
		EventCode:        "ABC123",
		MatchID:          "Player104#Player901",
		ReporterID:       "Player901",
		MessageTimestamp: sent.Timestamp,
		Reason:           "inappropriate",
	})

	acks := bob.received("report-acknowledged")
	require.Len(t, acks, 1)
	payload := acks[0].args[0].(map[string]interface{})
	assert.True(t, payload["messageTimestamp"].(time.Time).Equal(sent.Timestamp))
	assert.True(t, payload["timestamp"].(time.Time).Equal(clock.Now()))
	assert.Empty(t, alice.received("report-acknowledged"))
}

func TestTypingIndicators_RelayToOthers(t *testing.T) {
	chat, b, _ := newChat()
	c := b.newClient("s1")
	typing := socket.TypingPayload{EventCode: "ABC123", MatchID: "Player104#Player901", ParticipantID: "Player104"}

	chat.TypingStart(c, typing)
	chat.TypingStop(c, typing)

	starts := b.byEvent("participant-typing")
	require.Len(t, starts, 1)
	assert.Equal(t, "s1", starts[0].exceptID)
	assert.Equal(t, map[string]string{"participantId": "Player104"}, starts[0].args[0])

	stops := b.byEvent("participant-stopped-typing")
	require.Len(t, stops, 1)

	// Typing events touch no session state.
	assert.Zero(t, chat.SessionCount())
}
