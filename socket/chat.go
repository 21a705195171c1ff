package socket

import (
	"log"
	"sync"
	"time"

	"vibematch_server/models"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// maxChatHistory bounds each room's in-memory history; the oldest message
// is dropped on overflow.
const maxChatHistory = 100

// JoinChatPayload is the client payload for join-chat.
type JoinChatPayload struct {
	EventCode     string `json:"eventCode"`
	MatchID       string `json:"matchId"`
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
}

// LeaveChatPayload is the client payload for leave-chat.
type LeaveChatPayload struct {
	EventCode     string `json:"eventCode"`
	MatchID       string `json:"matchId"`
	ParticipantID string `json:"participantId"`
}

// SendMessagePayload is the client payload for send-message.
type SendMessagePayload struct {
	EventCode string `json:"eventCode"`
	MatchID   string `json:"matchId"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
}

// ReportMessagePayload is the client payload for report-message. The
// reported message is identified by its exact timestamp.
type ReportMessagePayload struct {
	EventCode        string    `json:"eventCode"`
	MatchID          string    `json:"matchId"`
	ReporterID       string    `json:"reporterId"`
	MessageTimestamp time.Time `json:"messageTimestamp"`
	Reason           string    `json:"reason"`
}

// TypingPayload is the client payload for typing-start and typing-stop.
type TypingPayload struct {
	EventCode     string `json:"eventCode"`
	MatchID       string `json:"matchId"`
	ParticipantID string `json:"participantId"`
}

// ChatHistory is sent to a joining participant only.
type ChatHistory struct {
	Messages []models.ChatMessage `json:"messages"`
}

// ChatPresence announces a participant joining or leaving a room.
type ChatPresence struct {
	ParticipantID string    `json:"participantId"`
	DisplayName   string    `json:"displayName"`
	Timestamp     time.Time `json:"timestamp"`
}

type chatSession struct {
	participants map[string]string // participantId -> displayName
	messages     []models.ChatMessage
}

// ChatRoomService manages the ephemeral per-match chat rooms: membership,
// bounded history and broadcast. Sessions are created lazily and reclaimed
// when the last participant leaves explicitly. A raw disconnect does not
// clean up the membership map; that only affects displayName resolution, so
// the staleness is tolerated.
type ChatRoomService struct {
	broadcaster Broadcaster
	clock       clockwork.Clock

	mu       sync.Mutex
	sessions map[string]*chatSession
}

func NewChatRoomService(broadcaster Broadcaster, clock clockwork.Clock) *ChatRoomService {
	return &ChatRoomService{
		broadcaster: broadcaster,
		clock:       clock,
		sessions:    make(map[string]*chatSession),
	}
}

func chatRoom(eventCode, matchID string) string {
	return "chat:" + eventCode + ":" + matchID
}

// getOrCreateSession is the idempotent lazy-create point: two first-joiners
// racing both get the same session.
func (s *ChatRoomService) getOrCreateSession(roomID string) *chatSession {
	session := s.sessions[roomID]
	if session == nil {
		session = &chatSession{participants: make(map[string]string)}
		s.sessions[roomID] = session
		log.Printf("Created chat session for room %s", roomID)
	}
	return session
}

// JoinChat registers the caller in the room, announces them to the others
// and sends the full message history to the caller only.
func (s *ChatRoomService) JoinChat(c Client, p JoinChatPayload) {
	if p.EventCode == "" || p.MatchID == "" || p.ParticipantID == "" {
		log.Printf("Ignoring invalid join-chat from %s", c.ID())
		return
	}

	roomID := chatRoom(p.EventCode, p.MatchID)
	c.Join(roomID)

	displayName := p.DisplayName
	if displayName == "" {
		displayName = p.ParticipantID
	}

	s.mu.Lock()
	session := s.getOrCreateSession(roomID)
	session.participants[p.ParticipantID] = displayName
	history := make([]models.ChatMessage, len(session.messages))
	copy(history, session.messages)
	s.mu.Unlock()

	log.Printf("%s joined chat room %s", displayName, roomID)

	s.broadcaster.EmitToOthers(roomID, c.ID(), "chat-participant-joined", ChatPresence{
		ParticipantID: p.ParticipantID,
		DisplayName:   displayName,
		Timestamp:     s.clock.Now(),
	})
	c.Emit("chat-history", ChatHistory{Messages: history})
}

// LeaveChat removes the caller from the room and reclaims the session once
// it is empty.
func (s *ChatRoomService) LeaveChat(c Client, p LeaveChatPayload) {
	if p.EventCode == "" || p.MatchID == "" || p.ParticipantID == "" {
		return
	}

	roomID := chatRoom(p.EventCode, p.MatchID)
	c.Leave(roomID)

	s.mu.Lock()
	session := s.sessions[roomID]
	if session == nil {
		s.mu.Unlock()
		return
	}
	displayName := session.participants[p.ParticipantID]
	if displayName == "" {
		displayName = p.ParticipantID
	}
	delete(session.participants, p.ParticipantID)
	if len(session.participants) == 0 {
		delete(s.sessions, roomID)
		log.Printf("Chat session %s is empty, reclaimed", roomID)
	}
	s.mu.Unlock()

	s.broadcaster.EmitToOthers(roomID, c.ID(), "chat-participant-left", ChatPresence{
		ParticipantID: p.ParticipantID,
		DisplayName:   displayName,
		Timestamp:     s.clock.Now(),
	})
}

// SendMessage appends to the room history and broadcasts to the whole room,
// sender included, so everyone sees one consistent ordering. A message may
// arrive before the sender's join-chat due to event ordering; the session is
// created on the spot in that case.
func (s *ChatRoomService) SendMessage(c Client, p SendMessagePayload) {
	if p.EventCode == "" || p.MatchID == "" || p.SenderID == "" || p.Content == "" {
		log.Printf("Ignoring invalid send-message from %s", c.ID())
		return
	}

	roomID := chatRoom(p.EventCode, p.MatchID)

	s.mu.Lock()
	session := s.getOrCreateSession(roomID)
	displayName := session.participants[p.SenderID]
	if displayName == "" {
		displayName = p.SenderID
	}
	message := models.ChatMessage{
		MessageID:   uuid.NewString(),
		SenderID:    p.SenderID,
		DisplayName: displayName,
		Content:     p.Content,
		Timestamp:   s.clock.Now(),
	}
	session.messages = append(session.messages, message)
	if len(session.messages) > maxChatHistory {
		session.messages = session.messages[len(session.messages)-maxChatHistory:]
	}
	s.mu.Unlock()

	s.broadcaster.EmitToRoom(roomID, "new-message", message)
}

// ReportMessage logs a report for moderators and acknowledges it to the
// reporter only. No enforcement happens here.
func (s *ChatRoomService) ReportMessage(c Client, p ReportMessagePayload) {
	if p.EventCode == "" || p.MatchID == "" || p.ReporterID == "" || p.MessageTimestamp.IsZero() {
		return
	}

	roomID := chatRoom(p.EventCode, p.MatchID)
	reason := p.Reason
	if reason == "" {
		reason = "Not specified"
	}

	s.mu.Lock()
	var reported *models.ChatMessage
	if session := s.sessions[roomID]; session != nil {
		for i := range session.messages {
			if session.messages[i].Timestamp.Equal(p.MessageTimestamp) {
				reported = &session.messages[i]
				break
			}
		}
	}
	s.mu.Unlock()

	if reported != nil {
		log.Printf("REPORT in %s: reporter %s, reason: %s, message from %s: %q",
			roomID, p.ReporterID, reason, reported.SenderID, reported.Content)
	} else {
		log.Printf("REPORT in %s: reporter %s, reason: %s, message not found in history",
			roomID, p.ReporterID, reason)
	}

	c.Emit("report-acknowledged", map[string]interface{}{
		"messageTimestamp": p.MessageTimestamp,
		"timestamp":        s.clock.Now(),
	})
}

// TypingStart relays a typing indicator to the rest of the room.
func (s *ChatRoomService) TypingStart(c Client, p TypingPayload) {
	if p.EventCode == "" || p.MatchID == "" || p.ParticipantID == "" {
		return
	}
	s.broadcaster.EmitToOthers(chatRoom(p.EventCode, p.MatchID), c.ID(), "participant-typing",
		map[string]string{"participantId": p.ParticipantID})
}

// TypingStop relays the end of a typing indicator to the rest of the room.
func (s *ChatRoomService) TypingStop(c Client, p TypingPayload) {
	if p.EventCode == "" || p.MatchID == "" || p.ParticipantID == "" {
		return
	}
	s.broadcaster.EmitToOthers(chatRoom(p.EventCode, p.MatchID), c.ID(), "participant-stopped-typing",
		map[string]string{"participantId": p.ParticipantID})
}

// SessionCount reports the number of live chat sessions, for the periodic
// debug log in the socket server.
func (s *ChatRoomService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
