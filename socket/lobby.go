package socket

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// StartCountdownPayload is the client payload for start-countdown.
type StartCountdownPayload struct {
	EventCode string `json:"eventCode"`
	Duration  int    `json:"duration"`
}

// UpdateLeaderboardPayload carries a caller-supplied leaderboard to
// rebroadcast. The server does not recompute it here; that is the HTTP
// layer's job.
type UpdateLeaderboardPayload struct {
	EventCode   string      `json:"eventCode"`
	Leaderboard interface{} `json:"leaderboard"`
}

// ParticipantUpdate reports the live lobby size.
type ParticipantUpdate struct {
	Count int `json:"count"`
}

// CountdownUpdate reports seconds remaining.
type CountdownUpdate struct {
	RemainingTime int `json:"remainingTime"`
}

type lobbyState struct {
	remainingTime int
	cancel        chan struct{}
}

// LobbyService manages per-event lobbies: room membership updates and the
// shared countdown. Malformed payloads are dropped without an error reply;
// a crashed shared process would hurt every event, a bad client message
// hurts nobody.
type LobbyService struct {
	broadcaster Broadcaster
	clock       clockwork.Clock

	mu     sync.Mutex
	events map[string]*lobbyState
}

func NewLobbyService(broadcaster Broadcaster, clock clockwork.Clock) *LobbyService {
	return &LobbyService{
		broadcaster: broadcaster,
		clock:       clock,
		events:      make(map[string]*lobbyState),
	}
}

func eventRoom(eventCode string) string {
	return "event:" + eventCode
}

// JoinEvent adds the caller to the event's broadcast group and announces
// the new live count to the whole group.
func (s *LobbyService) JoinEvent(c Client, eventCode string) {
	if eventCode == "" {
		return
	}

	room := eventRoom(eventCode)
	c.Join(room)
	log.Printf("Client %s joined event %s", c.ID(), eventCode)

	s.broadcaster.EmitToRoom(room, "participant-update", ParticipantUpdate{
		Count: s.broadcaster.RoomLen(room),
	})
}

// LeaveEvent removes the caller from the group and re-announces the count
// if anyone is still in it.
func (s *LobbyService) LeaveEvent(c Client, eventCode string) {
	if eventCode == "" {
		return
	}

	room := eventRoom(eventCode)
	c.Leave(room)
	log.Printf("Client %s left event %s", c.ID(), eventCode)

	if count := s.broadcaster.RoomLen(room); count > 0 {
		s.broadcaster.EmitToRoom(room, "participant-update", ParticipantUpdate{Count: count})
	}
}

// HandleDisconnect treats a raw disconnect as a leave for every event room
// the connection was in, so remaining members see the corrected count.
func (s *LobbyService) HandleDisconnect(c Client, rooms []string) {
	for _, room := range rooms {
		if !strings.HasPrefix(room, "event:") {
			continue
		}
		c.Leave(room)
		if count := s.broadcaster.RoomLen(room); count > 0 {
			s.broadcaster.EmitToRoom(room, "participant-update", ParticipantUpdate{Count: count})
		}
	}
}

// StartCountdown (re)starts the event countdown. A running countdown is
// cancelled first so timers never stack; then the full remaining time is
// emitted immediately and once per second until it hits zero, followed by
// a single countdown-complete.
func (s *LobbyService) StartCountdown(c Client, p StartCountdownPayload) {
	if p.EventCode == "" || p.Duration <= 0 {
		return
	}

	room := eventRoom(p.EventCode)

	s.mu.Lock()
	state := s.events[p.EventCode]
	if state == nil {
		state = &lobbyState{}
		s.events[p.EventCode] = state
	}
	if state.cancel != nil {
		close(state.cancel)
	}
	cancel := make(chan struct{})
	state.cancel = cancel
	state.remainingTime = p.Duration
	s.mu.Unlock()

	log.Printf("Countdown started for event %s: %d seconds", p.EventCode, p.Duration)
	s.broadcaster.EmitToRoom(room, "countdown-update", CountdownUpdate{RemainingTime: p.Duration})

	go s.runCountdown(p.EventCode, room, cancel)
}

func (s *LobbyService) runCountdown(eventCode, room string, cancel chan struct{}) {
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.Chan():
			s.mu.Lock()
			state := s.events[eventCode]
			if state == nil || state.cancel != cancel {
				// A restart replaced this timer between ticks.
				s.mu.Unlock()
				return
			}
			state.remainingTime--
			remaining := state.remainingTime
			done := remaining <= 0
			if done {
				state.cancel = nil
			}
			s.mu.Unlock()

			s.broadcaster.EmitToRoom(room, "countdown-update", CountdownUpdate{RemainingTime: remaining})
			if done {
				s.broadcaster.EmitToRoom(room, "countdown-complete")
				log.Printf("Countdown complete for event %s", eventCode)
				return
			}
		}
	}
}

// TriggerMatchReveal tells the whole lobby to show matches. Stateless; the
// host may fire it repeatedly.
func (s *LobbyService) TriggerMatchReveal(c Client, eventCode string) {
	if eventCode == "" {
		return
	}
	s.broadcaster.EmitToRoom(eventRoom(eventCode), "match-reveal")
}

// UpdateLeaderboard rebroadcasts a caller-supplied leaderboard to the lobby.
func (s *LobbyService) UpdateLeaderboard(c Client, p UpdateLeaderboardPayload) {
	if p.EventCode == "" || p.Leaderboard == nil {
		return
	}
	s.broadcaster.EmitToRoom(eventRoom(p.EventCode), "leaderboard-update", map[string]interface{}{
		"leaderboard": p.Leaderboard,
	})
}
