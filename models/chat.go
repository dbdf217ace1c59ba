package models

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ServiceCategory is a top-level service line a visitor can ask about.
type ServiceCategory string

const (
	CategoryAutomation ServiceCategory = "automation"
	CategorySafety     ServiceCategory = "safety"
	CategoryDesign     ServiceCategory = "design"
	CategoryPanel      ServiceCategory = "panel"
	CategoryTraining   ServiceCategory = "training"
)

// Industry is one of the focus industries a visitor can refine into.
type Industry string

const (
	IndustryPharmaceutical Industry = "pharmaceutical"
	IndustryAutomotive     Industry = "automotive"
	IndustryFood           Industry = "food"
)

// Phase is the explicit position of a session in the guided-discovery funnel.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseDiscovering      Phase = "discovering"
	PhaseCategorySelected Phase = "category_selected"
	PhaseRefined          Phase = "refined"
)

// ConversationState is the per-session funnel state. It is only ever mutated
// through its transition methods so the funnel can't skip or repeat steps.
type ConversationState struct {
	Phase    Phase           `json:"phase"`
	Category ServiceCategory `json:"category,omitempty"`
	Industry Industry        `json:"industry,omitempty"`
}

// NewConversationState returns the initial (idle, unset) state.
func NewConversationState() *ConversationState {
	return &ConversationState{Phase: PhaseIdle}
}

// Discovering reports whether the session is in the discovery funnel with no
// category chosen yet.
func (s *ConversationState) Discovering() bool {
	return s.Phase == PhaseDiscovering
}

// EnterDiscovery moves an idle session into the discovery funnel. It is a
// no-op once a category has been chosen.
func (s *ConversationState) EnterDiscovery() {
	if s.Category == "" {
		s.Phase = PhaseDiscovering
	}
}

// SelectCategory records the visitor's service line. A category can be set at
// most once per session; a second selection is ignored and reported false.
func (s *ConversationState) SelectCategory(c ServiceCategory) bool {
	if s.Category != "" {
		return false
	}
	s.Category = c
	s.Phase = PhaseCategorySelected
	return true
}

// RefineIndustry records the visitor's industry once a category is chosen.
func (s *ConversationState) RefineIndustry(i Industry) bool {
	if s.Category == "" {
		return false
	}
	s.Industry = i
	s.Phase = PhaseRefined
	return true
}

// Reset clears the session back to its initial state.
func (s *ConversationState) Reset() {
	s.Phase = PhaseIdle
	s.Category = ""
	s.Industry = ""
}

// Message is one entry in a session's append-only chat log.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the payload coming from the widget into /api/chat/message.
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is what the message endpoint returns to the widget.
type ChatResponse struct {
	SessionID string             `json:"sessionId"`
	Accepted  bool               `json:"accepted"`
	Reply     string             `json:"reply,omitempty"`
	ReplyHTML string             `json:"replyHtml,omitempty"`
	TypingMs  int                `json:"typingMs,omitempty"`
	State     *ConversationState `json:"state,omitempty"`
}

// SessionResponse is returned when a new chat session is opened.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Greeting  string `json:"greeting"`
	HTML      string `json:"greetingHtml"`
}
