package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	authdomain "github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/chat/domain"
)

const subscriberBuffer = 16

// AdminLookup resolves the admin a visitor is talking to.
type AdminLookup interface {
	GetProfile(id string) (authdomain.AdminProfile, error)
}

type convKey struct {
	visitor string
	adminID string
}

// ChatService keeps one conversation per (visitor, admin) pair and answers
// every visitor message with a single delayed reply.
type ChatService struct {
	mu        sync.Mutex
	convs     map[convKey][]domain.Message
	subs      map[convKey]map[chan domain.Message]struct{}
	timers    map[*time.Timer]struct{}
	closed    bool
	admins    AdminLookup
	responder Responder
	delay     time.Duration
	now       func() time.Time
	log       *zap.Logger
}

type Option func(*ChatService)

func WithResponder(r Responder) Option {
	return func(s *ChatService) { s.responder = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *ChatService) { s.now = now }
}

func NewChatService(admins AdminLookup, delay time.Duration, log *zap.Logger, opts ...Option) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ChatService{
		convs:     make(map[convKey][]domain.Message),
		subs:      make(map[convKey]map[chan domain.Message]struct{}),
		timers:    make(map[*time.Timer]struct{}),
		admins:    admins,
		responder: CannedResponder{},
		delay:     delay,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send appends the visitor's message right away and schedules exactly one
// reply from the admin after the configured delay.
func (s *ChatService) Send(ctx context.Context, visitor, adminID, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}
	admin, err := s.lookup(adminID)
	if err != nil {
		return domain.Message{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}

	key := convKey{visitor: visitor, adminID: adminID}
	msg := s.newMessage(visitor, text, false)
	reply := s.responder.Reply(visitor, admin.Name, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Message{}, domain.ErrClosed
	}
	s.appendLocked(key, msg)

	// t is only read under s.mu, after this function has released it
	var t *time.Timer
	t = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.deliverLocked(t, key, admin.Name, reply)
	})
	s.timers[t] = struct{}{}

	return msg, nil
}

// Messages returns a copy of the conversation between visitor and adminID.
func (s *ChatService) Messages(visitor, adminID string) ([]domain.Message, error) {
	if _, err := s.lookup(adminID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.convs[convKey{visitor: visitor, adminID: adminID}]
	out := make([]domain.Message, len(conv))
	copy(out, conv)
	return out, nil
}

// Subscribe returns a channel that receives every message appended to the
// conversation from now on. The cancel func must be called when done; the
// channel is closed by cancel or by Close.
func (s *ChatService) Subscribe(visitor, adminID string) (<-chan domain.Message, func(), error) {
	if _, err := s.lookup(adminID); err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, domain.ErrClosed
	}

	key := convKey{visitor: visitor, adminID: adminID}
	ch := make(chan domain.Message, subscriberBuffer)
	if s.subs[key] == nil {
		s.subs[key] = make(map[chan domain.Message]struct{})
	}
	s.subs[key][ch] = struct{}{}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[key][ch]; ok {
			delete(s.subs[key], ch)
			if len(s.subs[key]) == 0 {
				delete(s.subs, key)
			}
			close(ch)
		}
	}
	return ch, cancel, nil
}

// Close stops pending replies and ends all subscriptions.
func (s *ChatService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})

	for key, set := range s.subs {
		for ch := range set {
			close(ch)
		}
		delete(s.subs, key)
	}
	s.log.Info("chat service closed")
}

func (s *ChatService) deliverLocked(t *time.Timer, key convKey, adminName, text string) {
	if _, pending := s.timers[t]; !pending {
		return
	}
	delete(s.timers, t)
	s.appendLocked(key, s.newMessage(adminName, text, true))
}

func (s *ChatService) appendLocked(key convKey, msg domain.Message) {
	s.convs[key] = append(s.convs[key], msg)
	for ch := range s.subs[key] {
		select {
		case ch <- msg:
		default:
			s.log.Warn("chat subscriber is slow, dropping message",
				zap.String("visitor", key.visitor),
				zap.String("admin_id", key.adminID))
		}
	}
}

func (s *ChatService) lookup(adminID string) (authdomain.AdminProfile, error) {
	admin, err := s.admins.GetProfile(adminID)
	if errors.Is(err, authdomain.ErrAdminNotFound) {
		return authdomain.AdminProfile{}, domain.ErrAdminNotFound
	}
	return admin, err
}

func (s *ChatService) newMessage(sender, text string, isAdmin bool) domain.Message {
	return domain.Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		IsAdmin:   isAdmin,
		Timestamp: s.now().UnixMilli(),
	}
}
