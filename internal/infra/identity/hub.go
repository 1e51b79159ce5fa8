package identity

import (
	"context"
	"sync"

	"chatdesk/internal/domain/entity"
	"chatdesk/internal/domain/service"
)

// authHub fans auth-state changes out to subscribers. Each subscriber gets the
// current state first, then every later change in order, on its own goroutine.
type authHub struct {
	mu      sync.Mutex
	current *entity.AuthSession
	subs    map[int]*subscription
	nextID  int
	closed  bool
}

func newAuthHub() *authHub {
	return &authHub{subs: make(map[int]*subscription)}
}

func (h *authHub) subscribe(listener service.AuthStateListener) service.Subscription {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{
		hub:    h,
		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		cancel()

		return sub
	}
	sub.id = h.nextID
	h.nextID++
	h.subs[sub.id] = sub
	sub.push(h.current)
	h.mu.Unlock()

	go sub.run(listener)

	return sub
}

func (h *authHub) publish(session *entity.AuthSession) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = session
	for _, sub := range h.subs {
		sub.push(session)
	}
}

func (h *authHub) currentSession() *entity.AuthSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current
}

func (h *authHub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs, id)
}

// close stops every subscription. Later subscriptions receive nothing.
func (h *authHub) close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[int]*subscription)
	h.closed = true
	h.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
	}
}

type subscription struct {
	hub    *authHub
	id     int
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	mu    sync.Mutex
	queue []*entity.AuthSession
	wake  chan struct{}
}

// Unsubscribe stops delivery. Safe to call more than once.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		s.hub.remove(s.id)
	})
}

func (s *subscription) push(session *entity.AuthSession) {
	s.mu.Lock()
	s.queue = append(s.queue, session)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscription) next() (*entity.AuthSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, false
	}
	session := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]

	return session, true
}

func (s *subscription) run(listener service.AuthStateListener) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.wake:
		}

		for {
			session, ok := s.next()
			if !ok {
				break
			}
			if s.ctx.Err() != nil {
				return
			}
			listener(s.ctx, session)
		}
	}
}
