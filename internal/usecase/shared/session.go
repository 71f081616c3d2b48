package shared

import (
	"sync"

	"github.com/google/uuid"
)

// CartSession is the request-session half of the cart state: the active
// coupon and the selected add-on services. Unlike the line items it is never
// written to the profile store; a restart resets it, the same way service
// selection resets on every page load.
type CartSession struct {
	CouponCode string
	ServiceIDs []int64
}

// Sessions holds one CartSession per profile, guarded for concurrent
// requests.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*CartSession
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[uuid.UUID]*CartSession)}
}

// Get returns a copy of the profile's session, or a zero session when none
// exists yet.
func (s *Sessions) Get(profileID uuid.UUID) CartSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[profileID]
	if !ok {
		return CartSession{}
	}

	ids := make([]int64, len(session.ServiceIDs))
	copy(ids, session.ServiceIDs)
	return CartSession{CouponCode: session.CouponCode, ServiceIDs: ids}
}

// SetCoupon replaces the active coupon; at most one is active at a time.
func (s *Sessions) SetCoupon(profileID uuid.UUID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(profileID).CouponCode = code
}

func (s *Sessions) ClearCoupon(profileID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[profileID]; ok {
		session.CouponCode = ""
	}
}

// ToggleService adds or removes one service id from the selection.
func (s *Sessions) ToggleService(profileID uuid.UUID, serviceID int64, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.ensure(profileID)
	kept := session.ServiceIDs[:0]
	for _, id := range session.ServiceIDs {
		if id != serviceID {
			kept = append(kept, id)
		}
	}
	session.ServiceIDs = kept

	if selected {
		session.ServiceIDs = append(session.ServiceIDs, serviceID)
	}
}

// Reset drops the whole session, e.g. after checkout.
func (s *Sessions) Reset(profileID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, profileID)
}

func (s *Sessions) ensure(profileID uuid.UUID) *CartSession {
	session, ok := s.sessions[profileID]
	if !ok {
		session = &CartSession{}
		s.sessions[profileID] = session
	}
	return session
}
