package bookings

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings/models"
)

// Service owns the booking lifecycle. It exposes the valid intents on a
// booking (propose, list, approve, reject, cancel), calls through the
// backend client and keeps the local view consistent with each outcome:
// a local transition is applied only after the backend confirms it, and a
// failed call leaves prior state untouched.
//
// The local view is a per-user cache reconciled on every ListMine call.
// Mutations on a single booking are serialized with an in-flight guard so a
// double-click can never dispatch two concurrent calls for the same id;
// bookings are independent aggregates, so no cross-booking ordering is
// enforced.
type Service struct {
	api APIClient
	log Logger

	mu       sync.Mutex
	cache    map[int64][]*domain.Booking // viewing user id -> last fetched list
	inflight map[int64]struct{}          // booking ids with a mutation pending
}

// NewService creates a new booking lifecycle service
func NewService(api APIClient, log Logger) *Service {
	return &Service{
		api:      api,
		log:      log,
		cache:    make(map[int64][]*domain.Booking),
		inflight: make(map[int64]struct{}),
	}
}

// Propose submits a new coffee-chat proposal to the target user. The backend
// is authoritative for the created booking; the local view picks it up on
// the next ListMine. No retry on failure: the error is surfaced to the
// caller, who may re-invoke manually.
func (s *Service) Propose(ctx context.Context, session *domain.Session, req *models.ProposeBookingRequest) error {
	if err := validatePropose(req); err != nil {
		s.log.Warn("Propose: validation failed for user=%d: %v", session.UserID, err)
		return err
	}

	s.log.Info("Propose: user=%d target=%d role=%s time=%q",
		session.UserID, req.TargetUserID, req.TargetRole, req.PreferredTime)

	if err := s.api.Post(ctx, "/bookings/propose", req.ToWire(), nil); err != nil {
		s.log.Error("Propose: backend call failed for user=%d: %v", session.UserID, err)
		return fmt.Errorf("propose booking: %w", err)
	}

	s.log.Info("Propose: booking requested by user=%d to target=%d", session.UserID, req.TargetUserID)
	return nil
}

// ListMine fetches all bookings involving the session's user, as either
// participant or proposer. The optional status filter is forwarded to the
// backend; finer filtering (by status or by proposer-vs-received role) is
// available locally via the pure helpers in derived.go. The fetched list
// replaces the user's cached view.
func (s *Service) ListMine(ctx context.Context, session *domain.Session, status *domain.BookingStatus) ([]*domain.Booking, error) {
	path := "/bookings/me"
	if status != nil {
		query := url.Values{}
		query.Set("status", string(*status))
		path += "?" + query.Encode()
	}

	var payloads []models.BookingPayload
	if err := s.api.Get(ctx, path, &payloads); err != nil {
		s.log.Error("ListMine: backend call failed for user=%d: %v", session.UserID, err)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookings, err := models.ToDomainList(payloads)
	if err != nil {
		s.log.Error("ListMine: malformed payload for user=%d: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	// The cache keeps its own copies. Lists handed to callers are read
	// outside the mutex, so a later transition must never write through a
	// pointer a caller still holds.
	s.mu.Lock()
	s.cache[session.UserID] = cloneBookings(bookings)
	s.mu.Unlock()

	s.log.Info("ListMine: fetched %d bookings for user=%d", len(bookings), session.UserID)
	return bookings, nil
}

// Approve approves a pending booking. Valid only from PENDING and only for
// a participant who did not propose it; the local status flips to APPROVED
// once the backend confirms.
func (s *Service) Approve(ctx context.Context, session *domain.Session, bookingID int64) error {
	return s.decide(ctx, session, bookingID, true, nil)
}

// Reject rejects a pending booking, recording the reason. A missing reason
// falls back to a fixed placeholder so the reject-reason invariant holds.
func (s *Service) Reject(ctx context.Context, session *domain.Session, bookingID int64, reason *string) error {
	return s.decide(ctx, session, bookingID, false, reason)
}

func (s *Service) decide(ctx context.Context, session *domain.Session, bookingID int64, approve bool, reason *string) error {
	release, err := s.acquire(session.UserID, bookingID, func(b *domain.Booking) error {
		if !b.CanBeDecided() {
			return ErrAlreadyDecided
		}
		if b.IsProposer(session.UserID) {
			return ErrOwnProposal
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Decide: refused for booking=%d user=%d: %v", bookingID, session.UserID, err)
		return err
	}
	defer release()

	body := &models.DecisionRequest{Approve: approve, Reason: reason}
	if err := s.api.Post(ctx, fmt.Sprintf("/bookings/%d/decision", bookingID), body, nil); err != nil {
		s.log.Error("Decide: backend call failed for booking=%d: %v", bookingID, err)
		return fmt.Errorf("decide booking: %w", err)
	}

	if approve {
		s.transition(session.UserID, bookingID, domain.StatusApproved, nil)
		s.log.Info("Decide: booking=%d approved by user=%d", bookingID, session.UserID)
		return nil
	}

	recorded := domain.DefaultRejectReason
	if reason != nil && *reason != "" {
		recorded = *reason
	}
	s.transition(session.UserID, bookingID, domain.StatusRejected, &recorded)
	s.log.Info("Decide: booking=%d rejected by user=%d", bookingID, session.UserID)
	return nil
}

// Cancel withdraws a pending booking. Valid only from PENDING and only for
// the proposer.
func (s *Service) Cancel(ctx context.Context, session *domain.Session, bookingID int64) error {
	release, err := s.acquire(session.UserID, bookingID, func(b *domain.Booking) error {
		if !b.CanBeCancelled() {
			return ErrCannotCancel
		}
		if !b.IsProposer(session.UserID) {
			return ErrNotProposer
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Cancel: refused for booking=%d user=%d: %v", bookingID, session.UserID, err)
		return err
	}
	defer release()

	if err := s.api.Post(ctx, fmt.Sprintf("/bookings/%d/cancel", bookingID), struct{}{}, nil); err != nil {
		s.log.Error("Cancel: backend call failed for booking=%d: %v", bookingID, err)
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.transition(session.UserID, bookingID, domain.StatusCancelled, nil)
	s.log.Info("Cancel: booking=%d cancelled by user=%d", bookingID, session.UserID)
	return nil
}

// PendingCount returns the number of bookings awaiting the user's decision:
// PENDING bookings the user did not propose. Used for notification badges.
// The cached list is used when present; otherwise it is fetched first.
func (s *Service) PendingCount(ctx context.Context, session *domain.Session) (int, error) {
	s.mu.Lock()
	if cached, ok := s.cache[session.UserID]; ok {
		count := PendingCount(cached, session.UserID)
		s.mu.Unlock()
		return count, nil
	}
	s.mu.Unlock()

	fetched, err := s.ListMine(ctx, session, nil)
	if err != nil {
		return 0, err
	}

	return PendingCount(fetched, session.UserID), nil
}

// acquire takes the in-flight guard for a booking id after running the
// local pre-check against the cached copy, if any. When the booking is not
// cached (fresh process, other tab) the pre-check is skipped and the
// backend stays the enforcer. The returned release func must be called once
// the mutation settles, success or not.
func (s *Service) acquire(userID, bookingID int64, check func(*domain.Booking) error) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[bookingID]; busy {
		return nil, ErrAlreadyInFlight
	}

	if cached := s.cachedLocked(userID, bookingID); cached != nil {
		if err := check(cached); err != nil {
			return nil, err
		}
	}

	s.inflight[bookingID] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.inflight, bookingID)
		s.mu.Unlock()
	}, nil
}

// transition applies a confirmed status change to the cached copy. Only
// called after the backend reported success; a reconciling ListMine remains
// the safety net if another session raced us.
func (s *Service) transition(userID, bookingID int64, status domain.BookingStatus, rejectReason *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking := s.cachedLocked(userID, bookingID); booking != nil {
		booking.Status = status
		booking.RejectReason = rejectReason
	}
}

func (s *Service) cachedLocked(userID, bookingID int64) *domain.Booking {
	for _, booking := range s.cache[userID] {
		if booking.ID == bookingID {
			return booking
		}
	}
	return nil
}

// cloneBookings copies each booking so the cache never aliases a slice
// returned to a caller. Mutations replace whole fields, so a per-entry
// struct copy is enough.
func cloneBookings(list []*domain.Booking) []*domain.Booking {
	cloned := make([]*domain.Booking, len(list))
	for i, booking := range list {
		b := *booking
		cloned[i] = &b
	}
	return cloned
}

func validatePropose(req *models.ProposeBookingRequest) error {
	if req.TargetUserID <= 0 {
		return fmt.Errorf("%w: target user id must be positive", ErrInvalidInput)
	}
	if req.TargetRole != domain.RoleMentor && req.TargetRole != domain.RoleMentee {
		return fmt.Errorf("%w: target role must be mentor or mentee", ErrInvalidInput)
	}
	if req.PreferredTime == "" {
		return fmt.Errorf("%w: preferred time is required", ErrInvalidInput)
	}
	return nil
}
