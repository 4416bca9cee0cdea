package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkup-team/linkup-gateway/internal/domain"
	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
	"github.com/linkup-team/linkup-gateway/internal/service/bookings/models"
)

// --- Mock APIClient ---

type mockAPI struct {
	getFn  func(ctx context.Context, path string, out any) error
	postFn func(ctx context.Context, path string, body any, out any) error
}

func (m *mockAPI) Get(ctx context.Context, path string, out any, opts ...linkupapi.RequestOption) error {
	return m.getFn(ctx, path, out)
}

func (m *mockAPI) Post(ctx context.Context, path string, body any, out any, opts ...linkupapi.RequestOption) error {
	return m.postFn(ctx, path, body, out)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Fixtures ---

const (
	viewerID = int64(10) // the session user, a mentor
	otherID  = int64(20)
)

func mentorSession() *domain.Session {
	return &domain.Session{
		ID:       "sess-1",
		UserID:   viewerID,
		Nickname: "mina",
		Role:     domain.RoleMentor,
		Token:    "tok",
	}
}

func wireBooking(id int64, status string, proposerID int64) models.BookingPayload {
	mentor := models.ParticipantPayload{ID: viewerID, Nickname: "mina"}
	student := models.ParticipantPayload{ID: otherID, Nickname: "jun"}

	proposer := student
	if proposerID == viewerID {
		proposer = mentor
	}

	return models.BookingPayload{
		ID:       id,
		Status:   status,
		Student:  student,
		Mentor:   mentor,
		Proposer: proposer,
		Note:     "coffee?",
		Time:     "2026-09-01 10:00",
	}
}

func serveList(t *testing.T, out any, payloads ...models.BookingPayload) {
	t.Helper()
	target, ok := out.(*[]models.BookingPayload)
	require.True(t, ok, "unexpected out type %T", out)
	*target = payloads
}

// seeded returns a service whose cache already holds the given bookings for
// the viewer, plus a pointer to the posted paths for assertions.
func seeded(t *testing.T, payloads ...models.BookingPayload) (*Service, *[]string) {
	t.Helper()

	var posted []string
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, payloads...)
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			posted = append(posted, path)
			return nil
		},
	}

	svc := NewService(api, nopLogger{})
	_, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)

	return svc, &posted
}

// --- Propose ---

func TestPropose_Success(t *testing.T) {
	var (
		gotPath string
		gotBody *models.ProposeRequest
	)
	api := &mockAPI{
		postFn: func(ctx context.Context, path string, body any, out any) error {
			gotPath = path
			gotBody = body.(*models.ProposeRequest)
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	err := svc.Propose(context.Background(), mentorSession(), &models.ProposeBookingRequest{
		TargetUserID:  otherID,
		TargetRole:    domain.RoleMentee,
		Note:          "hi",
		PreferredTime: "2026-09-01 10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "/bookings/propose", gotPath)
	require.NotNil(t, gotBody.StudentUserID)
	assert.Equal(t, otherID, *gotBody.StudentUserID)
	assert.Nil(t, gotBody.MentorUserID)
	assert.Equal(t, "hi", gotBody.Note)
	assert.Equal(t, "2026-09-01 10:00", gotBody.Time)
}

func TestPropose_TargetsMentorByRole(t *testing.T) {
	var gotBody *models.ProposeRequest
	api := &mockAPI{
		postFn: func(ctx context.Context, path string, body any, out any) error {
			gotBody = body.(*models.ProposeRequest)
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	err := svc.Propose(context.Background(), mentorSession(), &models.ProposeBookingRequest{
		TargetUserID:  otherID,
		TargetRole:    domain.RoleMentor,
		PreferredTime: "2026-09-01 10:00",
	})

	require.NoError(t, err)
	require.NotNil(t, gotBody.MentorUserID)
	assert.Nil(t, gotBody.StudentUserID)
}

func TestPropose_Validation(t *testing.T) {
	called := false
	api := &mockAPI{
		postFn: func(ctx context.Context, path string, body any, out any) error {
			called = true
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	tests := []struct {
		name string
		req  *models.ProposeBookingRequest
	}{
		{"zero target", &models.ProposeBookingRequest{TargetRole: domain.RoleMentor, PreferredTime: "t"}},
		{"bad role", &models.ProposeBookingRequest{TargetUserID: 1, TargetRole: "admin", PreferredTime: "t"}},
		{"missing time", &models.ProposeBookingRequest{TargetUserID: 1, TargetRole: domain.RoleMentor}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Propose(context.Background(), mentorSession(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.False(t, called, "invalid proposals must never reach the backend")
}

func TestPropose_BackendFailureSurfaces(t *testing.T) {
	api := &mockAPI{
		postFn: func(ctx context.Context, path string, body any, out any) error {
			return &linkupapi.HTTPError{Status: 409, Message: "slot taken"}
		},
	}
	svc := NewService(api, nopLogger{})

	err := svc.Propose(context.Background(), mentorSession(), &models.ProposeBookingRequest{
		TargetUserID:  otherID,
		TargetRole:    domain.RoleMentee,
		PreferredTime: "2026-09-01 10:00",
	})

	var httpErr *linkupapi.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "slot taken", httpErr.Message)
}

// --- ListMine ---

func TestListMine_MapsAndCaches(t *testing.T) {
	svc, _ := seeded(t,
		wireBooking(1, "PENDING", otherID),
		wireBooking(2, "ACCEPTED", viewerID),
	)

	count, err := svc.PendingCount(context.Background(), mentorSession())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListMine_NormalizesLegacyStatus(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "ACCEPTED", otherID))
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	list, err := svc.ListMine(context.Background(), mentorSession(), nil)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusApproved, list[0].Status)
}

func TestListMine_ForwardsStatusFilter(t *testing.T) {
	var gotPath string
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			gotPath = path
			serveList(t, out)
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	status := domain.StatusPending
	_, err := svc.ListMine(context.Background(), mentorSession(), &status)

	require.NoError(t, err)
	assert.Equal(t, "/bookings/me?status=PENDING", gotPath)
}

func TestListMine_UnknownStatusRejected(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "DONE", otherID))
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	_, err := svc.ListMine(context.Background(), mentorSession(), nil)

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestListMine_RefetchIsIdempotent(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "PENDING", otherID))
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	first, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)
	second, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Status, second[0].Status)
}

// --- Approve / Reject ---

func TestApprove_TransitionsCachedCopy(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "PENDING", otherID))

	err := svc.Approve(context.Background(), mentorSession(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"/bookings/1/decision"}, *posted)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	require.NotNil(t, cached)
	assert.Equal(t, domain.StatusApproved, cached.Status)
}

func TestReject_RecordsReason(t *testing.T) {
	svc, _ := seeded(t, wireBooking(1, "PENDING", otherID))

	reason := "busy that day"
	err := svc.Reject(context.Background(), mentorSession(), 1, &reason)

	require.NoError(t, err)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	require.NotNil(t, cached)
	assert.Equal(t, domain.StatusRejected, cached.Status)
	require.NotNil(t, cached.RejectReason)
	assert.Equal(t, "busy that day", *cached.RejectReason)
}

func TestReject_MissingReasonGetsPlaceholder(t *testing.T) {
	svc, _ := seeded(t, wireBooking(1, "PENDING", otherID))

	err := svc.Reject(context.Background(), mentorSession(), 1, nil)

	require.NoError(t, err)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	require.NotNil(t, cached.RejectReason)
	assert.Equal(t, domain.DefaultRejectReason, *cached.RejectReason)
}

func TestApprove_AlreadyDecided(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "APPROVED", otherID))

	err := svc.Approve(context.Background(), mentorSession(), 1)

	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Empty(t, *posted, "a settled booking must not reach the backend")
}

func TestApprove_OwnProposalForbidden(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "PENDING", viewerID))

	err := svc.Approve(context.Background(), mentorSession(), 1)

	assert.ErrorIs(t, err, ErrOwnProposal)
	assert.Empty(t, *posted)
}

func TestApprove_BackendFailureLeavesStateUntouched(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "PENDING", otherID))
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			return &linkupapi.HTTPError{Status: 500, Message: "boom"}
		},
	}
	svc := NewService(api, nopLogger{})
	_, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)

	err = svc.Approve(context.Background(), mentorSession(), 1)
	require.Error(t, err)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	assert.Equal(t, domain.StatusPending, cached.Status)

	// the guard is released, a retry goes through
	err = svc.Approve(context.Background(), mentorSession(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyInFlight)
}

func TestApprove_UncachedBookingDefersToBackend(t *testing.T) {
	var posted []string
	api := &mockAPI{
		postFn: func(ctx context.Context, path string, body any, out any) error {
			posted = append(posted, path)
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	err := svc.Approve(context.Background(), mentorSession(), 42)

	require.NoError(t, err)
	assert.Equal(t, []string{"/bookings/42/decision"}, posted)
}

// --- Cancel ---

func TestCancel_ProposerOnly(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "PENDING", otherID))

	err := svc.Cancel(context.Background(), mentorSession(), 1)

	assert.ErrorIs(t, err, ErrNotProposer)
	assert.Empty(t, *posted)
}

func TestCancel_Success(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "PENDING", viewerID))

	err := svc.Cancel(context.Background(), mentorSession(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"/bookings/1/cancel"}, *posted)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	assert.Equal(t, domain.StatusCancelled, cached.Status)
}

func TestCancel_TerminalBooking(t *testing.T) {
	svc, posted := seeded(t, wireBooking(1, "REJECTED", viewerID))

	err := svc.Cancel(context.Background(), mentorSession(), 1)

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, *posted)
}

func TestApprove_DoesNotMutateReturnedList(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "PENDING", otherID))
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	list, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Approve(context.Background(), mentorSession(), 1))

	// the caller's list is a snapshot; only the cached copy transitions
	assert.Equal(t, domain.StatusPending, list[0].Status)

	svc.mu.Lock()
	cached := svc.cachedLocked(viewerID, 1)
	svc.mu.Unlock()
	require.NotNil(t, cached)
	assert.Equal(t, domain.StatusApproved, cached.Status)
}

func TestListMine_ReadersSafeDuringDecision(t *testing.T) {
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "PENDING", otherID))
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	list, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// keep reading the returned list while a decision lands
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for i := 0; i < 1000; i++ {
			_ = list[0].Status
			_ = list[0].RejectReason
		}
	}()

	reason := "busy"
	require.NoError(t, svc.Reject(context.Background(), mentorSession(), 1, &reason))
	<-readerDone

	assert.Equal(t, domain.StatusPending, list[0].Status)
	assert.Nil(t, list[0].RejectReason)
}

// --- Concurrency guard ---

func TestDecide_ConcurrentMutationRefused(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	var (
		mu    sync.Mutex
		posts int
	)
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			serveList(t, out, wireBooking(1, "PENDING", otherID))
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			mu.Lock()
			posts++
			mu.Unlock()
			close(started)
			<-release
			return nil
		},
	}
	svc := NewService(api, nopLogger{})
	_, err := svc.ListMine(context.Background(), mentorSession(), nil)
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.Approve(context.Background(), mentorSession(), 1)
	}()
	<-started

	// second mutation on the same booking while the first is in flight
	err = svc.Approve(context.Background(), mentorSession(), 1)
	assert.ErrorIs(t, err, ErrAlreadyInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, posts, "exactly one call must reach the backend")
}

// --- PendingCount ---

func TestPendingCount_FetchesWhenCold(t *testing.T) {
	gets := 0
	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			gets++
			serveList(t, out,
				wireBooking(1, "PENDING", otherID),
				wireBooking(2, "PENDING", viewerID),
				wireBooking(3, "APPROVED", otherID),
			)
			return nil
		},
	}
	svc := NewService(api, nopLogger{})

	count, err := svc.PendingCount(context.Background(), mentorSession())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "own proposals and settled bookings do not count")
	assert.Equal(t, 1, gets)

	// warm path reuses the cache
	_, err = svc.PendingCount(context.Background(), mentorSession())
	require.NoError(t, err)
	assert.Equal(t, 1, gets)
}

// --- End to end over a scripted backend ---

func TestLifecycle_ProposeListRejectList(t *testing.T) {
	var serverStatus = "PENDING"
	var serverReason *string

	api := &mockAPI{
		getFn: func(ctx context.Context, path string, out any) error {
			payload := wireBooking(1, serverStatus, otherID)
			payload.Note = "hi"
			payload.RejectReason = serverReason
			serveList(t, out, payload)
			return nil
		},
		postFn: func(ctx context.Context, path string, body any, out any) error {
			if decision, ok := body.(*models.DecisionRequest); ok {
				if decision.Approve {
					serverStatus = "APPROVED"
				} else {
					serverStatus = "REJECTED"
					serverReason = decision.Reason
				}
			}
			return nil
		},
	}
	svc := NewService(api, nopLogger{})
	session := mentorSession()

	err := svc.Propose(context.Background(), session, &models.ProposeBookingRequest{
		TargetUserID:  otherID,
		TargetRole:    domain.RoleMentee,
		Note:          "hi",
		PreferredTime: "2026-09-01 10:00",
	})
	require.NoError(t, err)

	list, err := svc.ListMine(context.Background(), session, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusPending, list[0].Status)
	assert.Equal(t, "hi", list[0].Note)

	reason := "busy"
	require.NoError(t, svc.Reject(context.Background(), session, 1, &reason))

	list, err = svc.ListMine(context.Background(), session, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusRejected, list[0].Status)
	require.NotNil(t, list[0].RejectReason)
	assert.Equal(t, "busy", *list[0].RejectReason)
}
