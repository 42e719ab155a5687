package booking

import (
	"context"
	"errors"
	"time"

	"azura/models"
	"azura/services/availability"
	"azura/services/intent"
)

// fakeBookingRepo is an in-memory BookingRepository with the same
// status-guarded cancel semantics as the Mongo implementation.
type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByIDForUser(ctx context.Context, id, userID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CancelOwned(ctx context.Context, id, userID, reason string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID || b.Status != models.StatusConfirmed {
		return nil, nil
	}
	b.Status = models.StatusCancelled
	if b.Details == nil {
		b.Details = map[string]any{}
	}
	b.Details["cancellation_reason"] = reason
	copied := *b
	return &copied, nil
}

type fakeActivityRepo struct {
	entries   []*models.ActivityLog
	appendErr error
}

func (r *fakeActivityRepo) Append(ctx context.Context, entry *models.ActivityLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fakeChecker struct {
	result availability.Result
	err    error
}

func (c *fakeChecker) CheckAvailability(ctx context.Context, bookingType, location string, date time.Time) (availability.Result, error) {
	return c.result, c.err
}

type fakeNotifier struct {
	confirmed    []*models.Booking
	cancelled    []*models.Booking
	confirmedErr error
	cancelledErr error
}

func (n *fakeNotifier) NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	if n.confirmedErr != nil {
		return n.confirmedErr
	}
	n.confirmed = append(n.confirmed, booking)
	return nil
}

func (n *fakeNotifier) NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error {
	if n.cancelledErr != nil {
		return n.cancelledErr
	}
	n.cancelled = append(n.cancelled, booking)
	return nil
}

type fakeDispatcher struct {
	dispatched  []models.Booking
	dispatchErr error
}

func (d *fakeDispatcher) DispatchConfirmation(booking models.Booking) error {
	if d.dispatchErr != nil {
		return d.dispatchErr
	}
	d.dispatched = append(d.dispatched, booking)
	return nil
}

var errStorageDown = errors.New("storage down")

var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

// testService wires the engine with fakes; tweak the fakes per test case.
func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeActivityRepo, *fakeChecker, *fakeNotifier, *fakeDispatcher) {
	repo := newFakeBookingRepo()
	activity := &fakeActivityRepo{}
	checker := &fakeChecker{result: availability.Result{Available: true}}
	notifier := &fakeNotifier{}
	dispatcher := &fakeDispatcher{}

	svc := &DefaultBookingService{
		Repo:         repo,
		ActivityRepo: activity,
		Availability: checker,
		Notifier:     notifier,
		Voice:        dispatcher,
		Intent:       intent.NewExtractorWithClock("Marbella", func() time.Time { return testNow }),
	}
	return svc, repo, activity, checker, notifier, dispatcher
}
