package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lillia/models"
	"lillia/services/deeplink"
	"lillia/services/scheduling"
)

// memStore keeps sessions as serialized JSON so tests exercise the same
// round-trip the Redis store performs.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Save(ctx context.Context, session *models.WizardSession) error {
	session.LastUpdatedAt = time.Now()
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = raw
	return nil
}

func (s *memStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	s.mu.Lock()
	raw, ok := s.data[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// fakeNotifier accepts one fixed code and records every send.
type fakeNotifier struct {
	mu          sync.Mutex
	sent        []string
	verifyCalls int
	acceptCode  string
	sendErr     error
	onSend      func()
}

func (n *fakeNotifier) SendCode(ctx context.Context, email string) error {
	if n.onSend != nil {
		n.onSend()
	}
	if n.sendErr != nil {
		return n.sendErr
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, email)
	return nil
}

func (n *fakeNotifier) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	n.mu.Lock()
	n.verifyCalls++
	n.mu.Unlock()
	return code == n.acceptCode, nil
}

func (n *fakeNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// fakeProfiles stores created profiles in memory.
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfiles) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfiles) GetByID(id string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("profile %s not found", id)
}

func (r *fakeProfiles) GetByEmail(email string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Details.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfiles) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
	return nil
}

type fakeAssigner struct {
	nutritionist models.Nutritionist
}

func (a *fakeAssigner) Assigned(ctx context.Context) (models.Nutritionist, error) {
	return a.nutritionist, nil
}

// fakeBackend serves the full candidate window deterministically and
// records bookings.
type fakeBackend struct {
	mu      sync.Mutex
	booked  []*models.Appointment
	emails  []string
	bookErr error
}

func (b *fakeBackend) Availability(ctx context.Context, from time.Time, days int) ([]models.SlotDay, error) {
	return scheduling.CandidateSlots(from, days), nil
}

func (b *fakeBackend) Book(ctx context.Context, appointment *models.Appointment) error {
	if b.bookErr != nil {
		return b.bookErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.booked = append(b.booked, appointment)
	return nil
}

func (b *fakeBackend) SendConfirmationEmail(ctx context.Context, appointmentID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.emails = append(b.emails, appointmentID)
	return nil
}

// testNow is a Monday so the slot window starting the next day has
// weekday slots immediately.
var testNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

type testRig struct {
	svc      *DefaultWizardService
	store    *memStore
	notifier *fakeNotifier
	profiles *fakeProfiles
	backend  *fakeBackend
	now      time.Time
}

func newTestRig() *testRig {
	rig := &testRig{
		store:    newMemStore(),
		notifier: &fakeNotifier{acceptCode: "123456"},
		profiles: newFakeProfiles(),
		backend:  &fakeBackend{},
		now:      testNow,
	}
	rig.svc = &DefaultWizardService{
		Store:    rig.store,
		Notifier: rig.notifier,
		Profiles: rig.profiles,
		Assigner: &fakeAssigner{nutritionist: models.Nutritionist{ID: "NUT_001", Name: "Dr. Sarah Johnson"}},
		Booking:  rig.backend,
		Links:    deeplink.Generator{Scheme: "lillia", Source: "web_onboarding"},
		Timers:   NewTimerRegistry(60),
		Now:      func() time.Time { return rig.now },
	}
	return rig
}

func validDetails() DetailsInput {
	return DetailsInput{
		FullName:     "Asha Rao",
		MobileNumber: "+91 98765 43210",
		Email:        "asha@example.com",
		Height:       "170",
		Weight:       "70",
		HbA1c:        "6.5",
	}
}
