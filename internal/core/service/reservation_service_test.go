package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

var (
	adminViewer = domain.Viewer{Username: domain.AdminUsername, Role: domain.RoleAdmin}
	anonViewer  = domain.Viewer{Role: domain.RoleAnonymous}
)

func clientViewer(username string) domain.Viewer {
	return domain.Viewer{Username: username, Role: domain.RoleClient}
}

func newReservationSvc(t *testing.T, store *stubCollectionStore, events *stubPublisher) *ReservationService {
	t.Helper()
	var pub ports.EventPublisher
	if events != nil {
		pub = events
	}
	svc := NewReservationService(store, domain.NewOccasionSet(), pub, zerolog.Nop())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc
}

func storedReservations(t *testing.T, store *stubCollectionStore) []reservationRecord {
	t.Helper()
	var records []reservationRecord
	if err := json.Unmarshal(store.payloads[ports.CollectionReservations], &records); err != nil {
		t.Fatalf("decode reservations: %v", err)
	}
	return records
}

func TestReservationService_Create_Success(t *testing.T) {
	store := newStubCollectionStore()
	events := &stubPublisher{}
	svc := newReservationSvc(t, store, events)

	before := time.Now().UnixMilli()
	d := validDraft()
	d.Occasion = "CASAMENTO"
	d.EventType = "package"
	r, err := svc.Create(context.Background(), "joao", d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if r.ID < before {
		t.Errorf("id %d should derive from the creation instant (>= %d)", r.ID, before)
	}
	if r.Owner != "joao" || r.Occasion != "casamento" || r.EventType != domain.EventTypePackage {
		t.Errorf("unexpected reservation %+v", r)
	}

	records := storedReservations(t, store)
	if len(records) != 1 || records[0].ID != r.ID || records[0].EventType != "Pacote" {
		t.Fatalf("collection not persisted: %+v", records)
	}
	if got := events.types(); len(got) != 1 || got[0] != domain.EventReservationCreated {
		t.Errorf("expected one created event, got %v", got)
	}
}

func TestReservationService_Create_IDsStrictlyIncrease(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), nil)

	var last int64
	for i := 0; i < 50; i++ {
		r, err := svc.Create(context.Background(), "joao", validDraft())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if r.ID <= last {
			t.Fatalf("id %d not greater than previous %d", r.ID, last)
		}
		last = r.ID
	}
}

func TestReservationService_Create_Validation(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), nil)

	cases := map[string]func(*domain.ReservationDraft){
		"zero guests":      func(d *domain.ReservationDraft) { d.GuestCount = 0 },
		"missing name":     func(d *domain.ReservationDraft) { d.Name = " " },
		"missing phone":    func(d *domain.ReservationDraft) { d.Phone = "" },
		"bad date":         func(d *domain.ReservationDraft) { d.Date = "01/05/2030" },
		"bad time":         func(d *domain.ReservationDraft) { d.Time = "7pm" },
		"unknown occasion": func(d *domain.ReservationDraft) { d.Occasion = "formatura" },
		"unknown type":     func(d *domain.ReservationDraft) { d.EventType = "Premium" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := validDraft()
			mutate(&d)
			if _, err := svc.Create(context.Background(), "joao", d); !errors.Is(err, domain.ErrInvalidReservation) {
				t.Errorf("expected ErrInvalidReservation, got %v", err)
			}
		})
	}

	if list, _ := svc.ListFor(context.Background(), adminViewer, ports.OrderInsertion); len(list) != 0 {
		t.Errorf("invalid drafts must not be stored, got %d", len(list))
	}
}

func TestReservationService_Update_PreservesIDAndOwner(t *testing.T) {
	store := newStubCollectionStore()
	events := &stubPublisher{}
	svc := newReservationSvc(t, store, events)
	ctx := context.Background()

	r, _ := svc.Create(ctx, "joao", validDraft())

	d := validDraft()
	d.GuestCount = 25
	d.Date = "2030-06-01"
	updated, err := svc.Update(ctx, r.ID, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != r.ID || updated.Owner != "joao" || updated.GuestCount != 25 || updated.Date != "2030-06-01" {
		t.Errorf("unexpected update result %+v", updated)
	}

	records := storedReservations(t, store)
	if len(records) != 1 || records[0].GuestCount != 25 {
		t.Errorf("update not persisted: %+v", records)
	}
	if got := events.types(); len(got) != 2 || got[1] != domain.EventReservationUpdated {
		t.Errorf("expected created+updated events, got %v", got)
	}
}

func TestReservationService_Update_UnknownID(t *testing.T) {
	store := newStubCollectionStore()
	svc := newReservationSvc(t, store, nil)
	saves := store.saves

	if _, err := svc.Update(context.Background(), 42, validDraft()); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
	if store.saves != saves {
		t.Error("unknown update must not write the collection")
	}
}

func TestReservationService_Cancel_TwiceIsNotFound(t *testing.T) {
	store := newStubCollectionStore()
	svc := newReservationSvc(t, store, nil)
	ctx := context.Background()

	r, _ := svc.Create(ctx, "joao", validDraft())
	keep, _ := svc.Create(ctx, "joao", validDraft())

	if err := svc.Cancel(ctx, r.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Cancel(ctx, r.ID); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("second cancel: expected ErrReservationNotFound, got %v", err)
	}

	records := storedReservations(t, store)
	if len(records) != 1 || records[0].ID != keep.ID {
		t.Errorf("expected only %d left, got %+v", keep.ID, records)
	}
}

func TestReservationService_ListFor_RoleScoping(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, "joao", validDraft())
	_, _ = svc.Create(ctx, "maria", validDraft())

	all, err := svc.ListFor(ctx, adminViewer, ports.OrderInsertion)
	if err != nil || len(all) != 2 {
		t.Fatalf("admin should see 2, got %d (%v)", len(all), err)
	}

	own, err := svc.ListFor(ctx, clientViewer("joao"), ports.OrderInsertion)
	if err != nil || len(own) != 1 || own[0].ID != a.ID {
		t.Fatalf("client should see only own reservation, got %+v (%v)", own, err)
	}

	none, err := svc.ListFor(ctx, clientViewer("pedro"), ports.OrderDateDesc)
	if err != nil || len(none) != 0 {
		t.Errorf("client without bookings should see none, got %d (%v)", len(none), err)
	}

	if _, err := svc.ListFor(ctx, anonViewer, ports.OrderInsertion); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("anonymous should be forbidden, got %v", err)
	}
}

func TestReservationService_ListFor_DateDescIsStable(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), nil)
	ctx := context.Background()

	dates := []string{"2030-01-10", "2030-03-01", "2030-01-10", "2029-12-31"}
	var ids []int64
	for _, date := range dates {
		d := validDraft()
		d.Date = date
		r, err := svc.Create(ctx, "joao", d)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, r.ID)
	}

	list, _ := svc.ListFor(ctx, adminViewer, ports.OrderDateDesc)
	want := []int64{ids[1], ids[0], ids[2], ids[3]}
	for i, r := range list {
		if r.ID != want[i] {
			t.Fatalf("position %d: got %d, want %d", i, r.ID, want[i])
		}
	}

	insertion, _ := svc.ListFor(ctx, adminViewer, ports.OrderInsertion)
	for i, r := range insertion {
		if r.ID != ids[i] {
			t.Fatalf("insertion position %d: got %d, want %d", i, r.ID, ids[i])
		}
	}
}

func TestReservationService_GetFor_HidesForeignReservations(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), nil)
	ctx := context.Background()

	r, _ := svc.Create(ctx, "joao", validDraft())

	if _, err := svc.GetFor(ctx, clientViewer("joao"), r.ID); err != nil {
		t.Errorf("owner should see reservation: %v", err)
	}
	if _, err := svc.GetFor(ctx, adminViewer, r.ID); err != nil {
		t.Errorf("admin should see reservation: %v", err)
	}
	if _, err := svc.GetFor(ctx, clientViewer("maria"), r.ID); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Errorf("other client: expected ErrReservationNotFound, got %v", err)
	}
}

func TestReservationService_Load_RestoresCollectionAndIDs(t *testing.T) {
	store := newStubCollectionStore()
	future := time.Now().Add(24 * time.Hour).UnixMilli()
	store.payloads[ports.CollectionReservations] = []byte(`[{"id":` + itoa(future) +
		`,"owner":"joao","name":"Ana","phone":"1","guestCount":4,"date":"2030-01-01","time":"20:00","occasion":"batismo","eventType":"Comum"}]`)

	svc := newReservationSvc(t, store, nil)
	ctx := context.Background()

	list, _ := svc.ListFor(ctx, adminViewer, ports.OrderInsertion)
	if len(list) != 1 || list[0].Owner != "joao" || list[0].GuestCount != 4 {
		t.Fatalf("unexpected loaded collection %+v", list)
	}

	r, _ := svc.Create(ctx, "joao", validDraft())
	if r.ID <= future {
		t.Errorf("new id %d must be greater than stored id %d", r.ID, future)
	}
}

func TestReservationService_StorageFailureDegradesButKeepsMemory(t *testing.T) {
	store := newStubCollectionStore()
	svc := newReservationSvc(t, store, nil)
	ctx := context.Background()

	store.saveErr = errBoom
	r, err := svc.Create(ctx, "joao", validDraft())
	if err != nil {
		t.Fatalf("storage failure must not abort create: %v", err)
	}
	if !svc.Degraded() {
		t.Error("service should report degraded storage")
	}
	if _, err := svc.GetFor(ctx, adminViewer, r.ID); err != nil {
		t.Errorf("reservation should stay in memory: %v", err)
	}

	store.saveErr = nil
	if _, err := svc.Create(ctx, "joao", validDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if svc.Degraded() {
		t.Error("successful write should clear the degraded flag")
	}
	if got := len(storedReservations(t, store)); got != 2 {
		t.Errorf("next write should persist the whole collection, got %d", got)
	}
}

func TestReservationService_PublishFailureIsNonFatal(t *testing.T) {
	svc := newReservationSvc(t, newStubCollectionStore(), &stubPublisher{err: errBoom})

	if _, err := svc.Create(context.Background(), "joao", validDraft()); err != nil {
		t.Fatalf("publish failure must not abort create: %v", err)
	}
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
