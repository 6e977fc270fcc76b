package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository interfaces.

type fakeAddOnRepo struct {
	addOns map[uuid.UUID]*entity.AddOn
	err    error
}

func newFakeAddOnRepo(addOns ...*entity.AddOn) *fakeAddOnRepo {
	repo := &fakeAddOnRepo{addOns: make(map[uuid.UUID]*entity.AddOn)}
	for _, a := range addOns {
		repo.addOns[a.ID] = a
	}
	return repo
}

func (f *fakeAddOnRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.addOns[id], nil
}

func (f *fakeAddOnRepo) ListActive(ctx context.Context) ([]*entity.AddOn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var active []*entity.AddOn
	for _, a := range f.addOns {
		if a.IsActive {
			active = append(active, a)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].DisplayOrder < active[j].DisplayOrder })
	return active, nil
}

type fakeReservationRepo struct {
	nextID       int64
	reservations map[int64]*entity.Reservation
	createCalls  int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		nextID:       1,
		reservations: make(map[int64]*entity.Reservation),
	}
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	f.createCalls++
	reservation.ID = f.nextID
	reservation.CreatedAt = time.Now()
	f.nextID++
	stored := *reservation
	f.reservations[reservation.ID] = &stored
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	var all []*entity.Reservation
	for _, r := range f.reservations {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeReservationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.reservations)), nil
}

func (f *fakeReservationRepo) UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (bool, error) {
	r, ok := f.reservations[id]
	if !ok || r.PaymentStatus != entity.PaymentStatusPending {
		return false, nil
	}
	r.PaymentStatus = status
	return true, nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	if f.vehicles == nil {
		return nil, nil
	}
	return f.vehicles[id], nil
}

type fakeTourRepo struct {
	tours map[uuid.UUID]*entity.Tour
}

func (f *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	if f.tours == nil {
		return nil, nil
	}
	return f.tours[id], nil
}

func newTestRepository(reservations *fakeReservationRepo, addOns *fakeAddOnRepo) *repository.Repository {
	return &repository.Repository{
		Reservation: reservations,
		AddOn:       addOns,
		Vehicle:     &fakeVehicleRepo{},
		Tour:        &fakeTourRepo{},
	}
}

var errCatalogDown = fmt.Errorf("catalog unavailable")
