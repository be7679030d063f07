package service

import (
	"context"
	"errors"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/lifecycle"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrNoRoomAvailable     = errors.New("no available room in the requested category")
)

type ReservationService interface {
	Create(ctx context.Context, in pricing.QuoteInput) (*models.Reservation, error)
	Transition(ctx context.Context, id string, target models.ReservationStatus) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
}

type reservationService struct {
	resRepo  repository.ReservationRepository
	roomRepo repository.RoomRepository
	catalog  repository.CatalogRepository
	engine   *pricing.Engine
	notifier Notifier
}

func NewReservationService(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	catalog repository.CatalogRepository,
	engine *pricing.Engine,
	notifier Notifier,
) ReservationService {
	return &reservationService{
		resRepo:  resRepo,
		roomRepo: roomRepo,
		catalog:  catalog,
		engine:   engine,
		notifier: notifier,
	}
}

// Create prices the stay, binds it to a free room of the requested
// category and stores it as pending. The room lock serializes concurrent
// bookings over the same pool; the room itself stays available until
// check-in.
func (s *reservationService) Create(ctx context.Context, in pricing.QuoteInput) (*models.Reservation, error) {
	rates, err := s.catalog.RateTable(ctx)
	if err != nil {
		return nil, err
	}
	addOns, err := s.catalog.AddOnCatalog(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.Quote(in, rates, addOns)
	if err != nil {
		return nil, err
	}

	var result *models.Reservation
	err = s.resRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindAvailableByCategoryForUpdate(ctx, tx, string(in.Stay.Category))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoRoomAvailable
			}
			return err
		}

		res := &models.Reservation{
			ID:       uuid.NewString(),
			RoomID:   room.ID,
			Status:   models.StatusPending,
			CheckIn:  in.Stay.CheckIn,
			CheckOut: in.Stay.CheckOut,
			Category: string(in.Stay.Category),
			Rooms:    in.Stay.Rooms,
			Adults:   in.Stay.Adults,
			Children: in.Stay.Children,
			Payment:  string(in.Payment),
			Quote:    *quote,
		}
		if err := s.resRepo.Create(ctx, tx, res); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Publish("reservation.pending", result)
	}
	return result, nil
}

// Transition moves a reservation along the lifecycle. The row lock plus
// the versioned update guarantee that of two concurrent requests from
// the same source status, the second observes the new state and fails.
// Check-in occupies the bound room; check-out releases it to cleaning.
func (s *reservationService) Transition(ctx context.Context, id string, target models.ReservationStatus) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.resRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := s.resRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := lifecycle.CheckReservation(res.Status, target); err != nil {
			return err
		}

		switch target {
		case models.StatusCheckedIn:
			if err := s.moveRoom(ctx, tx, res.RoomID, models.RoomOccupied); err != nil {
				return err
			}
		case models.StatusCheckedOut:
			if err := s.moveRoom(ctx, tx, res.RoomID, models.RoomCleaning); err != nil {
				return err
			}
		}

		if err := s.resRepo.UpdateStatusVersioned(ctx, tx, id, target, res.Version); err != nil {
			return err
		}

		res.Status = target
		res.Version++
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Publish("reservation."+string(target), result)
	}
	return result, nil
}

func (s *reservationService) moveRoom(ctx context.Context, tx *gorm.DB, roomID uint, target models.RoomStatus) error {
	room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	if err := lifecycle.CheckRoom(room.Status, target); err != nil {
		return err
	}
	return s.roomRepo.UpdateStatusVersioned(ctx, tx, roomID, target, room.Version)
}

func (s *reservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.resRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *reservationService) List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	return s.resRepo.List(ctx, status)
}
