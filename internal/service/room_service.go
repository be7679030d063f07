package service

import (
	"context"
	"errors"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/lifecycle"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
	"gorm.io/gorm"
)

type RoomService interface {
	Transition(ctx context.Context, id uint, target models.RoomStatus) (*models.Room, error)
	Get(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context, status *models.RoomStatus) ([]models.Room, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
	db       *gorm.DB
	notifier Notifier
}

func NewRoomService(roomRepo repository.RoomRepository, db *gorm.DB, notifier Notifier) RoomService {
	return &roomService{roomRepo: roomRepo, db: db, notifier: notifier}
}

// Transition covers the housekeeping and maintenance moves that are not
// driven by a reservation: cleaning to available, in and out of
// maintenance. Same locking discipline as reservation transitions.
func (s *roomService) Transition(ctx context.Context, id uint, target models.RoomStatus) (*models.Room, error) {
	var result *models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := lifecycle.CheckRoom(room.Status, target); err != nil {
			return err
		}
		if err := s.roomRepo.UpdateStatusVersioned(ctx, tx, id, target, room.Version); err != nil {
			return err
		}

		room.Status = target
		room.Version++
		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Publish("room."+string(target), result)
	}
	return result, nil
}

func (s *roomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) List(ctx context.Context, status *models.RoomStatus) ([]models.Room, error) {
	return s.roomRepo.List(ctx, status)
}
