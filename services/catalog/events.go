package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"Arcadia/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewEvent struct {
	Title       string             `json:"title" validate:"required,max=100"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"start_date" validate:"required"`
	EndDate     time.Time          `json:"end_date" validate:"required"`
	EventType   postgres.EventType `json:"event_type" validate:"enum"`
}

type EventChanges struct {
	Title       *string             `json:"title" validate:"omitnil,min=1,max=100"`
	Description *string             `json:"description"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
	EventType   *postgres.EventType `json:"event_type" validate:"omitnil,enum"`
}

// Participant is a registered user of an event.
type Participant struct {
	UserID           uint
	Name             string
	Email            string
	RegistrationDate datatypes.Date
}

func (s *Service) CreateEvent(ctx context.Context, in NewEvent) (*postgres.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := s.check(in); err != nil {
		return nil, err
	}
	event := &postgres.Event{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   dateOf(in.StartDate),
		EndDate:     dateOf(in.EndDate),
		EventType:   in.EventType,
	}
	err := s.write(ctx, "create event", func(tx *gorm.DB) error {
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id uint, in EventChanges) (*postgres.Event, error) {
	trimPtr(in.Title)
	if err := s.check(in); err != nil {
		return nil, err
	}
	var event postgres.Event
	err := s.write(ctx, "update event", func(tx *gorm.DB) error {
		found, err := utils.FindOne(tx, &event, "event_id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return errs.NotFound("event", id)
		}
		if in.Title != nil {
			event.Title = *in.Title
		}
		if in.Description != nil {
			event.Description = *in.Description
		}
		if in.StartDate != nil {
			event.StartDate = dateOf(*in.StartDate)
		}
		if in.EndDate != nil {
			event.EndDate = dateOf(*in.EndDate)
		}
		if in.EventType != nil {
			event.EventType = *in.EventType
		}
		return tx.Save(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) GetEvent(ctx context.Context, id uint) (*postgres.Event, error) {
	var event postgres.Event
	found, err := utils.FindOne(s.read(ctx), &event, "event_id = ?", id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound("event", id)
	}
	return &event, nil
}

// ListEvents returns every event, latest start first.
func (s *Service) ListEvents(ctx context.Context) ([]postgres.Event, error) {
	var events []postgres.Event
	err := s.read(ctx).Order("start_date DESC").Order("event_id DESC").Find(&events).Error
	return events, err
}

// RegisterParticipant signs a user up for an event. Registering twice fails
// with AlreadyAssociated.
func (s *Service) RegisterParticipant(ctx context.Context, userID, eventID uint) (*postgres.EventParticipation, error) {
	participation := &postgres.EventParticipation{UserID: userID, EventID: eventID, RegistrationDate: s.today()}
	err := s.write(ctx, "register participant", func(tx *gorm.DB) error {
		if err := associate(tx, participationPair(userID, eventID), participation); err != nil {
			return err
		}
		var event postgres.Event
		if err := eventRef(eventID).load(tx, &event); err != nil {
			return err
		}
		return s.logActivity(tx, userID, postgres.ActivityEventRegistration,
			fmt.Sprintf("registered for %s", event.Title))
	})
	if err != nil {
		return nil, err
	}
	return participation, nil
}

func (s *Service) RemoveParticipant(ctx context.Context, userID, eventID uint) error {
	return s.write(ctx, "remove participant", func(tx *gorm.DB) error {
		return dissociate(tx, participationPair(userID, eventID), &postgres.EventParticipation{})
	})
}

func (s *Service) ListParticipants(ctx context.Context, eventID uint) ([]Participant, error) {
	var participants []Participant
	err := s.read(ctx).
		Model(&postgres.EventParticipation{}).
		Select("users.user_id, users.name, users.email, event_participations.registration_date").
		Joins("JOIN users ON users.user_id = event_participations.user_id").
		Where("event_participations.event_id = ?", eventID).
		Order("event_participations.registration_date").Order("users.name").
		Scan(&participants).Error
	return participants, err
}

