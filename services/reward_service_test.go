package services

import (
	"testing"

	"game-event-system/models"

	"github.com/stretchr/testify/require"
)

func TestRewardService_Create(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db)
	svc := NewRewardService(db)

	event, err := events.Create(validHuntEventInput())
	require.NoError(t, err)

	reward, err := svc.Create(CreateRewardInput{
		Name:    "100 Gold",
		Type:    models.RewardTypePoint,
		Amount:  100,
		EventID: event.ID,
	})
	require.NoError(t, err)

	found, err := svc.FindByID(reward.ID)
	require.NoError(t, err)
	require.Equal(t, models.RewardTypePoint, found.Type)

	byEvent, err := svc.FindByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, byEvent, 1)
}

func TestRewardService_Create_Invalid(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db)
	svc := NewRewardService(db)

	event, err := events.Create(validHuntEventInput())
	require.NoError(t, err)

	_, err = svc.Create(CreateRewardInput{Name: "x", Type: "GOLD", Amount: 1, EventID: event.ID})
	require.Error(t, err)

	_, err = svc.Create(CreateRewardInput{Name: "x", Type: models.RewardTypeItem, Amount: 0, EventID: event.ID})
	require.Error(t, err)

	_, err = svc.Create(CreateRewardInput{Name: "x", Type: models.RewardTypeItem, Amount: 1, EventID: "missing"})
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestRewardService_FindByID_NotFound(t *testing.T) {
	svc := NewRewardService(newTestDB(t))

	_, err := svc.FindByID("missing")
	require.ErrorIs(t, err, ErrRewardNotFound)
}
