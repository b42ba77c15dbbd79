package services

import (
	"errors"
	"testing"
	"time"

	"game-event-system/models"

	"github.com/stretchr/testify/require"
)

type fakeLogs struct {
	loginDates   []time.Time
	huntCounts   map[string]int64
	inviteeLogin bool
	err          error
}

func (f *fakeLogs) FindLoginDates(userID string, withinDays int) ([]time.Time, error) {
	return f.loginDates, f.err
}

func (f *fakeLogs) CountMonsterHunts(userID, monsterID string) (int64, error) {
	return f.huntCounts[monsterID], f.err
}

func (f *fakeLogs) HasInviteeLogin(userID string) (bool, error) {
	return f.inviteeLogin, f.err
}

var checkerNow = time.Date(2025, 5, 10, 15, 30, 0, 0, time.UTC)

func newStreakChecker(logs LogQueries) *LoginStreakChecker {
	return &LoginStreakChecker{
		Logs: logs,
		Loc:  time.UTC,
		Now:  func() time.Time { return checkerNow },
	}
}

func streakEvent(requiredDays int) *models.Event {
	return &models.Event{
		ID:            "evt-streak",
		Type:          models.EventTypeStreak,
		RequiredCount: requiredDays,
	}
}

func TestLoginStreakChecker_ConsecutiveDays(t *testing.T) {
	logins := []time.Time{
		checkerNow,
		checkerNow.AddDate(0, 0, -1),
		checkerNow.AddDate(0, 0, -2),
	}
	checker := newStreakChecker(&fakeLogs{loginDates: logins})

	ok, err := checker.IsSatisfied(streakEvent(3), "user-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoginStreakChecker_MissingDay(t *testing.T) {
	// yesterday is missing
	logins := []time.Time{
		checkerNow,
		checkerNow.AddDate(0, 0, -2),
	}
	checker := newStreakChecker(&fakeLogs{loginDates: logins})

	ok, err := checker.IsSatisfied(streakEvent(3), "user-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoginStreakChecker_RepeatLoginsCoverOneDay(t *testing.T) {
	// twenty logins, all today: one distinct day, not twenty
	var logins []time.Time
	for i := 0; i < 20; i++ {
		logins = append(logins, checkerNow.Add(-time.Duration(i)*time.Minute))
	}
	checker := newStreakChecker(&fakeLogs{loginDates: logins})

	ok, err := checker.IsSatisfied(streakEvent(2), "user-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoginStreakChecker_DayBoundaryInReferenceTimezone(t *testing.T) {
	// 23:59 yesterday and 00:01 today are different calendar days
	logins := []time.Time{
		time.Date(2025, 5, 9, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 5, 10, 0, 1, 0, 0, time.UTC),
	}
	checker := newStreakChecker(&fakeLogs{loginDates: logins})

	ok, err := checker.IsSatisfied(streakEvent(2), "user-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoginStreakChecker_StoreError(t *testing.T) {
	storeErr := errors.New("store down")
	checker := newStreakChecker(&fakeLogs{err: storeErr})

	_, err := checker.IsSatisfied(streakEvent(1), "user-1")
	require.ErrorIs(t, err, storeErr)
}

func huntEvent(requiredCount int, monsterID string) *models.Event {
	metadata := map[string]interface{}{}
	if monsterID != "" {
		metadata[models.MetaMonsterID] = monsterID
	}
	return &models.Event{
		ID:            "evt-hunt",
		Type:          models.EventTypeHunt,
		RequiredCount: requiredCount,
		Metadata:      metadata,
	}
}

func TestMonsterHuntChecker_Boundary(t *testing.T) {
	logs := &fakeLogs{huntCounts: map[string]int64{"slime": 2}}
	checker := &MonsterHuntChecker{Logs: logs}

	ok, err := checker.IsSatisfied(huntEvent(3, "slime"), "user-1")
	require.NoError(t, err)
	require.False(t, ok, "requiredCount-1 hunts must fail")

	logs.huntCounts["slime"] = 3
	ok, err = checker.IsSatisfied(huntEvent(3, "slime"), "user-1")
	require.NoError(t, err)
	require.True(t, ok, "exactly requiredCount hunts must pass")
}

func TestMonsterHuntChecker_MissingMonsterID(t *testing.T) {
	// malformed event: never satisfiable, but not an error
	checker := &MonsterHuntChecker{Logs: &fakeLogs{huntCounts: map[string]int64{"": 99}}}

	ok, err := checker.IsSatisfied(huntEvent(1, ""), "user-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func inviteEvent() *models.Event {
	return &models.Event{
		ID:            "evt-invite",
		Type:          models.EventTypeInvite,
		RequiredCount: 5, // deliberately ignored by the checker
	}
}

func TestInviteLoginChecker(t *testing.T) {
	checker := &InviteLoginChecker{Logs: &fakeLogs{inviteeLogin: false}}
	ok, err := checker.IsSatisfied(inviteEvent(), "user-1")
	require.NoError(t, err)
	require.False(t, ok)

	checker = &InviteLoginChecker{Logs: &fakeLogs{inviteeLogin: true}}
	ok, err = checker.IsSatisfied(inviteEvent(), "user-1")
	require.NoError(t, err)
	require.True(t, ok, "one invitee with a login satisfies regardless of required_count")
}

func TestCheckerRegistry_Resolve(t *testing.T) {
	registry := NewCheckerRegistry(&fakeLogs{})

	for _, eventType := range []models.EventType{
		models.EventTypeStreak, models.EventTypeHunt, models.EventTypeInvite,
	} {
		checker, err := registry.Resolve(&models.Event{Type: eventType})
		require.NoError(t, err)
		require.NotNil(t, checker)
	}

	_, err := registry.Resolve(&models.Event{Type: "RAID"})
	require.ErrorIs(t, err, ErrUnsupportedEventType)
}
