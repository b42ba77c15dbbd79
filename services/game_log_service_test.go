package services

import (
	"testing"
	"time"

	"game-event-system/models"

	"github.com/stretchr/testify/require"
)

func seedLog(t *testing.T, svc *GameLogService, userID string, logType models.GameLogType, metadata map[string]interface{}) *models.GameLog {
	t.Helper()
	entry, err := svc.CreateLog(CreateLogInput{UserID: userID, Type: logType, Metadata: metadata})
	require.NoError(t, err)
	return entry
}

func loginMeta(at time.Time) map[string]interface{} {
	return map[string]interface{}{models.MetaLoginTime: at.Format(time.RFC3339)}
}

func huntMeta(monsterID string) map[string]interface{} {
	return map[string]interface{}{models.MetaMonsterID: monsterID, "monsterName": "Slime"}
}

func inviteMeta(invitedUserID string) map[string]interface{} {
	return map[string]interface{}{models.MetaInvitedUserID: invitedUserID}
}

func TestGameLogService_CreateLog_Validation(t *testing.T) {
	svc := NewGameLogService(newTestDB(t))

	_, err := svc.CreateLog(CreateLogInput{UserID: "u1", Type: "DANCE"})
	require.Error(t, err)

	_, err = svc.CreateLog(CreateLogInput{UserID: "u1", Type: models.GameLogTypeHunt})
	require.ErrorIs(t, err, ErrMonsterIDRequired)

	_, err = svc.CreateLog(CreateLogInput{UserID: "u1", Type: models.GameLogTypeInvite})
	require.Error(t, err)

	entry, err := svc.CreateLog(CreateLogInput{UserID: "u1", Type: models.GameLogTypeLogin})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
}

func TestGameLogService_FindLoginDates(t *testing.T) {
	svc := NewGameLogService(newTestDB(t))
	now := time.Now().UTC()

	seedLog(t, svc, "u1", models.GameLogTypeLogin, loginMeta(now))
	seedLog(t, svc, "u1", models.GameLogTypeLogin, loginMeta(now.AddDate(0, 0, -1)))
	seedLog(t, svc, "u1", models.GameLogTypeHunt, huntMeta("slime")) // other types ignored
	seedLog(t, svc, "u2", models.GameLogTypeLogin, loginMeta(now))   // other users ignored

	dates, err := svc.FindLoginDates("u1", 7)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	require.WithinDuration(t, now, dates[0], time.Second)
}

func TestGameLogService_CountMonsterHunts(t *testing.T) {
	svc := NewGameLogService(newTestDB(t))

	for i := 0; i < 3; i++ {
		seedLog(t, svc, "u1", models.GameLogTypeHunt, huntMeta("slime"))
	}
	seedLog(t, svc, "u1", models.GameLogTypeHunt, huntMeta("golem"))
	seedLog(t, svc, "u2", models.GameLogTypeHunt, huntMeta("slime"))

	count, err := svc.CountMonsterHunts("u1", "slime")
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	count, err = svc.CountMonsterHunts("u1", "dragon")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestGameLogService_HasInviteeLogin(t *testing.T) {
	svc := NewGameLogService(newTestDB(t))

	// no invites at all
	ok, err := svc.HasInviteeLogin("inviter")
	require.NoError(t, err)
	require.False(t, ok)

	// invitee exists but never logged in
	seedLog(t, svc, "inviter", models.GameLogTypeInvite, inviteMeta("friend-1"))
	ok, err = svc.HasInviteeLogin("inviter")
	require.NoError(t, err)
	require.False(t, ok)

	// unrelated user logging in changes nothing
	seedLog(t, svc, "stranger", models.GameLogTypeLogin, loginMeta(time.Now()))
	ok, err = svc.HasInviteeLogin("inviter")
	require.NoError(t, err)
	require.False(t, ok)

	// invitee logs in → satisfied
	seedLog(t, svc, "friend-1", models.GameLogTypeLogin, loginMeta(time.Now()))
	ok, err = svc.HasInviteeLogin("inviter")
	require.NoError(t, err)
	require.True(t, ok)
}
