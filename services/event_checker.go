package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"game-event-system/models"
)

// LogQueries is the slice of the game-log store the checkers read. Narrow on
// purpose: checkers must stay pure functions of stored history.
type LogQueries interface {
	FindLoginDates(userID string, withinDays int) ([]time.Time, error)
	CountMonsterHunts(userID, monsterID string) (int64, error)
	HasInviteeLogin(userID string) (bool, error)
}

// ConditionChecker answers one yes/no eligibility question for (event, user).
// Unsatisfiable preconditions (e.g. a hunt event missing its monster id) come
// back as false, not as an error; errors mean the underlying store failed.
type ConditionChecker interface {
	IsSatisfied(event *models.Event, userID string) (bool, error)
}

// streakLocation resolves the calendar-day timezone once. Streaks are about
// calendar days, so every login has to be truncated in the same zone or a
// late-night login flips between days depending on the server.
func streakLocation() *time.Location {
	name := os.Getenv("STREAK_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ Invalid STREAK_TIMEZONE %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// LoginStreakChecker: satisfied iff the user logged in on each of the
// RequiredCount most recent calendar days ending today.
type LoginStreakChecker struct {
	Logs LogQueries
	Loc  *time.Location

	// Now is swappable in tests; zero value means time.Now.
	Now func() time.Time
}

func (c *LoginStreakChecker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *LoginStreakChecker) IsSatisfied(event *models.Event, userID string) (bool, error) {
	requiredDays := event.RequiredCount
	logins, err := c.Logs.FindLoginDates(userID, requiredDays)
	if err != nil {
		return false, err
	}

	// Distinct calendar days, not login counts: twenty logins on one day
	// still cover a single day.
	days := make(map[time.Time]struct{}, len(logins))
	for _, t := range logins {
		days[truncateDay(t.In(c.Loc))] = struct{}{}
	}

	today := truncateDay(c.now().In(c.Loc))
	for i := 0; i < requiredDays; i++ {
		if _, ok := days[today.AddDate(0, 0, -i)]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonsterHuntChecker: satisfied iff the user killed the event's monster at
// least RequiredCount times.
type MonsterHuntChecker struct {
	Logs LogQueries
}

func (c *MonsterHuntChecker) IsSatisfied(event *models.Event, userID string) (bool, error) {
	monsterID := event.MonsterID()
	if monsterID == "" {
		// Validated away at creation time; an event without a monster id can
		// never be completed.
		return false, nil
	}
	count, err := c.Logs.CountMonsterHunts(userID, monsterID)
	if err != nil {
		return false, err
	}
	return count >= int64(event.RequiredCount), nil
}

// InviteLoginChecker: satisfied iff at least one invited user logged in.
// RequiredCount is not consulted here — upstream behaves the same way, and
// product has not clarified whether it should, so we match it.
type InviteLoginChecker struct {
	Logs LogQueries
}

func (c *InviteLoginChecker) IsSatisfied(event *models.Event, userID string) (bool, error) {
	return c.Logs.HasInviteeLogin(userID)
}

// CheckerRegistry maps event types to checker instances. Built once at
// startup by the composition root and handed to whoever evaluates conditions;
// there is deliberately no package-level instance.
type CheckerRegistry struct {
	checkers map[models.EventType]ConditionChecker
}

func NewCheckerRegistry(logs LogQueries) *CheckerRegistry {
	loc := streakLocation()
	return &CheckerRegistry{
		checkers: map[models.EventType]ConditionChecker{
			models.EventTypeStreak: &LoginStreakChecker{Logs: logs, Loc: loc},
			models.EventTypeHunt:   &MonsterHuntChecker{Logs: logs},
			models.EventTypeInvite: &InviteLoginChecker{Logs: logs},
		},
	}
}

// Resolve returns the checker for the event's type. A miss means someone
// added an event type without wiring a checker.
func (r *CheckerRegistry) Resolve(event *models.Event) (ConditionChecker, error) {
	checker, ok := r.checkers[event.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEventType, event.Type)
	}
	return checker, nil
}
