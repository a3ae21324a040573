package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type UserLister interface {
	ListAll(ctx context.Context) ([]*domain.UserProfile, error)
}

type FoodLogCounter interface {
	CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

type Notifier interface {
	Send(ctx context.Context, userID int64, text string) error
}

// Sweeper runs the cron-triggered notification sweeps. Each sweep walks
// all users sequentially and sends at most one message per user; a
// failure for one user is logged and never aborts the rest of the sweep.
type Sweeper struct {
	users     UserLister
	foodLogs  FoodLogCounter
	notifier  Notifier
	webAppURL string
}

func NewSweeper(users UserLister, foodLogs FoodLogCounter, notifier Notifier, webAppURL string) *Sweeper {
	return &Sweeper{
		users:     users,
		foodLogs:  foodLogs,
		notifier:  notifier,
		webAppURL: webAppURL,
	}
}

// Schedule registers the sweeps: streak saver daily at 18:00, the
// measurement reminder on Monday mornings.
func (s *Sweeper) Schedule(c *cron.Cron) error {
	if _, err := c.AddFunc("0 18 * * *", func() { s.RunStreakSaver(context.Background()) }); err != nil {
		return err
	}
	if _, err := c.AddFunc("0 8 * * 1", func() { s.RunWeeklyReminder(context.Background()) }); err != nil {
		return err
	}
	return nil
}

// RunStreakSaver nudges every user who has not logged any food today.
func (s *Sweeper) RunStreakSaver(ctx context.Context) {
	log.Println("Sweep: checking streaks...")

	users, err := s.users.ListAll(ctx)
	if err != nil {
		log.Printf("Sweep: failed to list users: %v", err)
		return
	}

	dayStart, dayEnd := domain.DayBounds(time.Now())

	for _, user := range users {
		count, err := s.foodLogs.CountInRange(ctx, user.TelegramID, dayStart, dayEnd)
		if err != nil {
			log.Printf("Sweep: count failed for user %d: %v", user.TelegramID, err)
			continue
		}
		if count > 0 {
			continue
		}

		text := fmt.Sprintf("🔥 <b>%s, не теряй страйк!</b>\nВнеси хотя бы стакан воды!", user.FirstName)
		if err := s.notifier.Send(ctx, user.TelegramID, text); err != nil {
			log.Printf("Sweep: streak nudge failed for user %d: %v", user.TelegramID, err)
		}
	}
}

// RunWeeklyReminder asks every user for their Monday measurements.
func (s *Sweeper) RunWeeklyReminder(ctx context.Context) {
	log.Println("Sweep: sending measurement reminders...")

	users, err := s.users.ListAll(ctx)
	if err != nil {
		log.Printf("Sweep: failed to list users: %v", err)
		return
	}

	for _, user := range users {
		text := fmt.Sprintf(
			"Доброе утро, %s! ☀️\n\nСегодня понедельник — время для еженедельного замера. Это поможет нам отследить твой прогресс!\n\n%s/check-in",
			user.FirstName, s.webAppURL,
		)
		if err := s.notifier.Send(ctx, user.TelegramID, text); err != nil {
			// Blocked bots are expected here; keep walking.
			log.Printf("Sweep: reminder failed for user %d: %v", user.TelegramID, err)
		}
	}
}
