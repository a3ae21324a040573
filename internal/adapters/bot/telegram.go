package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

// Bot is the Telegram capture surface: registration via /start, phone
// capture via the contact button, and food logging from free text or
// photos. The mini-app handles everything else.
type Bot struct {
	bot      *tele.Bot
	profiles *services.ProfileService
	analysis *services.AnalysisService
	food     *services.FoodService
}

func New(token string, profiles *services.ProfileService, analysis *services.AnalysisService, food *services.FoodService) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	tb := &Bot{
		bot:      b,
		profiles: profiles,
		analysis: analysis,
		food:     food,
	}
	tb.registerHandlers()

	return tb, nil
}

// SetFoodService breaks the construction cycle: the food service needs
// the bot as its notifier, the bot needs the food service for capture.
func (b *Bot) SetFoodService(food *services.FoodService) {
	b.food = food
}

func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle(tele.OnContact, b.handleContact)
	b.bot.Handle(tele.OnText, b.handleText)
	b.bot.Handle(tele.OnPhoto, b.handlePhoto)
}

// Start begins long polling. It blocks until Stop is called.
func (b *Bot) Start() {
	log.Println("Telegram bot started")
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

// Send implements the notifier used by the overlimit check and the
// scheduled sweeps. Telegram chat id equals telegram user id for
// private chats.
func (b *Bot) Send(ctx context.Context, userID int64, text string) error {
	_, err := b.bot.Send(&tele.User{ID: userID}, text, tele.ModeHTML)
	return err
}

func (b *Bot) handleStart(c tele.Context) error {
	sender := c.Sender()

	if _, err := b.profiles.Register(context.Background(), sender.ID, sender.FirstName, sender.Username); err != nil {
		log.Printf("bot: register user %d: %v", sender.ID, err)
		return c.Send("❌ Ошибка регистрации. Попробуй еще раз.")
	}

	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Contact("📱 Отправить номер телефона")))

	return c.Send(
		fmt.Sprintf("👋 Привет, %s!\nДля полной авторизации нажми кнопку ниже, чтобы отправить свой номер телефона.", sender.FirstName),
		menu,
	)
}

func (b *Bot) handleContact(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}

	if contact.UserID != c.Sender().ID {
		return c.Send("❌ Пожалуйста, отправьте СВОЙ номер телефона через кнопку меню.")
	}

	if err := b.profiles.SavePhone(context.Background(), c.Sender().ID, contact.PhoneNumber); err != nil {
		log.Printf("bot: save phone for %d: %v", c.Sender().ID, err)
		return c.Send("Ошибка сохранения номера.")
	}

	return c.Send(
		"✅ Авторизация успешна! Номер сохранен.\nТеперь ты можешь пользоваться всеми функциями: скидывать фото еды или текст.",
		&tele.ReplyMarkup{RemoveKeyboard: true},
	)
}

func (b *Bot) handleText(c tele.Context) error {
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return nil
	}

	_ = c.Send(fmt.Sprintf("🤔 Анализирую: \"%s\"...", text))
	return b.captureFood(c, "", text, "text")
}

func (b *Bot) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	_ = c.Send("🔎 Анализирую фото...")

	fileURL, err := b.bot.FileURLByID(photo.FileID)
	if err != nil {
		log.Printf("bot: resolve photo url for %d: %v", c.Sender().ID, err)
		return c.Send("❌ Ошибка фото.")
	}

	return b.captureFood(c, fileURL, "", "image")
}

func (b *Bot) captureFood(c tele.Context, imageURL, description, source string) error {
	ctx := context.Background()
	userID := c.Sender().ID

	estimate, err := b.analysis.Analyze(ctx, imageURL, description)
	if err != nil {
		log.Printf("bot: analyze food for %d: %v", userID, err)
		return c.Send("❌ Не смог определить еду.")
	}

	_, err = b.food.Log(ctx, services.LogFoodInput{
		UserID:   userID,
		Name:     estimate.Name,
		Calories: estimate.Calories,
		Protein:  estimate.Protein,
		Fats:     estimate.Fats,
		Carbs:    estimate.Carbs,
		WeightG:  estimate.WeightG,
		Grade:    estimate.Grade,
		Source:   source,
	})
	if err != nil {
		log.Printf("bot: log food for %d: %v", userID, err)
		return c.Send("⚠️ Нажми /start")
	}

	return c.Send(fmt.Sprintf(
		"✅ [%s] %s\n⚖️ ~%.0f г\n🔥 %.0f ккал\n💡 %s",
		estimate.Grade, estimate.Name, estimate.WeightG, estimate.Calories, estimate.Advice,
	))
}
