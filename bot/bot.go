package bot

import (
	"context"
	"log"

	"github.com/artem-streltsov/esmeralde-bot/commands"
	"github.com/artem-streltsov/esmeralde-bot/common"
	"github.com/artem-streltsov/esmeralde-bot/handlers"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram serves the same command over the Telegram long-poll API.
// There are no roles on Telegram, so /edt needs an argument there.
type Telegram struct {
	api     common.BotAPI
	handler *handlers.Handler
	updates tgbotapi.UpdatesChannel
}

func InitTelegram(telegramToken string, handler *handlers.Handler) (*Telegram, error) {
	botAPI, err := tgbotapi.NewBotAPI(telegramToken)
	if err != nil {
		return nil, err
	}
	botAPI.Debug = false

	log.Printf("Telegram bot %s is connected!", botAPI.Self.UserName)
	return NewTelegram(common.NewTelegramWrapper(botAPI), handler), nil
}

func NewTelegram(api common.BotAPI, handler *handlers.Handler) *Telegram {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &Telegram{
		api:     api,
		handler: handler,
		updates: api.GetUpdatesChan(u),
	}
}

func (b *Telegram) Run(ctx context.Context) error {
	log.Println("Telegram bot is running...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down Telegram bot...")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-b.updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Telegram) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	inv, ok := commands.Parse(commands.Prefix + message.Command() + " " + message.CommandArguments())
	if !ok {
		return
	}

	msg := b.api.NewMessage(message.Chat.ID, b.handler.Reply(ctx, inv, nil))
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
