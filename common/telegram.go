package common

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MessageConfig = tgbotapi.MessageConfig

// BotAPI is the part of the Telegram client the long-poll loop needs.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	NewMessage(chatID int64, text string) MessageConfig
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramWrapper struct {
	api *tgbotapi.BotAPI
}

func NewTelegramWrapper(api *tgbotapi.BotAPI) *TelegramWrapper {
	return &TelegramWrapper{api: api}
}

func (w *TelegramWrapper) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return w.api.GetUpdatesChan(config)
}

func (w *TelegramWrapper) StopReceivingUpdates() {
	w.api.StopReceivingUpdates()
}

// NewMessage builds a plain text message, no parse mode.
func (w *TelegramWrapper) NewMessage(chatID int64, text string) MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func (w *TelegramWrapper) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return w.api.Send(c)
}
