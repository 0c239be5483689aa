package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

type Bot struct {
	token  string
	logger *zap.Logger
}

func NewBot(token string, logger *zap.Logger) *Bot {
	return &Bot{token: token, logger: logger}
}

func (b *Bot) Send(message string, channelId int64) error {
	bot, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		b.logger.With(zap.Error(err)).Error("telegram_connect_err")
		return err
	}

	_, err = bot.Send(tgbotapi.NewMessage(channelId, message))
	if err != nil {
		b.logger.With(zap.Error(err)).Error("telegram_send_err")
	}

	return err
}
