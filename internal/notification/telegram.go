package notification

import (
	"context"
	"fmt"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    botSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

func (n *TelegramNotifier) Send(ctx context.Context, msg Message) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("kind", string(msg.Kind)))
		return nil
	}

	if msg.User == nil || msg.User.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)",
			logger.String("kind", string(msg.Kind)),
			logger.String("booking_id", msg.Booking.ID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	chatID := *msg.User.TelegramChatID
	tgMsg := tgbotapi.NewMessage(chatID, render(msg))
	tgMsg.ParseMode = "Markdown"

	if _, err := n.bot.Send(tgMsg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", chatID, err)
	}

	return nil
}

func render(msg Message) string {
	b := msg.Booking
	date := b.ScheduledDate.Format("02.01.2006 15:04")

	switch msg.Kind {
	case domain.NotifyBookingConfirmation:
		return fmt.Sprintf(
			"*Booking received!*\n\n"+"Booking: %s\n"+"Scheduled (UTC): %s\n"+"Amount: ₹%.2f",
			b.BookingNumber, date, b.TotalAmount,
		)
	case domain.NotifyPaymentSuccess:
		return fmt.Sprintf(
			"*Payment received*\n\n"+"Booking: %s\n"+"Amount: ₹%.2f\n"+"Your booking is confirmed.",
			b.BookingNumber, b.TotalAmount,
		)
	case domain.NotifyWorkerAssigned:
		otp := ""
		if b.OTP != nil {
			otp = *b.OTP
		}
		return fmt.Sprintf(
			"*Professional assigned*\n\n"+"Booking: %s\n"+"Scheduled (UTC): %s\n"+"Share this code when the visit starts: `%s`",
			b.BookingNumber, date, otp,
		)
	default:
		return fmt.Sprintf(
			"*Booking update*\n\n"+"Booking: %s\n"+"Status: %s",
			b.BookingNumber, b.Status,
		)
	}
}
