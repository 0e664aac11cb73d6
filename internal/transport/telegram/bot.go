package telegram

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/service/answer"
	"github.com/sandevgo/askbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// btnAsk is the shared unique id for suggestion buttons; the suggestion
// text itself travels in the callback payload.
var btnAsk = tele.Btn{Unique: "ask"}

type Bot struct {
	bot      *tele.Bot
	pipeline *answer.Pipeline
	store    core.Indexer
	router   core.CmdRouter
	usage    core.UsageRepository
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	pipeline *answer.Pipeline,
	store core.Indexer,
	router core.CmdRouter,
	usage core.UsageRepository,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:      b,
		pipeline: pipeline,
		store:    store,
		router:   router,
		usage:    usage,
		sender:   newSender(b),
		ownerID:  cfg.OwnerID,
	}

	// Carry the process context (with logger) into every handler
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Optional single-owner mode
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if bot.ownerID != 0 && c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)
	b.Handle(&btnAsk, bot.handleSuggestion)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	if reply, handled := b.router.Execute(ctx, c.Chat().ID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Recipient(), reply, nil)
	}

	return b.answer(ctx, c, c.Text())
}

// handleSuggestion re-runs the pipeline with the tapped follow-up question.
func (b *Bot) handleSuggestion(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	question := c.Data()
	if question == "" {
		return c.Respond()
	}
	_ = c.Respond()

	return b.answer(ctx, c, question)
}

func (b *Bot) answer(ctx context.Context, c tele.Context, question string) error {
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	key := core.NewConversationKey(c.Sender().ID, c.Chat().ID)
	res := b.pipeline.Answer(ctx, key, question, b.store.Current())

	if err := b.usage.RecordQuestion(ctx, c.Chat().ID); err != nil {
		logger.Error().Err(err).Msg("failed to record usage")
	}

	if err := b.sender.sendMarkdown(ctx, c.Recipient(), res.Text, suggestionMarkup(res.Suggestions)); err != nil {
		logger.Error().Err(err).Msg("failed to send answer")
		return err
	}
	return nil
}

// Telegram rejects the whole message when any callback_data exceeds 64
// bytes, and telebot frames the payload as "\f<unique>|<data>" at send time.
const callbackDataLimit = 64

// suggestionMarkup renders follow-up questions as one inline button per row,
// clipping each payload so the framed callback_data stays under the limit.
func suggestionMarkup(suggestions []string) *tele.ReplyMarkup {
	if len(suggestions) == 0 {
		return nil
	}

	payloadLimit := callbackDataLimit - len("\f") - len(btnAsk.Unique) - len("|")

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(suggestions))
	for _, s := range suggestions {
		btn := markup.Data(s, btnAsk.Unique, clipBytes(s, payloadLimit))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)
	return markup
}

func clipBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	clipped := s[:n]
	// Do not cut a multi-byte rune in half
	for len(clipped) > 0 && !utf8.ValidString(clipped) {
		clipped = clipped[:len(clipped)-1]
	}
	return clipped
}
