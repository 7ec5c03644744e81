package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// releaseTimeout bounds the wait for a crashed bot's poller to return
const releaseTimeout = 15 * time.Second

// poller is the part of *tele.Bot the restart loop drives
type poller interface {
	Start()
	Stop()
}

// releaser is implemented by bots whose update loop can be shut down after Start panicked
type releaser interface {
	Release()
}

// botFactory builds the bot for one polling attempt.
// A *tele.Bot whose Start panicked ignores every later Start call.
type botFactory func() (poller, error)

// runPolling keeps a bot polling until ctx is done. When polling stops on
// its own or panics a fresh bot is built and started after delay.
func runPolling(ctx context.Context, newBot botFactory, delay time.Duration, log *zap.Logger) {
	for attempt := 1; ; attempt++ {
		bot, err := newBot()
		if err != nil {
			log.Error("Failed to create bot", zap.Error(err), zap.Int("attempt", attempt))
		} else if err := poll(ctx, bot); err != nil {
			log.Error("Polling crashed", zap.Error(err), zap.Int("attempt", attempt))
			if r, ok := bot.(releaser); ok {
				r.Release()
			}
		}
		if ctx.Err() != nil {
			return
		}

		log.Warn("Polling stopped, restarting", zap.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func poll(ctx context.Context, bot poller) (err error) {
	stopped := make(chan struct{})
	defer close(stopped)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			bot.Stop()
		case <-stopped:
		}
	}()

	bot.Start()
	return nil
}

// telegramBot is a *tele.Bot that can be released after a crash
type telegramBot struct {
	*tele.Bot
	poller *releasablePoller
}

// newTelegramBot creates a bot polling through pref.Poller. setup registers
// middleware and handlers on it.
func newTelegramBot(pref tele.Settings, setup func(bot *tele.Bot)) (poller, error) {
	if pref.Poller == nil {
		pref.Poller = &tele.LongPoller{}
	}
	p := &releasablePoller{
		Poller:   pref.Poller,
		released: make(chan struct{}),
		done:     make(chan struct{}),
	}
	pref.Poller = p

	bot, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	setup(bot)

	return &telegramBot{Bot: bot, poller: p}, nil
}

// Release stops the update loop left running by a panicked Start
func (b *telegramBot) Release() {
	b.poller.release()
}

// releasablePoller stops on either the bot's stop signal or release
type releasablePoller struct {
	tele.Poller

	once     sync.Once
	released chan struct{}
	done     chan struct{}
}

func (p *releasablePoller) Poll(b *tele.Bot, updates chan tele.Update, stop chan struct{}) {
	defer close(p.done)

	merged := make(chan struct{})
	go func() {
		defer close(merged)
		select {
		case <-stop:
		case <-p.released:
		}
	}()

	p.Poller.Poll(b, updates, merged)
}

func (p *releasablePoller) release() {
	p.once.Do(func() { close(p.released) })

	select {
	case <-p.done:
	case <-time.After(releaseTimeout):
	}
}
