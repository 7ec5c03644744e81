package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardbot/internal/config"
	"cardbot/internal/database"
	"cardbot/internal/handler"
	"cardbot/internal/importer"
	"cardbot/internal/logger"
	"cardbot/internal/middleware"
	"cardbot/internal/repository/sqlstore"
	"cardbot/internal/scheduler"
	"cardbot/internal/service"
	"cardbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	telemw "gopkg.in/telebot.v3/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting card bot", zap.String("db_driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database with retries
	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Database connection established")

	// Run migrations
	if _, err := database.Migrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize store, session state and services
	store := sqlstore.New(db)
	sessions := session.NewStore()

	userService := service.NewUserService(store, cfg.AdminIDs)
	wordService := service.NewWordService(store, log)
	cardService := service.NewCardService(store, sessions, log)
	statsService := service.NewStatsService(store, log)

	if err := seedVocabulary(ctx, wordService, cfg.SeedFile, log); err != nil {
		log.Fatal("Failed to seed vocabulary", zap.Error(err))
	}

	// Initialize Telegram bot. The long poller is shared by every polling
	// attempt so the update offset survives restarts.
	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		Client: &http.Client{Timeout: 30 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error("Bot error", zap.Error(err))
		},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	log.Info("Telegram bot initialized", zap.String("username", api.Me.Username))

	router := handler.NewRouter(cardService, wordService, userService, sessions, handler.NewTelegramSender(api), log)

	newBot := func() (poller, error) {
		return newTelegramBot(pref, func(bot *tele.Bot) {
			bot.Use(
				telemw.Recover(func(err error) {
					log.Error("Recovered from handler panic", zap.Error(err))
				}),
				middleware.RequestLogger(log),
				middleware.EnsureUser(userService, log),
			)
			router.RegisterHandlers(bot)
		})
	}

	// Start stats report in background
	jobs := scheduler.New(statsService, cfg.StatsInterval, log)
	if err := jobs.Start(ctx); err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer jobs.Stop()

	log.Info("Bot started successfully")
	runPolling(ctx, newBot, cfg.RestartDelay, log)

	log.Info("Bot stopped gracefully")
}

// seedVocabulary stores the starter list and the optional seed file
func seedVocabulary(ctx context.Context, words *service.WordService, seedFile string, log *zap.Logger) error {
	if _, err := words.Seed(ctx, importer.Starter); err != nil {
		return err
	}
	if seedFile == "" {
		return nil
	}

	pairs, err := importer.ReadFile(seedFile)
	if err != nil {
		return err
	}
	n, err := words.Seed(ctx, pairs)
	if err != nil {
		return err
	}
	log.Info("Seed file imported", zap.String("file", seedFile), zap.Int("inserted", n))
	return nil
}
