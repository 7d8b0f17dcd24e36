package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/telebot.v3"

	"payroll-bot/config"
	"payroll-bot/internal/app/service"
	"payroll-bot/internal/delivery/telegram"
	"payroll-bot/internal/domain"
	"payroll-bot/internal/logger"
	"payroll-bot/internal/repository/jsonfile"
	"payroll-bot/internal/repository/sqlite"
	"payroll-bot/pkg/workerpool"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	lg, logFile := logger.New(cfg.LogLevel, cfg.LogFilePath)
	defer logFile.Close()
	lg.Info().Str("backend", cfg.Backend).Msg("starting payroll bot")

	store, closeStore, err := openStore(cfg, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("open roster store")
	}
	defer closeStore()

	payroll := service.NewPayrollService(store, lg.With().Str("component", "payroll").Logger())
	canSave := loadAtStartup(payroll, lg)

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	defer pool.Close()

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			lg.Error().Err(err).Msg("telegram handler")
		},
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("start bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := &telegram.Handler{
		Bot:     bot,
		Payroll: payroll,
		Async:   service.NewAsyncService(pool),
		Log:     lg.With().Str("component", "telegram").Logger(),
		Ctx:     ctx,
	}
	handler.Register()

	go func() {
		<-ctx.Done()
		bot.Stop()
	}()

	lg.Info().Msg("bot is running")
	bot.Start()

	if cfg.SaveOnExit && canSave {
		if err := payroll.Save(); err != nil {
			lg.Error().Err(err).Msg("save on exit")
		}
	}
	if cfg.SaveOnExit && !canSave {
		lg.Warn().Msg("saved roster was not loaded at startup, skipping save on exit")
	}
	lg.Info().Msg("bot stopped")
}

// loadAtStartup restores the saved roster and reports whether saving over the
// store on exit is safe. It is not when a roster exists but could not be read:
// the empty roster would replace it.
func loadAtStartup(payroll *service.PayrollService, lg zerolog.Logger) bool {
	err := payroll.Load()
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		lg.Info().Msg("no saved roster, starting empty")
		return true
	default:
		lg.Warn().Err(err).Msg("saved roster not loaded, starting empty")
		return false
	}
}

func openStore(cfg *config.Config, lg zerolog.Logger) (domain.RosterStore, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sql.Open("sqlite3", cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewRosterRepo(db), func() { db.Close() }, nil
	default:
		if dir := filepath.Dir(cfg.RosterPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		return jsonfile.NewRepo(cfg.RosterPath, lg.With().Str("component", "store").Logger()), func() {}, nil
	}
}
