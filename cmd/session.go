package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/store"
	"github.com/sirupsen/logrus"
)

// session is the state shared by the commands of a single invocation: the
// configuration, the logger, the store and the loaded book. It is started at
// most once.
type session struct {
	once  sync.Once
	err   error
	cfg   Config
	log   *logrus.Logger
	store store.Store
	repo  *tillbook.Repository
	book  *tillbook.Book
}

var current = &session{}

// newLogger configures the logger: warnings only, unless verbose.
func newLogger(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	log.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (s *session) start(ctx context.Context) error {
	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.log = newLogger(cfg)
	s.store, err = store.Open(ctx, cfg.Store, s.log)
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	s.repo = tillbook.NewRepository(s.store, s.log)
	s.book, err = s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cannot load book from %q: %w", cfg.Store, err)
	}
	s.log.WithFields(logrus.Fields{"store": cfg.Store, "book": s.book.String()}).Debug("open-book")
	return nil
}

// openBook starts the session, if needed, and returns the book.
func openBook(ctx context.Context) (*tillbook.Book, error) {
	current.once.Do(func() { current.err = current.start(ctx) })
	if current.err != nil {
		return nil, current.err
	}
	return current.book, nil
}

// saveBook writes the collections changed by the command.
func saveBook(ctx context.Context) error {
	if current.repo == nil {
		return errors.New("book is not open")
	}
	return current.repo.Save(ctx, current.book)
}

// currencyCode returns the configured display currency.
func currencyCode() string {
	if current.cfg.Currency == "" {
		return defaultCurrency
	}
	return current.cfg.Currency
}

// Close releases the store. It is safe to call when nothing was opened.
func Close() error {
	if current.store == nil {
		return nil
	}
	return current.store.Close()
}
