package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvStore     = "TB_STORE"
	EnvCurrency  = "TB_CURRENCY"
	EnvVerbose   = "TB_VERBOSE"
	EnvLogFormat = "TB_LOG_FORMAT"

	defaultStore    = ".tillbook"
	defaultCurrency = "ZMW"
)

// Config is the resolved configuration of the tool. Flags win over the
// environment, the environment over defaults.
type Config struct {
	Store     string `validate:"required"`
	Currency  string `validate:"required,len=3,alpha"`
	Verbose   bool
	LogFormat string `validate:"oneof=text json"`
}

// loadConfig reads the optional .env file of the working directory, then
// resolves every setting from the flags that were set, the environment and
// the defaults.
func loadConfig(flags *flag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot read .env file: %w", err)
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, env, def string) string {
		if set[name] {
			return flags.Lookup(name).Value.String()
		}
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Store:     pick("store", EnvStore, defaultStore),
		Currency:  strings.ToUpper(pick("currency", EnvCurrency, defaultCurrency)),
		LogFormat: strings.ToLower(pick("log-format", EnvLogFormat, "text")),
	}
	verbose, err := strconv.ParseBool(pick("v", EnvVerbose, "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
	}
	cfg.Verbose = verbose

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Config{}, fmt.Errorf("invalid configuration: %s fails %q", verrs[0].Field(), verrs[0].Tag())
		}
		return Config{}, err
	}
	return cfg, nil
}
