// Package wire provides dependency injection for the anketa application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	cliadapter "github.com/example/anketa/internal/adapters/cli"
	"github.com/example/anketa/internal/adapters/httpapi"
	"github.com/example/anketa/internal/adapters/sqlite"
	"github.com/example/anketa/internal/app"
	"github.com/example/anketa/internal/config"
	"github.com/example/anketa/internal/db"
	"github.com/example/anketa/internal/logging"
	"github.com/example/anketa/internal/ports/primary"
)

// Options controls process-wide setup.
type Options struct {
	Verbose     bool
	Interactive bool // logs go to a file so the TUI owns the screen
}

var (
	cfg    *config.Config
	logger = zap.NewNop()

	questionnaireService primary.QuestionnaireService
	credentialService    primary.CredentialService
	lettersService       primary.LettersService
	once                 sync.Once
)

// Configure loads .env and the config file, applies environment overrides
// and builds the logger. Commands call it before any service accessor.
func Configure(opts Options) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	loaded, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	loaded.ApplyEnv(os.Getenv)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile := loaded.LogFile
	if opts.Interactive {
		logFile = logging.TUIFile(loaded.LogFile, dir)
	}
	l, err := logging.New(logging.Options{
		Level:   loaded.LogLevel,
		File:    logFile,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return err
	}

	cfg, logger = loaded, l
	return nil
}

// Config returns the effective configuration.
func Config() *config.Config {
	if cfg == nil {
		return config.Defaults()
	}
	return cfg
}

// Logger returns the process logger.
func Logger() *zap.Logger { return logger }

// QuestionnaireService returns the singleton QuestionnaireService instance.
func QuestionnaireService() primary.QuestionnaireService {
	once.Do(initServices)
	return questionnaireService
}

// CredentialService returns the singleton CredentialService instance.
func CredentialService() primary.CredentialService {
	once.Do(initServices)
	return credentialService
}

// LettersService returns the singleton LettersService instance.
func LettersService() primary.LettersService {
	once.Do(initServices)
	return lettersService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	credentialRepo := sqlite.NewCredentialRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)

	credentials := app.NewCredentialService(credentialRepo, c.Token)
	gateway := httpapi.NewClient(c.BaseURL, credentials, c.Timeout, logger.Named("http"))

	var limiter *rate.Limiter
	if c.SubmitInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(c.SubmitInterval), 1)
	}

	// Create effect executor and pipeline with the injected gateway
	executor := app.NewEffectExecutor(gateway, limiter, logger)
	pipeline := app.NewSubmissionPipeline(executor, logger)

	// Create services (primary ports implementation)
	credentialService = credentials
	questionnaireService = app.NewQuestionnaireService(gateway, pipeline, credentials, logger)
	lettersService = app.NewLettersService(settingsRepo)
}

// Close releases the database.
func Close() error {
	return db.Close()
}

// QuestionnaireAdapter returns a new QuestionnaireAdapter writing to stdout,
// rendering markdown with glamour.
func QuestionnaireAdapter() (*cliadapter.QuestionnaireAdapter, error) {
	renderer, err := cliadapter.NewTerminalRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return QuestionnaireAdapterWithOutput(renderer, os.Stdout), nil
}

// QuestionnaireAdapterWithOutput returns a new QuestionnaireAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func QuestionnaireAdapterWithOutput(renderer cliadapter.Renderer, out io.Writer) *cliadapter.QuestionnaireAdapter {
	once.Do(initServices)
	return cliadapter.NewQuestionnaireAdapter(questionnaireService, renderer, out)
}

// CredentialAdapter returns a new CredentialAdapter writing to stdout.
func CredentialAdapter() *cliadapter.CredentialAdapter {
	once.Do(initServices)
	return cliadapter.NewCredentialAdapter(credentialService, os.Stdout)
}

// LettersAdapter returns a new LettersAdapter writing to stdout.
func LettersAdapter() *cliadapter.LettersAdapter {
	once.Do(initServices)
	return cliadapter.NewLettersAdapter(lettersService, os.Stdout)
}
