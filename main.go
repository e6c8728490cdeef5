package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/finance-dashboard/backend/internal/client"
	v1 "github.com/finance-dashboard/backend/internal/controllers/v1"
	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/finance-dashboard/backend/internal/form"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/finance-dashboard/backend/internal/router"
	"github.com/finance-dashboard/backend/internal/sandbox"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// env returns the value of the environment variable or the fallback if
// it is not set.
func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

// duration parses a duration from the environment.
func duration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatal().Str("variable", key).Msg(err.Error())
	}
	return d
}

// setupLogging sets the gin mode and configures the global logger for it.
func setupLogging() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

func main() {
	setupLogging()

	// The public URL of the API is needed for links in responses
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg(err.Error())
	}

	r, teardown, err := router.Config(u)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	financeURL := env("FINANCE_API_URL", "http://localhost:8080")

	// The sandbox finance API runs in this process and is called
	// via the loopback interface
	if env("SANDBOX", "false") == "true" {
		dsn := env("SANDBOX_DB", filepath.Join("data", "sandbox.db"))
		err = os.MkdirAll(filepath.Dir(dsn), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(dsn)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		sandbox.RegisterRoutes(r.Group("/sandbox"), os.Getenv("SANDBOX_TOKEN"))

		if _, ok := os.LookupEnv("FINANCE_API_URL"); !ok {
			financeURL = "http://localhost:" + env("PORT", "8080") + "/sandbox"
		}
		log.Info().Str("database", dsn).Msg("Sandbox finance API enabled")
	}

	api, err := client.New(financeURL, client.WithTimeout(duration("FINANCE_API_TIMEOUT", client.DefaultTimeout)))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().Str("url", api.BaseURL()).Msg("Finance API")

	formatter, err := dashboard.NewFormatter(env("CURRENCY", "BRL"), env("LOCALE", "pt-BR"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{
		Client:    api,
		Forms:     form.NewStore(duration("FORM_IDLE_TIMEOUT", form.DefaultIdleTimeout)),
		Formatter: formatter,
	}, r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
