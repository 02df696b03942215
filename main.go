package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/ai-portfolio-site/api"
	"github.com/rpupo63/ai-portfolio-site/auth"
	"github.com/rpupo63/ai-portfolio-site/config"
	"github.com/rpupo63/ai-portfolio-site/database"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rpupo63/ai-portfolio-site/services"
	"github.com/rpupo63/ai-portfolio-site/views"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}
	cfg := config.New()
	if err := configure(context.Background(), cfg, loadSSMConfig); err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	log.Info().Msg("Initializing app...")

	connStr, err := buildDSN(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database configuration")
	}

	db, err := openDatabase(cfg, connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	currentDB := database.New(db)
	if err := currentDB.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error testing database connection")
	}

	if config.GetBool(cfg, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("model generation failed")
		}
		return
	}

	if config.GetBool(cfg, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if _, err := models.WriteColumnReport(db, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("column report failed")
		}
		return
	}

	if config.GetBool(cfg, "SEED_ADMIN", false) {
		err := seedAdmin(context.Background(), currentDB.UserRepo(),
			config.GetString(cfg, "ADMIN_EMAIL", ""),
			config.GetString(cfg, "ADMIN_PASSWORD", ""))
		if err != nil {
			log.Fatal().Err(err).Msg("seeding admin failed")
		}
		return
	}

	authenticator, err := auth.New(currentDB.UserRepo(), config.GetString(cfg, "JWT_SECRET", ""))
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET must be set")
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	server, err := api.NewServer(cfg, api.Dependencies{
		Database:      currentDB,
		Authenticator: authenticator,
		Renderer:      renderer,
		Notifier:      contactNotifier(cfg),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing server")
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	if fatalErr != nil && !errors.Is(fatalErr, http.ErrServerClosed) {
		log.Info().Msgf("Closing server: %v", fatalErr)
	}

	server.ShutdownGracefully(30 * time.Second)
}

type parameterLoader func(ctx context.Context, cfg map[string]string, prefix string) error

// configure merges SSM parameters into cfg before the logger reads LOG_LEVEL and
// ENVIRONMENT. Until then the zerolog default logger is in use.
func configure(ctx context.Context, cfg map[string]string, loadParameters parameterLoader) error {
	if prefix := config.GetString(cfg, "SSM_PARAMETER_PATH", ""); prefix != "" {
		if err := loadParameters(ctx, cfg, prefix); err != nil {
			return fmt.Errorf("load parameters from %s: %w", prefix, err)
		}
	}
	setupLogger(cfg)
	return nil
}

// setupLogger writes human readable logs locally and JSON in production.
func setupLogger(cfg map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(config.GetString(cfg, "LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !config.IsProduction(cfg) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// buildDSN supports DB_TYPE "supa" (Supabase pieces) and "postgres" (DATABASE_URL).
func buildDSN(cfg map[string]string) (string, error) {
	dbType := config.GetString(cfg, "DB_TYPE", "supa")
	switch dbType {
	case "supa":
		host := config.GetString(cfg, "SUPABASE_DB_HOST", "")
		if host == "" {
			return "", fmt.Errorf("SUPABASE_DB_HOST is required for DB_TYPE=supa")
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			host,
			config.GetString(cfg, "SUPABASE_DB_USER", "postgres"),
			config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(cfg, "SUPABASE_DB_NAME", "postgres"),
			config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
		), nil
	case "postgres":
		url := config.GetString(cfg, "DATABASE_URL", "")
		if url == "" {
			return "", fmt.Errorf("DATABASE_URL is required for DB_TYPE=postgres")
		}
		return url, nil
	default:
		return "", fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

func openDatabase(cfg map[string]string, connStr string) (*gorm.DB, error) {
	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(cfg),
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, err
	}

	if replica := config.GetString(cfg, "DB_REPLICA_DSN", ""); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  replica,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		log.Info().Msg("Read queries routed to replica")
	}

	return db, nil
}

// loadSSMConfig fills cfg with parameters stored under prefix. Environment values win.
func loadSSMConfig(ctx context.Context, cfg map[string]string, prefix string) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	params, err := config.LoadParameters(ctx, ssm.NewFromConfig(awsCfg), prefix)
	if err != nil {
		return err
	}
	config.Merge(cfg, params)
	log.Info().Int("count", len(params)).Msg("Loaded parameters from SSM")
	return nil
}

// contactNotifier returns nil when no channel is configured; the contact form still works.
func contactNotifier(cfg map[string]string) *services.ContactNotifier {
	var notifier *services.ContactNotifier

	recipient := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	mailer, err := services.NewMailerFromConfig(cfg)
	if err == nil && recipient != "" {
		notifier = services.NewContactNotifier(mailer, recipient)
	} else {
		log.Warn().Err(err).Msg("contact e-mail notifications disabled")
	}

	smsTo := config.GetString(cfg, "CONTACT_NOTIFY_PHONE", "")
	if smsTo == "" {
		return notifier
	}
	texter, err := services.NewSMSSenderFromConfig(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("contact SMS notifications disabled")
		return notifier
	}
	if notifier == nil {
		notifier = services.NewContactNotifier(nil, "")
	}
	return notifier.WithSMS(texter, smsTo)
}

type adminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
}

// seedAdmin creates the admin account once. An existing account is left untouched.
func seedAdmin(ctx context.Context, users adminStore, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required to seed the admin user")
	}

	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("look up admin: %w", err)
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("admin user already exists")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := users.Add(ctx, &models.User{Email: email, PasswordHash: hash, Role: models.RoleAdmin}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("email", email).Msg("admin user created")
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
