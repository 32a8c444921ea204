package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/avolkhin/mw-approval-engine/internal/facades"
	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
	"github.com/avolkhin/mw-approval-engine/internal/policy"
	"github.com/avolkhin/mw-approval-engine/internal/repositories"
	"github.com/avolkhin/mw-approval-engine/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds application, database, Redis, Kafka, ledger, and quorum
// policy configuration.
type config struct {
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaBroker string
	kafkaTopic  string

	ledgerURL string
	rolesFile string

	depositApprovals    int
	withdrawalApprovals int
	rejectionsRequired  int
	approvalTimeout     time.Duration
	sweepInterval       time.Duration
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		logLevel:      getEnv("APP_LOG_LEVEL", "info"),
		pgHost:        getEnv("POSTGRES_HOST", "localhost"),
		pgUser:        getEnv("POSTGRES_USER", "user"),
		pgPassword:    getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:          getEnv("POSTGRES_DB", "database"),
		redisHost:     getEnv("REDIS_HOST", "localhost"),
		redisPassword: getEnv("REDIS_PASSWORD", ""),
		kafkaBroker:   getEnv("KAFKA_BROKER", "localhost:9092"),
		kafkaTopic:    getEnv("KAFKA_NOTIFICATIONS_TOPIC", "approval-notifications"),
		ledgerURL:     getEnv("LEDGER_URL", "http://localhost:9090"),
		rolesFile:     getEnv("ROLES_FILE", ""),
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.depositApprovals, err = getEnvInt("DEPOSIT_APPROVALS_REQUIRED", 3); err != nil {
		return nil, err
	}
	if cfg.withdrawalApprovals, err = getEnvInt("WITHDRAWAL_APPROVALS_REQUIRED", 5); err != nil {
		return nil, err
	}
	if cfg.rejectionsRequired, err = getEnvInt("REJECTIONS_REQUIRED", 2); err != nil {
		return nil, err
	}

	timeoutHours, err := getEnvInt("APPROVAL_TIMEOUT_HOURS", 72)
	if err != nil {
		return nil, err
	}
	cfg.approvalTimeout = time.Duration(timeoutHours) * time.Hour

	sweepSeconds, err := getEnvInt("SWEEP_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.sweepInterval = time.Duration(sweepSeconds) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and policy
// configuration, wires the approval workflow, and drives the timeout sweep
// loop until a shutdown signal arrives.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for notification intents
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.kafkaBroker),
		Topic:    cfg.kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Quorum policy snapshot
	quorum, err := policy.NewQuorum(map[models.TransactionKind]policy.Rule{
		models.Deposit: {
			ApprovalsRequired:  cfg.depositApprovals,
			RejectionsRequired: cfg.rejectionsRequired,
			Timeout:            cfg.approvalTimeout,
		},
		models.Withdrawal: {
			ApprovalsRequired:  cfg.withdrawalApprovals,
			RejectionsRequired: cfg.rejectionsRequired,
			Timeout:            cfg.approvalTimeout,
		},
	})
	if err != nil {
		logger.Log.Errorw("invalid quorum policy", "error", err)
		return err
	}
	quorumStore := policy.NewStore(quorum)

	// Role capability table
	authorizer := policy.DefaultAuthorizer()
	if cfg.rolesFile != "" {
		authorizer, err = policy.LoadAuthorizer(cfg.rolesFile)
		if err != nil {
			logger.Log.Errorw("failed to load roles file", "path", cfg.rolesFile, "error", err)
			return err
		}
		logger.Log.Infof("Role capability table loaded from %s", cfg.rolesFile)
	}

	// Initialize repositories
	txnRepo := repositories.NewTransactionRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	hostname, _ := os.Hostname()
	sweepLock := repositories.NewSweepLockRepository(rdb, cfg.sweepInterval, hostname)

	// Initialize collaborators and services
	ledger := facades.NewLedgerHTTPFacade(cfg.ledgerURL, nil)
	notifier := services.NewKafkaNotifier(kafkaWriter)
	workflow := services.NewApprovalWorkflow(txnRepo, auditRepo, ledger, notifier, quorumStore, authorizer)
	scheduler := services.NewTimeoutScheduler(txnRepo, workflow, sweepLock, cfg.sweepInterval)

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	scheduler.Run(ctxShutdown)

	logger.Log.Info("Timeout scheduler stopped gracefully")
	return nil
}
