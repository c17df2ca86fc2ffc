package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"

	"github.com/cashweb/paygate/bitcoin"
	"github.com/cashweb/paygate/db"
	"github.com/cashweb/paygate/db/migrations"
	"github.com/cashweb/paygate/lib/logging"
	"github.com/cashweb/paygate/lib/service"
	"github.com/cashweb/paygate/lib/tokens"
	"github.com/cashweb/paygate/lib/transport"
	"github.com/cashweb/paygate/node"
	"github.com/cashweb/paygate/rabbitmq"
)

func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	network, err := bitcoin.ParseNetwork(c.Network)
	if err != nil {
		log.Fatalf("Error in NETWORK configuration: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Connect to the node
	nodeCfg, err := node.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading node config: %v", err)
	}
	nodeClient, err := node.NewRPCClient(nodeCfg, logger, startupCtx)
	if err != nil {
		logger.Fatalf("Error connecting to the node at %s: %v", nodeCfg.RPCHost, err)
	}
	defer nodeClient.Close()
	logger.Infof("Connected to node: %s, network: %s", nodeCfg.RPCHost, network)

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		rabbitmqClient, err = rabbitmq.Dial(c.RabbitMQUri,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithPaymentExchange(c.RabbitMQPaymentExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}
		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	svc := &service.GatewayService{
		Config:         c,
		Store:          db.NewPaymentStore(dbConn),
		Node:           nodeClient,
		Network:        network,
		Logger:         logger,
		PaymentPubSub:  service.NewPubsub(),
		RabbitMQClient: rabbitmqClient,
	}

	// init echo server
	e := transport.InitEcho(c, logger)
	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for payment submissions
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)
	secured := e.Group("", tokens.AdminTokenMiddleware(c.AdminToken), logMw)

	transport.RegisterEndpoints(svc, e, secured, strictRateLimitMiddleware, logMw)

	var backgroundWg sync.WaitGroup
	backgroundCtx, cancelBackground := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelBackground()

	// Expire overdue pending payments in the background
	backgroundWg.Add(1)
	go func() {
		defer backgroundWg.Done()
		if err := svc.StartExpiryRoutine(backgroundCtx); err != nil {
			sentry.CaptureException(err)
			svc.Logger.Error(err)
		}
		svc.Logger.Info("Expiry routine done")
	}()

	// Deliver callbacks and webhooks for settled payments
	backgroundWg.Add(1)
	go func() {
		defer backgroundWg.Done()
		svc.StartWebhookSubscription(backgroundCtx)
		svc.Logger.Info("Webhook routine done")
	}()

	// Mirror payment events onto RabbitMQ if configured
	if svc.RabbitMQClient != nil {
		backgroundWg.Add(1)
		go func() {
			defer backgroundWg.Done()
			if err := svc.StartRabbitMQPublisher(backgroundCtx); err != nil {
				sentry.CaptureException(err)
				svc.Logger.Error(err)
			}
			svc.Logger.Info("Rabbitmq routine done")
		}()
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-backgroundCtx.Done()
	svc.Logger.Info("Alas, shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
	backgroundWg.Wait()
}
