// Command tracker runs the location agent on a device with a serial GPS
// receiver, reporting to the API on behalf of a signed-in account.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/pkg/logger"
	"missing-person-tracker/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	var (
		serverURL     = flag.String("server", envOr("TRACKER_SERVER_URL", "http://localhost:8080"), "API base URL")
		token         = flag.String("token", os.Getenv("TRACKER_TOKEN"), "bearer token of the signed-in account")
		port          = flag.String("port", envOr("TRACKER_SERIAL_PORT", "/dev/ttyUSB0"), "serial port of the GPS receiver")
		baud          = flag.Int("baud", 9600, "serial baud rate")
		queuePath     = flag.String("queue", envOr("TRACKER_QUEUE_PATH", "tracker-queue.db"), "SQLite file holding undelivered fixes")
		checkInterval = flag.Duration("check-interval", 30*time.Second, "how often to check API reachability")
		pushTimeout   = flag.Duration("push-timeout", 0, "per-request timeout for location pushes (0 = none)")
		logLevel      = flag.String("log-level", envOr("LOG_LEVEL", "info"), "log level")
	)
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: os.Getenv("LOG_FORMAT")})

	if *token == "" {
		logrus.Fatal("a token is required (-token or TRACKER_TOKEN)")
	}

	queue, err := tracker.OpenSQLiteQueue(*queuePath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open offline queue")
	}
	defer queue.Close()

	pusher := tracker.NewHTTPPusher(*serverURL)
	pusher.Timeout = *pushTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := tracker.New(tracker.Config{
		Source: tracker.NewSerialSource(*port, *baud),
		Pusher: pusher,
		Queue:  queue,
		Token:  *token,
	})
	if err := t.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to start tracking")
	}

	monitor := tracker.NewConnectivityMonitor(tracker.HTTPReachability(*serverURL, 5*time.Second), *checkInterval)
	go tracker.NewSyncer(queue, pusher).Run(ctx, monitor.Run(ctx))

	<-ctx.Done()
	t.Stop()
	t.Wait()
	logrus.Info("tracker stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
