package main

import (
	"bufio"
	"comms/backend/amqpworld"
	"comms/backend/loopback"
	"comms/contract"
	"comms/im"
	"comms/internal"
	"comms/projection"
	"comms/repositories"
	"comms/runtime"
	"comms/runtime/workers"
	"comms/session"
	"comms/sink"
	"comms/world"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the provider graph and keeps the deferred cleanups in one
// place; main only reports the error.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Transcript archive (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := repositories.NewTranscriptRepository(db, log, config.LimitMessages)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Owner loop under supervision
	loop := runtime.NewLoop(log, config.LoopBufferSize)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(loop, workers.NewBacklogMonitor(log, loop, config.BacklogThreshold, config.BacklogInterval))

	timeline := projection.NewTimeline()
	progress := newLifecycle()
	opts := session.Options{
		SinkTimeout:    config.SinkTimeout,
		PendingTimeout: config.PendingTimeout,
		Observers: []contract.EventSink{
			sink.NewArchiveSink(repository, log),
			timeline,
			newPrinter(os.Stdout),
			progress,
		},
	}

	provider, err := newProvider(config, log, loop, sup, opts)
	if err != nil {
		return err
	}

	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()
	defer func() {
		_ = provider.Dispose()
		stop()
		<-supervised
		log.Info("Program stopped cleanly")
	}()

	// 5. Provider → connection → session
	if err := progress.providerReady(ctx); err != nil {
		return err
	}
	connection, err := provider.OpenConnection(config.Credentials())
	if err != nil {
		return fmt.Errorf("unable to open connection: %w", err)
	}
	if err := progress.connectionReady(ctx, connection.ID()); err != nil {
		return err
	}
	conversation, err := connection.OpenSession(config.Kind(), config.Peer)
	if err != nil {
		return fmt.Errorf("unable to open session with %s: %w", config.Peer, err)
	}
	if err := progress.sessionReady(ctx, conversation.ID()); err != nil {
		return err
	}

	// 6. Console
	lines := readLines(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down gracefully...")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := handle(line, conversation, timeline); quit {
				return nil
			}
		}
	}
}

func newProvider(config internal.Config, log *slog.Logger, loop *runtime.Loop, sup *workers.Supervisor, opts session.Options) (contract.ConnectionProvider, error) {
	switch config.Backend {
	case internal.BackendAMQP:
		transport, err := amqpworld.Dial(amqpworld.Config{
			URL:         config.AmqpURL,
			Exchange:    config.AmqpExchange,
			DialTimeout: config.AmqpDialTimeout,
			Avatar:      config.Username,
		}, log)
		if err != nil {
			return nil, err
		}
		sup.Add(transport)
		return world.NewProvider(transport, loop, log, opts), nil
	default:
		manager := loopback.NewManager(config.Backend, config.Protocol)
		manager.Echo(config.Echo)
		return im.NewProvider(manager, loop, log, opts), nil
	}
}

// handle returns true when the user asked to leave.
func handle(line string, conversation contract.Session, timeline *projection.Timeline) bool {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case "/quit":
		_ = conversation.Close()
		return true
	case "/history":
		printHistory(os.Stdout, timeline.Lines(conversation.ID()))
		return false
	case "/who":
		printParticipants(os.Stdout, conversation.Participants())
		return false
	}
	if err := conversation.Send(line); err != nil {
		printError(os.Stdout, err)
	}
	return false
}

func readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
