package main

import (
	"comms/internal"
	"comms/repositories"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"INFO"`
	LimitMessages  int    `envconfig:"LIMIT_MESSAGES" default:"50"`
	InspectPort    int    `envconfig:"INSPECT_PORT" default:"8081"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}

	dbPath := flag.String("db", cfg.BadgerFilepath, "Path to badger DB")
	sessionKey := flag.String("session", "", "Session to dump, all sessions are listed when empty")
	serve := flag.Bool("serve", false, "Serve the HTML inspector instead of printing")
	flag.Parse()

	log := logs.GetLoggerFromString(cfg.LogLevel)

	// BypassLockGuard lets the dump run next to a live commsd.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	repository := repositories.NewTranscriptRepository(db, log, &cfg.LimitMessages)

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return internal.NewInspector(repository, log).Serve(ctx, cfg.InspectPort)
	}
	if *sessionKey == "" {
		return listSessions(repository)
	}
	return dumpSession(repository, *sessionKey)
}

func listSessions(repository repositories.ITranscriptRepository) error {
	sessions, err := repository.ListSessions()
	if err != nil {
		return err
	}
	table := newTable([]string{"Session"})
	for _, s := range sessions {
		table.Append([]string{s})
	}
	table.Render()
	return nil
}

func dumpSession(repository repositories.ITranscriptRepository, sessionKey string) error {
	messages, _, err := repository.GetMessages(sessionKey, nil)
	if err != nil {
		return err
	}
	table := newTable([]string{"Time", "Dir", "Author", "Message", "Origin"})
	// Pages come newest first.
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		direction := "in"
		if m.Outgoing {
			direction = "out"
		}
		author := m.AuthorName
		if author == "" {
			author = m.AuthorID
		}
		table.Append([]string{m.At.Format("2006-01-02 15:04:05"), direction, author, m.Text, m.Origin})
	}
	table.Render()
	return nil
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
