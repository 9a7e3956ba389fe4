package internal

import (
	"comms/repositories"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Time      string
	Direction string
	Author    string
	Text      string
	Origin    string
}

type PageData struct {
	Sessions []string
	Session  string
	Rows     []InspectRow
	// Next is the cursor of the following page, empty on the last one.
	Next string
}

// Inspector renders the archived transcripts as an HTML page, one session
// at a time, newest message first.
type Inspector struct {
	repository repositories.ITranscriptRepository
	log        *slog.Logger
	tmpl       *template.Template
}

func NewInspector(repository repositories.ITranscriptRepository, log *slog.Logger) *Inspector {
	return &Inspector{
		repository: repository,
		log:        log,
		tmpl:       template.Must(template.ParseFS(templatesFS, "inspect.html")),
	}
}

func (i *Inspector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessions, err := i.repository.ListSessions()
	if err != nil {
		i.log.Error("Unable to list sessions", "error", err)
		http.Error(w, "unable to list sessions", http.StatusInternalServerError)
		return
	}

	data := PageData{Sessions: sessions, Session: r.URL.Query().Get("session")}
	if data.Session == "" && len(sessions) > 0 {
		data.Session = sessions[0]
	}

	if data.Session != "" {
		var cursor *string
		if c := r.URL.Query().Get("cursor"); c != "" {
			cursor = &c
		}
		messages, next, err := i.repository.GetMessages(data.Session, cursor)
		if err != nil {
			i.log.Error("Unable to read transcript", "session", data.Session, "error", err)
			http.Error(w, "unable to read transcript", http.StatusInternalServerError)
			return
		}
		data.Rows = lo.Map(messages, func(m repositories.ArchivedMessage, _ int) InspectRow {
			return toRow(m)
		})
		if next != nil {
			data.Next = *next
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := i.tmpl.Execute(w, data); err != nil {
		i.log.Warn("Unable to render inspector page", "error", err)
	}
}

// Serve exposes the inspector on /inspect until ctx is canceled.
func (i *Inspector) Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/inspect", i)
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	i.log.Info("Inspector listening", "url", fmt.Sprintf("http://localhost:%d/inspect", port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func toRow(m repositories.ArchivedMessage) InspectRow {
	direction := "in"
	if m.Outgoing {
		direction = "out"
	}
	author := m.AuthorName
	if author == "" {
		author = m.AuthorID
	}
	return InspectRow{
		Time:      m.At.Format("2006-01-02 15:04:05"),
		Direction: direction,
		Author:    author,
		Text:      m.Text,
		Origin:    m.Origin,
	}
}
