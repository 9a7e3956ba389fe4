package main

import (
	"comms/domain"
	"comms/domain/event"
	"comms/projection"
	"context"
	"fmt"
	"io"

	"github.com/gookit/color"
)

const clock = "15:04:05"

// printer renders the observed events on the console.
type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) Consume(_ context.Context, e event.Event) error {
	switch e := e.(type) {
	case event.MessageReceived:
		_, _ = fmt.Fprintln(p.out, color.Cyan.Sprintf("[%s] %s: %s",
			e.Message.Timestamp.Format(clock), e.Message.AuthorName(), e.Message.Text))
	case event.MessageSent:
		_, _ = fmt.Fprintln(p.out, color.Green.Sprintf("[%s] %s: %s",
			e.Message.Timestamp.Format(clock), e.Message.AuthorName(), e.Message.Text))
	case event.MessageSendFailed:
		_, _ = fmt.Fprintln(p.out, color.Red.Sprintf("! message not delivered: %v", e.Err))
	case event.ParticipantLeft:
		_, _ = fmt.Fprintln(p.out, color.Gray.Sprintf("* %s left", e.Participant.DisplayName()))
	case event.SessionReady:
		_, _ = fmt.Fprintln(p.out, color.Yellow.Sprintf("* session ready (/history, /who, /quit)"))
	case event.SessionFailed:
		_, _ = fmt.Fprintln(p.out, color.Red.Sprintf("* session failed: %v", e.Err))
	case event.SessionClosed:
		_, _ = fmt.Fprintln(p.out, color.Yellow.Sprintf("* session closed"))
	case event.ConnectionFailed:
		_, _ = fmt.Fprintln(p.out, color.Red.Sprintf("* connection failed: %v", e.Err))
	case event.ProtocolListUpdated:
		_, _ = fmt.Fprintln(p.out, color.Gray.Sprintf("* %s speaks %v", e.Provider, e.Protocols))
	}
	return nil
}

func printHistory(out io.Writer, lines []projection.Line) {
	for _, line := range lines {
		text := fmt.Sprintf("[%s] %s: %s", line.At.Format(clock), line.Author, line.Text)
		switch {
		case line.Failed:
			_, _ = fmt.Fprintln(out, color.Red.Sprint(text+" (not delivered)"))
		case line.Outgoing:
			_, _ = fmt.Fprintln(out, color.Green.Sprint(text))
		default:
			_, _ = fmt.Fprintln(out, color.Cyan.Sprint(text))
		}
	}
}

func printParticipants(out io.Writer, participants []*domain.Participant) {
	for _, participant := range participants {
		_, _ = fmt.Fprintln(out, color.Gray.Sprintf("- %s (%s)", participant.DisplayName(), participant.ID()))
	}
}

func printError(out io.Writer, err error) {
	_, _ = fmt.Fprintln(out, color.Red.Sprintf("! %v", err))
}
