package console

import (
	"context"
	"errors"

	"github.com/2beens/mapty/internal/app"
	"github.com/2beens/mapty/internal/form"
	"github.com/2beens/mapty/internal/workout"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=console_test

// Controller is the part of the app a console session drives.
type Controller interface {
	ChangeType(t workout.Type)
	Submit(ctx context.Context, input form.Input) error
	ActivateEntry(id string) error
	Workouts() []workout.Record
}

type Session struct {
	ctrl Controller
	m    *Map
	p    *Printer
}

func NewSession(ctrl Controller, m *Map, p *Printer) *Session {
	return &Session{
		ctrl: ctrl,
		m:    m,
		p:    p,
	}
}

// Execute runs one input line. It reports false once the user asked to quit.
func (s *Session) Execute(ctx context.Context, line string) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		s.p.Printf("%s", err)
		if errors.Is(err, ErrUnknownCommand) {
			s.p.Printf("%s", usage)
		}
		return true
	}

	switch cmd.Kind {
	case CmdClick:
		if err := s.m.Click(cmd.Coords); err != nil {
			s.p.Printf("%s, waiting for your position", err)
		}
	case CmdType:
		s.ctrl.ChangeType(cmd.Type)
	case CmdSubmit:
		err := s.ctrl.Submit(ctx, cmd.Input)
		switch {
		case err == nil:
		case errors.Is(err, app.ErrFormNotOpen):
			s.p.Printf("click on the map first")
		case errors.Is(err, workout.ErrValidation):
			log.Debugf("submit rejected: %s", err)
		default:
			s.p.Printf("submit failed: %s", err)
		}
	case CmdOpen:
		if err := s.ctrl.ActivateEntry(cmd.ID); err != nil {
			s.p.Printf("open [%s]: %s", cmd.ID, err)
		}
	case CmdList:
		workouts := s.ctrl.Workouts()
		if len(workouts) == 0 {
			s.p.Printf("no workouts yet")
		}
		for _, r := range workouts {
			s.p.Printf("%s", app.EntryFor(r))
		}
	case CmdHelp:
		s.p.Printf("%s", usage)
	case CmdQuit:
		return false
	}

	return true
}
