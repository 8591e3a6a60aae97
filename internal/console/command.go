package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/mapty/internal/form"
	"github.com/2beens/mapty/internal/workout"
)

var ErrUnknownCommand = errors.New("unknown command")

type CommandKind int

const (
	CmdClick CommandKind = iota + 1
	CmdType
	CmdSubmit
	CmdOpen
	CmdList
	CmdHelp
	CmdQuit
)

type Command struct {
	Kind   CommandKind
	Coords workout.Coords
	Type   workout.Type
	Input  form.Input
	ID     string
}

const usage = `commands:
  click LAT LNG             open the form at a map position
  type running|cycling      switch the form type
  submit DIST DUR EXTRA     add the workout (EXTRA is cadence or elevation gain)
  open ID                   move the map to a workout
  list                      show all workouts
  quit`

// ParseCommand parses one input line.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "click":
		if len(args) != 2 {
			return Command{}, errors.New("usage: click LAT LNG")
		}
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Command{}, fmt.Errorf("bad latitude [%s]", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Command{}, fmt.Errorf("bad longitude [%s]", args[1])
		}
		return Command{Kind: CmdClick, Coords: workout.Coords{Lat: lat, Lng: lng}}, nil

	case "type":
		if len(args) != 1 {
			return Command{}, errors.New("usage: type running|cycling")
		}
		t, err := workout.ParseType(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdType, Type: t}, nil

	case "submit":
		if len(args) != 3 {
			return Command{}, errors.New("usage: submit DIST DUR EXTRA")
		}
		// raw text, the form does the validation
		return Command{Kind: CmdSubmit, Input: form.Input{
			Distance:  args[0],
			Duration:  args[1],
			Cadence:   args[2],
			Elevation: args[2],
		}}, nil

	case "open":
		if len(args) != 1 {
			return Command{}, errors.New("usage: open ID")
		}
		return Command{Kind: CmdOpen, ID: args[0]}, nil

	case "list", "ls":
		return Command{Kind: CmdList}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}, nil
	}

	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}
