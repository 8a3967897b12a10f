package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pokerteach/suggest/internal/game"
	"github.com/pokerteach/suggest/internal/suggest"
	"github.com/pokerteach/suggest/internal/tables"
	"github.com/pokerteach/suggest/poker"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Snapshot string `arg:"" help:"Hand snapshot JSON file ('-' for stdin)" default:"-"`
	Actor    int    `short:"a" help:"Seat to suggest for (defaults to the to-act seat)" default:"-1"`
	Configs  string `short:"c" help:"Strategy table directory" default:"configs" type:"path"`
	Profile  string `help:"Config profile name reported in debug output" default:"builtin"`
	Policy   string `help:"Policy version override (v0|v1|v1_preflop|auto)"`
	Strategy string `help:"Flop strategy override (loose|medium|tight)"`
	Debug    bool   `short:"d" help:"Attach the diagnostic meta block"`
	Verbose  bool   `help:"Log at debug level"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("suggest-eval"),
		kong.Description("Evaluate the suggest engine against a hand snapshot"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	gs, err := readSnapshot(cli.Snapshot)
	if err != nil {
		return err
	}
	if gs.HandID == "" {
		gs.HandID = uuid.NewString()
	}

	actor := cli.Actor
	if actor < 0 {
		actor = game.ToActIndex(gs)
	}

	env := suggest.EnvFromOS()
	if cli.Policy != "" {
		env.PolicyVersion = cli.Policy
	}
	if cli.Strategy != "" {
		env.Strategy = cli.Strategy
	}
	if cli.Debug {
		env.Debug = true
	}

	if _, notes, ok := poker.AnnotateHand(gs.Players[actor].Hole); ok {
		for _, n := range notes {
			logger.Debug("hand note", "code", n.Code, "severity", n.Severity, "msg", n.Msg)
		}
	}

	store := tables.NewStore(cli.Configs, tables.WithProfile(cli.Profile))
	svc := suggest.NewService(store, logger)

	sug, err := svc.Suggest(gs, actor, env)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}

	out, err := json.MarshalIndent(sug, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readSnapshot(path string) (*game.State, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var gs game.State
	if err := json.Unmarshal(raw, &gs); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &gs, nil
}
