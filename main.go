package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/headless"
	"github.com/automoto/rocketbox/scenes"
	"github.com/automoto/rocketbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug   bool     `help:"Whether to enable debug logging."`
	Configs []string `name:"config" help:"Configuration files applied over the defaults, in order." type:"existingfile"`

	Play struct {
	} `cmd:"" default:"1" help:"Open the sandbox in a window."`

	Sim struct {
		Scenario string `help:"YAML input scenario to replay." type:"existingfile"`
		Frames   uint64 `help:"Number of frames to run. Defaults to the scenario length."`
		Tickrate int    `help:"Ticks per second." default:"60"`
		Realtime bool   `help:"Tick on a wall clock instead of as fast as possible."`
	} `cmd:"" help:"Run the sandbox headless."`

	Config struct {
	} `cmd:"" help:"Write the effective configuration to standard output."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("rocketbox"),
		kong.Description("a first-person physics sandbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if _, err := cfg.Load(CLI.Configs...); err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	var err error
	switch ctx.Command() {
	case "play":
		err = playCommand()
	case "sim":
		err = simCommand()
	case "config":
		err = configCommand()
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msg(ctx.Command() + " failed")
	}
}

func playCommand() error {
	sandbox, err := scenes.NewDefaultSandbox(&windowInput{})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(NewGame(sandbox))
}

func simCommand() error {
	opts := CLI.Sim

	var src systems.InputSource = systems.InputSourceFunc(func() components.InputSample {
		return components.InputSample{Dt: 1 / float32(opts.Tickrate)}
	})
	frames := opts.Frames

	if opts.Scenario != "" {
		script, err := headless.LoadScript(opts.Scenario)
		if err != nil {
			return err
		}
		src = script
		if frames == 0 {
			frames = uint64(script.Len())
		}
	}
	if frames == 0 && !opts.Realtime {
		return fmt.Errorf("sim needs --frames or --scenario unless --realtime is set")
	}

	sandbox, err := scenes.NewDefaultSandbox(src)
	if err != nil {
		return err
	}

	loop := headless.NewGameLoop(sandbox, opts.Tickrate).
		WithFrameLimit(frames).
		WithRealtime(opts.Realtime)
	loop.Run()

	st := sandbox.Stats()
	log.Info().
		Uint64("frames", st.Frame).
		Bool("paused", st.Paused).
		Bool("grounded", st.Grounded).
		Float32("x", st.Position.X()).
		Float32("y", st.Position.Y()).
		Float32("z", st.Position.Z()).
		Int("props", st.LiveProps).
		Int("blasts", st.Blasts).
		Msg("Simulation finished")
	return nil
}

func configCommand() error {
	data, err := cfg.Current().Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
