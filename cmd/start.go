package cmd

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/config"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/runner"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/term"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 --ips 700
func Start(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger := config.CreateLogger(cfg.Debug, cfg.Quiet)

	romPath := args[0]
	emu, err := cpu.LoadFile(romPath, cpu.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("starting the emulator: %w", err)
	}
	logger.Info("ROM loaded",
		log.String("file", romPath),
		log.String("frontend", cfg.Frontend))

	beeper := newBeeper(logger, cfg)
	if beeper != nil {
		defer beeper.Close()
	}

	if cfg.Frontend == config.FrontendTerm {
		return runTerminal(logger, cfg, emu, beeper)
	}

	// window calls must happen on the main thread, which pixelgl.Run owns
	pixelgl.Run(func() {
		err = runWindow(logger, cfg, emu, beeper)
	})
	return err
}

func runWindow(logger *log.Logger, cfg config.Config, emu *cpu.EMU, beeper *audio.Beeper) error {
	win, err := screen.NewWindow("Chyp8", cfg.Scale, screen.DefaultKeyMap())
	if err != nil {
		return err
	}
	defer win.Destroy()

	return runner.New(logger, cfg, emu, win, beeperOrNil(beeper)).Run(app.Context())
}

func runTerminal(logger *log.Logger, cfg config.Config, emu *cpu.EMU, beeper *audio.Beeper) error {
	t, err := term.Open()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer func() {
		if err := t.Close(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	return runner.New(logger, cfg, emu, t, beeperOrNil(beeper)).Run(app.Context())
}

func newBeeper(logger *log.Logger, cfg config.Config) *audio.Beeper {
	if cfg.Mute {
		return nil
	}
	beeper, err := audio.NewBeeper()
	if err != nil {
		logger.Error("Audio disabled", log.Err(err))
		return nil
	}
	return beeper
}

// beeperOrNil avoids handing the runner a non-nil interface holding a nil
// pointer.
func beeperOrNil(beeper *audio.Beeper) runner.Beeper {
	if beeper == nil {
		return nil
	}
	return beeper
}

func init() {
	rootCmd.AddCommand(startCmd)

	d := config.Default()
	flags := startCmd.Flags()
	flags.IntP(config.KeyRefresh, "r", d.Refresh, "sets the refresh rate of the display in Hz")
	flags.Int(config.KeyIPS, d.IPS, "instructions executed per second")
	flags.IntP(config.KeyScale, "s", d.Scale, "window pixels per Chip-8 pixel")
	flags.StringP(config.KeyFrontend, "f", d.Frontend, "frontend to use: window or term")
	flags.Bool(config.KeyMute, d.Mute, "disable the sound timer beep")

	for _, key := range []string{config.KeyRefresh, config.KeyIPS, config.KeyScale, config.KeyFrontend, config.KeyMute} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}
