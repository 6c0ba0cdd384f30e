package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pendulum-clock/internal/audio"
	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/game"
	"github.com/iburimskiy/pendulum-clock/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pendulum-clock:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pendulum-clock", flag.ContinueOnError)
	configPath := fs.String("config", "", "HCL configuration file")
	sound := fs.String("sound", "", "tick sound (.wav, .mp3 or .flac), default "+config.DefaultSoundFile+"; empty uses a synthesized click")
	chooseSound := fs.Bool("choose-sound", false, "pick the tick sound in a file dialog")
	mute := fs.Bool("mute", false, "start with the tick sound muted")
	volume := fs.Float64("volume", -1, "tick volume in [0, 1]")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logJSON := fs.Bool("log-json", false, "log as JSON")
	snapshot := fs.String("snapshot", "", "write the current frame to this SVG file and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			cfg.SoundFile = *sound
		case "mute":
			cfg.Muted = *mute
		case "volume":
			cfg.Volume = *volume
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-json":
			cfg.LogJSON = *logJSON
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level, _ = logging.ParseLevel(cfg.LogLevel)
	logCfg.JSON = cfg.LogJSON
	log := logging.New(logCfg)

	if *snapshot != "" {
		return writeSnapshot(*snapshot, cfg, log)
	}

	if *chooseSound {
		path, err := chooseSoundFile()
		if err != nil {
			return err
		}
		if path != "" {
			cfg.SoundFile = path
		}
	}

	player := audio.NewPlayer(cfg.SoundFile,
		audio.WithVolume(cfg.Volume),
		audio.WithMuted(cfg.Muted),
		audio.WithLogger(log.WithComponent("audio")),
	)
	if cfg.SoundFile != "" {
		log.Info("tick sound", "path", cfg.SoundFile)
	}

	g, err := game.NewGame(cfg, player, log.WithComponent("game"))
	if err != nil {
		return err
	}
	return g.Run()
}

// chooseSoundFile asks for a tick asset. Cancelling returns "".
func chooseSoundFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Tick Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func writeSnapshot(path string, cfg config.Config, log *logging.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := game.WriteSnapshot(f, cfg, clockwork.NewRealClock()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("snapshot written", "path", path)
	return nil
}
