package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagArea    = flag.String("area", "", "Area definition file")
	flagLibrary = flag.String("library", "", "Asset library file")
	flagTicks   = flag.Int("ticks", -1, "Number of ticks to simulate (0 runs forever)")
	flagCamera  = flag.String("camera", "", "Camera mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagArea != "" {
		cfg.Data.AreaFile = *flagArea
	}
	if *flagLibrary != "" {
		cfg.Data.LibraryFile = *flagLibrary
	}
	if *flagTicks >= 0 {
		cfg.Simulation.Ticks = *flagTicks
	}
	if *flagCamera != "" {
		cfg.Camera.Mode = *flagCamera
	}
}
