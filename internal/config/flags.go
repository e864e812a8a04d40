package config

import (
	"flag"
	"os"
	"time"

	"github.com/civicpay/civicpay/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-g int      simulated gateway delay in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here, in either dash spelling.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "--d", "-g", "--g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	gatewayDelay := fs.Int("g", int(cfg.GatewayDelay.Seconds()), "simulated gateway delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.GatewayDelay = time.Duration(*gatewayDelay) * time.Second
}
