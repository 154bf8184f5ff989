// Command sonar-cli runs a session headless for a fixed number of ticks and
// writes a JSON report to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go-sonar/internal/app"
	"go-sonar/internal/config"
	"go-sonar/internal/log"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	ticks := flag.Int("ticks", 1200, "number of ticks to simulate")
	pingAt := flag.Int("ping-at", -1, "issue a manual ping before this tick (-1 disables)")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
		os.Exit(1)
	}
	if *ticks <= 0 {
		fmt.Fprintf(os.Stderr, "error: -ticks must be positive, got %d\n", *ticks)
		os.Exit(1)
	}
	log.Init(cfg.Log.Level)

	session, err := app.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *ticks; i++ {
		if i == *pingAt {
			session.Ping()
		}
		session.Update()
	}
	log.Info("run complete", "ticks", *ticks, "danger_zones", session.Memory.Len())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(session.Report()); err != nil {
		fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
		os.Exit(1)
	}
}
