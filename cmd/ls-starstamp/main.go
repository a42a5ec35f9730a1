// Command ls-starstamp renders a celestial cipher stamp: a deterministic
// star-chart SVG hashing one moment at one place.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	_ "github.com/joho/godotenv/autoload"
	"github.com/jonboulle/clockwork"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/litescript/ls-starstamp/internal/astro"
	"github.com/litescript/ls-starstamp/internal/catalog"
	"github.com/litescript/ls-starstamp/internal/config"
	"github.com/litescript/ls-starstamp/internal/ephem"
	"github.com/litescript/ls-starstamp/internal/locate"
	"github.com/litescript/ls-starstamp/internal/logging"
	"github.com/litescript/ls-starstamp/internal/sky"
	"github.com/litescript/ls-starstamp/internal/stamp"
	"github.com/litescript/ls-starstamp/internal/version"
)

// Accepted layouts for --time, tried in order. All interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func main() {
	cmd := &cli.Command{
		Name:    "ls-starstamp",
		Usage:   "Generate a star cipher stamp - a cryptic celestial hash of time and place",
		Version: version.Version,
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				Sources: cli.EnvVars("STARSTAMP_CONFIG"),
			},
			&cli.FloatFlag{
				Name:  "lat",
				Usage: "Latitude in degrees (default: auto-detect)",
			},
			&cli.FloatFlag{
				Name:  "lon",
				Usage: "Longitude in degrees (default: auto-detect)",
			},
			&cli.StringFlag{
				Name:  "site",
				Usage: "Named observer site from the config",
			},
			&cli.StringFlag{
				Name:  "time",
				Usage: "UTC date/time (ISO format, defaults to now)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output SVG path (default: Desktop with timestamp)",
			},
			&cli.FloatFlag{
				Name:  "size",
				Usage: "Stamp edge in pixels (default: 3cm at 300 DPI)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Print projection data as JSON for verification",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("STARSTAMP_LOG_LEVEL"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		if err := config.Load(path, cfg); err != nil {
			return err
		}
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	clock := clockwork.NewRealClock()
	instant, timeSource, err := resolveTime(cmd.String("time"), clock)
	if err != nil {
		return err
	}

	obs, locSource, err := resolveLocation(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}

	stars, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	oracle := ephem.NewMeeus(ephem.WithVSOP87Dir(cfg.VSOP87Dir))
	pipeline := sky.NewPipeline(oracle, stars,
		sky.WithLogger(logger.Named("sky")),
		sky.WithEclipticSteps(cfg.EclipticSteps),
	)

	logger.Info("assembling scene for %s (%.4f, %.4f) at %s",
		obs.Name, obs.LatDeg, obs.LonDeg, instant.Format(time.RFC3339))

	bodies, err := pipeline.Assemble(instant, obs)
	if err != nil {
		return err
	}

	if cmd.Bool("debug") {
		if err := sky.ExportProjection(bodies, obs, instant).WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("write projection data: %w", err)
		}
	}

	size := cmd.Float("size")
	if size <= 0 {
		size = cfg.Size
	}

	output := outputPath(cmd.String("output"), obs.Name, instant)
	if err := stamp.WriteFile(output, bodies, size); err != nil {
		return err
	}

	printSummary(obs, instant, timeSource, locSource, output, len(bodies))
	return nil
}

// resolveTime picks the stamp instant: an explicit --time value, else the
// wall clock. Everything downstream works in UTC.
func resolveTime(arg string, clock clockwork.Clock) (time.Time, string, error) {
	if arg == "" {
		return clock.Now().UTC(), "system clock", nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, arg); err == nil {
			return t.UTC(), "user-provided", nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unrecognized time %q", arg)
}

// resolveLocation picks the observer, in order: explicit coordinates, a
// named config site, IP geolocation, the config's default site.
func resolveLocation(ctx context.Context, cmd *cli.Command, cfg *config.Config, logger *logging.Logger) (astro.Observer, string, error) {
	if cmd.IsSet("lat") && cmd.IsSet("lon") {
		obs := astro.Observer{
			LatDeg: cmd.Float("lat"),
			LonDeg: cmd.Float("lon"),
			Name:   "custom",
		}
		if err := (config.Site{Lat: obs.LatDeg, Lon: obs.LonDeg}).Validate(); err != nil {
			return astro.Observer{}, "", fmt.Errorf("invalid coordinates: %w", err)
		}
		return obs, "user-provided", nil
	}
	if cmd.IsSet("lat") != cmd.IsSet("lon") {
		return astro.Observer{}, "", fmt.Errorf("--lat and --lon must be given together")
	}

	if name := cmd.String("site"); name != "" {
		site, ok := cfg.ResolveSite(name)
		if !ok {
			return astro.Observer{}, "", fmt.Errorf("unknown site %q", name)
		}
		return astro.Observer{LatDeg: site.Lat, LonDeg: site.Lon, Name: name}, "config site", nil
	}

	logger.Info("detecting location via IP...")
	loc, err := locate.NewClient().Lookup(ctx)
	if err == nil {
		return astro.Observer{LatDeg: loc.Lat, LonDeg: loc.Lon, Name: loc.City}, "ip-geolocation", nil
	}
	logger.Warn("could not detect location (%v), using default site", err)

	site, ok := cfg.ResolveSite(cfg.DefaultSite)
	if !ok {
		return astro.Observer{}, "", fmt.Errorf("no location given and no default site configured")
	}
	return astro.Observer{LatDeg: site.Lat, LonDeg: site.Lon, Name: cfg.DefaultSite}, "default site", nil
}

func loadCatalog(cfg *config.Config) ([]catalog.Star, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default()
}

// outputPath derives the destination file. Without an explicit --output the
// stamp lands on the Desktop as cipher_<site>_<yyyymmdd_hhmm>.svg.
func outputPath(output, siteName string, t time.Time) string {
	if output != "" {
		if !strings.HasSuffix(output, ".svg") {
			output += ".svg"
		}
		return output
	}

	base := "."
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, "Desktop")
	}
	name := fmt.Sprintf("cipher_%s_%s.svg", safeName(siteName), t.Format("20060102_1504"))
	return filepath.Join(base, name)
}

// safeName reduces a place name to filename-safe characters.
func safeName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// printSummary echoes the stamp provenance. Styling only on a TTY.
func printSummary(obs astro.Observer, t time.Time, timeSource, locSource, output string, bodies int) {
	label := func(s string) string { return s }
	dim := func(s string) string { return s }
	if term.IsTerminal(int(os.Stdout.Fd())) {
		label = func(s string) string { return labelStyle.Render(s) }
		dim = func(s string) string { return dimStyle.Render(s) }
	}

	fmt.Printf("%s %s %s\n", label("Time  :"), t.Format(time.RFC3339), dim("("+timeSource+")"))
	fmt.Printf("%s %s [%.4f, %.4f] %s\n", label("Place :"), obs.Name, obs.LatDeg, obs.LonDeg, dim("("+locSource+")"))
	fmt.Printf("%s %d projected\n", label("Bodies:"), bodies)
	fmt.Printf("%s %s\n", label("Cipher:"), output)
}
