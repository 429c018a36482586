package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/solartime"
	"github.com/litescript/solartime/internal/config"
	"github.com/litescript/solartime/internal/logging"
)

// rootOptions holds the persistent flags and what PersistentPreRunE derives
// from them.
type rootOptions struct {
	lat      float64
	lon      float64
	zone     string
	place    string
	places   string
	date     string
	logLevel string

	log    *logging.Logger
	st     *solartime.SolarTime
	where  config.Place
	loc    *time.Location
	at     time.Time
	dateOn bool // --date was given
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "solartime",
		Short:        "Sunrise, sunset, twilight and solar midnight for a place",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.Float64Var(&opts.lat, "lat", 0, "latitude in degrees, North positive")
	f.Float64Var(&opts.lon, "lon", 0, "longitude in degrees, East positive")
	f.StringVar(&opts.zone, "zone", "", "IANA time zone for output (default: the place's zone)")
	f.StringVar(&opts.place, "place", "", "place name from the place book")
	f.StringVar(&opts.places, "places", "", "place book YAML file (default $"+config.EnvPlaces+")")
	f.StringVar(&opts.date, "date", "", "day (YYYY-MM-DD) or instant (RFC3339); default now")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newTimesCmd(opts),
		newStateCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}

	level := o.logLevel
	if level == "" {
		level = env.LogLevel
	}
	o.log = logging.New(logging.ParseLevel(level))
	o.log.SetOutput(cmd.ErrOrStderr())
	o.st = solartime.New(solartime.WithLogger(o.log.Zap()))

	if cmd.Name() == "version" {
		return nil
	}

	var book *config.Book
	path := o.places
	if path == "" {
		path = env.PlacesPath
	}
	if path != "" {
		if book, err = config.Load(path); err != nil {
			return err
		}
		o.log.Debug("loaded %d places from %s", len(book.Places), path)
	}

	sel := config.Selection{Zone: o.zone, Place: o.place}
	flags := cmd.Flags()
	if flags.Changed("lat") {
		sel.Latitude = &o.lat
	}
	if flags.Changed("lon") {
		sel.Longitude = &o.lon
	}

	if o.where, err = config.Resolve(sel, env, book); err != nil {
		return err
	}
	if o.loc, err = o.where.Location(); err != nil {
		return err
	}

	o.dateOn = o.date != ""
	if o.at, err = parseDate(o.date, o.loc, time.Now()); err != nil {
		return err
	}
	o.log.Debug("place %s, zone %s, at %s", o.where, o.loc, o.at.Format(time.RFC3339))
	return nil
}

// parseDate reads a YYYY-MM-DD day, taken at local noon, or an RFC3339
// instant. Either is expressed in loc. Empty means now.
func parseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" {
		return now.In(loc), nil
	}
	if d, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t.In(loc), nil
}

// isTerminal reports whether w is a terminal, for colour output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
