package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"tourism-itinerary-service/internal/app"
	"tourism-itinerary-service/internal/config"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/services"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "tripctl",
		Usage: "plan route itineraries and local schedules from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "offline", Usage: "use built-in offline providers instead of ORS and OpenTripMap"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log provider calls to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "plan a driving itinerary between two places",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true},
					&cli.StringFlag{Name: "to", Required: true},
					&cli.Float64Flag{Name: "hours", Required: true, Usage: "total available time in hours"},
					&cli.StringFlag{Name: "mood", Value: string(domain.MoodNeutral)},
				},
				Action: func(c *cli.Context) error {
					mood, ok := domain.ParseMood(c.String("mood"))
					if !ok {
						return cli.Exit(fmt.Sprintf("unknown mood %q", c.String("mood")), 2)
					}

					svc, err := buildServices(c)
					if err != nil {
						return err
					}
					defer svc.Close()

					plan, err := svc.Planner.PlanItinerary(c.Context, services.PlanItineraryRequest{
						StartLocation:        c.String("from"),
						EndLocation:          c.String("to"),
						TotalAvailableTimeHr: c.Float64("hours"),
						Mood:                 mood,
					})
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return printJSON(out, plan)
				},
			},
			{
				Name:  "schedule",
				Usage: "pack catalog places of a city into a time window",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "city", Required: true},
					&cli.StringFlag{Name: "start", Usage: "starting location within the city"},
					&cli.IntFlag{Name: "minutes", Value: 60},
					&cli.StringFlag{Name: "mood", Value: string(domain.MoodNeutral)},
					&cli.StringSliceFlag{Name: "interest"},
				},
				Action: func(c *cli.Context) error {
					svc, err := buildServices(c)
					if err != nil {
						return err
					}
					defer svc.Close()

					sched, err := svc.Scheduler.ScheduleLocalTrip(c.Context, services.ScheduleRequest{
						City:                 c.String("city"),
						StartingLocation:     c.String("start"),
						TotalDurationMinutes: c.Int("minutes"),
						Mood:                 domain.NormalizeMood(c.String("mood")),
						Interests:            c.StringSlice("interest"),
					})
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return printJSON(out, sched)
				},
			},
		},
	}
}

func buildServices(c *cli.Context) (*app.Services, error) {
	if c.Bool("verbose") {
		logger, err := obs.NewLogger("development", "tripctl")
		if err != nil {
			return nil, err
		}
		obs.SetLogger(logger)
	}

	if c.Bool("offline") {
		return app.BuildOffline(nil)
	}

	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.Build(c.Context, cfg)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
