package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/eliqonline"
	"github.com/florianilch/eliqonline/internal/app"
)

func channelFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "channel",
		Usage: "channel ID (0 selects the account default)",
	}
}

func urlCommand() *cli.Command {
	return &cli.Command{
		Name:  "url",
		Usage: "print API request URLs for use with curl or a browser",
		Commands: []*cli.Command{
			{
				Name:   "now",
				Usage:  "URL of the latest power reading",
				Flags:  []cli.Flag{channelFlag()},
				Action: urlNowAction,
			},
			{
				Name:  "data",
				Usage: "URL of an aggregated series",
				Flags: []cli.Flag{
					channelFlag(),
					&cli.StringFlag{
						Name:     "start",
						Usage:    "series start, " + eliqonline.DateLayout,
						Required: true,
					},
					&cli.StringFlag{
						Name:     "end",
						Usage:    "series end, " + eliqonline.DateLayout,
						Required: true,
					},
					&cli.StringFlag{
						Name:  "interval",
						Usage: "aggregation interval (6min|hour|day)",
						Value: string(eliqonline.IntervalHour),
					},
				},
				Action: urlDataAction,
			},
		},
	}
}

func urlNowAction(ctx context.Context, cmd *cli.Command) error {
	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		api, err := a.API(ctx)
		if err != nil {
			return err
		}

		req, err := api.DataNowRequest(ctx, cmd.Int("channel"))
		if err != nil {
			return err
		}
		return printURL(cmd, req)
	})
}

func urlDataAction(ctx context.Context, cmd *cli.Command) error {
	start, err := eliqonline.ToDate(cmd.String("start"))
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := eliqonline.ToDate(cmd.String("end"))
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}

	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		api, err := a.API(ctx)
		if err != nil {
			return err
		}

		req, err := api.DataRequest(ctx, start, end, eliqonline.IntervalType(cmd.String("interval")), cmd.Int("channel"))
		if err != nil {
			return err
		}
		return printURL(cmd, req)
	})
}

func printURL(cmd *cli.Command, req *http.Request) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, req.URL.String())
	return err
}
