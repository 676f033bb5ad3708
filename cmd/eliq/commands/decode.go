package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/eliqonline/internal/app"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "convert saved API responses into typed JSON",
		Commands: []*cli.Command{
			{
				Name:      "now",
				Usage:     "decode datanow responses",
				ArgsUsage: "FILE...",
				Action:    decodeAction(app.ResponseKindDataNow),
			},
			{
				Name:      "data",
				Usage:     "decode data responses",
				ArgsUsage: "FILE...",
				Action:    decodeAction(app.ResponseKindData),
			},
		},
	}
}

func decodeAction(kind app.ResponseKind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		paths := cmd.Args().Slice()
		if len(paths) == 0 {
			return errors.New("at least one FILE is required")
		}

		return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
			results, err := a.DecodeFiles(ctx, kind, paths)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "    ")
			for _, r := range results {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
