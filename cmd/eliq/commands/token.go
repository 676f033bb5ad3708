package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/florianilch/eliqonline/internal/app"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "manage the stored access token",
		Commands: []*cli.Command{
			{
				Name:        "set",
				Usage:       "store the access token read from stdin",
				Description: "Get your access token from https://my.eliq.se/user/settings/api.",
				Action:      tokenSetAction,
			},
		},
	}
}

func tokenSetAction(ctx context.Context, cmd *cli.Command) error {
	token, err := readToken(cmd.Root().Reader, cmd.Root().ErrWriter)
	if err != nil {
		return fmt.Errorf("reading access token: %w", err)
	}

	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		return a.StoreToken(ctx, token)
	})
}

// readToken reads one line. A terminal on stdin gets a prompt without echo.
func readToken(r io.Reader, prompt io.Writer) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Access token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	// Only the line terminator (\n or \r\n) is dropped, a lone trailing \r stays
	if trimmed, ok := strings.CutSuffix(line, "\r\n"); ok {
		line = trimmed
	} else {
		line = strings.TrimSuffix(line, "\n")
	}
	if line == "" {
		return "", errors.New("no access token on stdin")
	}
	return line, nil
}
