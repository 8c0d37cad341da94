// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardcheck/cmd/app/commands"
	"github.com/allisson/cardcheck/internal/app"
	checkUsecase "github.com/allisson/cardcheck/internal/check/usecase"
	"github.com/allisson/cardcheck/internal/config"
)

const version = "1.0.0"

// withCheckUseCase loads configuration, builds the container and hands the
// check use case to the given function, cleaning up afterwards.
func withCheckUseCase(fn func(useCase checkUsecase.CheckUseCase, logger *slog.Logger) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer commands.CloseContainer(container, logger)

	useCase, err := container.CheckUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize check use case: %w", err)
	}

	return fn(useCase, logger)
}

func main() {
	cmd := &cli.Command{
		Name:    "cardcheck",
		Usage:   "Luhn checksum validation service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:      "check",
				Usage:     "Validate a number and record the outcome",
				ArgsUsage: "<number>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one number argument")
					}
					number := cmd.Args().First()

					return withCheckUseCase(func(useCase checkUsecase.CheckUseCase, logger *slog.Logger) error {
						valid, err := commands.RunCheck(ctx, useCase, logger, os.Stdout, number, cmd.String("format"))
						if err != nil {
							return err
						}
						if !valid {
							// Exit code reflects validity for scripting use
							return cli.Exit("", 1)
						}
						return nil
					})
				},
			},
			{
				Name:  "generate",
				Usage: "Generate a random number that passes validation",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   16,
						Usage:   "Total length of the generated number including the check digit",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withCheckUseCase(func(useCase checkUsecase.CheckUseCase, logger *slog.Logger) error {
						return commands.RunGenerate(ctx, useCase, logger, os.Stdout, cmd.Int("length"), cmd.String("format"))
					})
				},
			},
			{
				Name:  "clean-checks",
				Usage: "Delete check records older than specified days",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "days",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Delete check records older than this many days",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Value:   false,
						Usage:   "Show how many records would be deleted without deleting",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withCheckUseCase(func(useCase checkUsecase.CheckUseCase, logger *slog.Logger) error {
						return commands.RunCleanChecks(
							ctx,
							useCase,
							logger,
							os.Stdout,
							cmd.Int("days"),
							cmd.Bool("dry-run"),
							cmd.String("format"),
						)
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
