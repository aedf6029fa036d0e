package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/patientcare/auth-service/cmd/app/commands"
	"github.com/patientcare/auth-service/internal/app"
	"github.com/patientcare/auth-service/internal/config"
	userDomain "github.com/patientcare/auth-service/internal/user/domain"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a user that can log in",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email address",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Plaintext password (omit to read it from stdin)",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   userDomain.RoleUser,
					Usage:   "Role embedded in issued tokens (USER or ADMIN)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize user use case: %w", err)
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("role"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
