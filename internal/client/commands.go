package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/ucip-keeper/internal/adapter"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/spf13/cobra"
)

const stdinArg = "-"

// sampleContext is the document written by "encode --sample".
var sampleContext = models.Context{
	Version:   "1.0",
	UserID:    "user-123",
	Timestamp: "2025-07-21T12:00:00Z",
	Consent:   models.Consent{Granted: true, Scopes: []string{"basic"}},
}

func (a *App) newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token <user_id>",
		Short: "Mint a development bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.mintToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user_id>",
		Short: "Print the context document of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverAdapter, err := a.authedAdapter(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data, err := serverAdapter.GetContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), data)
			return nil
		},
	}
}

func (a *App) newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <user_id> [file|-]",
		Short: "Replace the context document of a user with a JSON file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := stdinArg
			if len(args) == 2 {
				source = args[1]
			}
			document, err := readInput(cmd, source)
			if err != nil {
				return err
			}

			serverAdapter, err := a.authedAdapter(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			message, err := serverAdapter.UpdateContext(cmd.Context(), args[0], document)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func (a *App) newEncodeCommand() *cobra.Command {
	var (
		output string
		sample bool
	)

	cmd := &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Encode a JSON context document into its binary protobuf form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := sampleContext
			if !sample {
				source := stdinArg
				if len(args) == 1 {
					source = args[0]
				}
				input, err := readInput(cmd, source)
				if err != nil {
					return err
				}
				if doc, err = a.codec.FromJSON(input); err != nil {
					return err
				}
			}

			binary, err := a.codec.Encode(doc)
			if err != nil {
				return err
			}
			if err = os.WriteFile(output, binary, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			decoded, err := a.codec.Decode(binary)
			if err != nil {
				return err
			}
			rendered, err := a.codec.ToJSON(decoded)
			if err != nil {
				return err
			}

			a.logger.Info().Str("file", output).Int("size", len(binary)).Msg("context encoded")
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "example.pb", "binary output file")
	cmd.Flags().BoolVar(&sample, "sample", false, "encode a built-in sample document instead of reading input")

	return cmd
}

func (a *App) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check that a binary file is a well-formed context document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := stdinArg
			if len(args) == 1 {
				source = args[0]
			}
			input, err := readInput(cmd, source)
			if err != nil {
				return err
			}

			text, err := a.codec.Validate(input)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Validation successful!")
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "client: %s\n", models.OrNotAvailable(a.buildInfo.Version("")))

			serverAdapter, err := a.newAdapter(a.cfg, a.logger)
			if err != nil {
				return err
			}
			version, err := serverAdapter.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "server: %s\n", models.OrNotAvailable(version))
			return nil
		},
	}
}

func (a *App) newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its storage are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverAdapter, err := a.newAdapter(a.cfg, a.logger)
			if err != nil {
				return err
			}
			if err = serverAdapter.CheckHealth(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

// authedAdapter returns an adapter carrying a token for userID: the
// configured token if any, a freshly minted one otherwise.
func (a *App) authedAdapter(ctx context.Context, userID string) (adapter.ServerAdapter, error) {
	serverAdapter, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}

	if serverAdapter.Token() == "" {
		if a.cfg.TokenSignKey == "" {
			return nil, ErrNoToken
		}
		token, err := a.mintToken(ctx, userID)
		if err != nil {
			return nil, err
		}
		serverAdapter.SetToken(token)
	}

	return serverAdapter, nil
}

func (a *App) mintToken(ctx context.Context, userID string) (string, error) {
	if a.cfg.TokenSignKey == "" {
		return "", ErrNoTokenSigner
	}

	authService := service.NewAuthService(config.App{
		TokenSignKey:  a.cfg.TokenSignKey,
		TokenIssuer:   a.cfg.TokenIssuer,
		TokenDuration: a.cfg.TokenDuration,
	}, a.logger)

	token, err := authService.CreateToken(ctx, userID)
	if err != nil {
		return "", err
	}
	return token.SignedString, nil
}

func readInput(cmd *cobra.Command, source string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if source == stdinArg {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	return data, nil
}
