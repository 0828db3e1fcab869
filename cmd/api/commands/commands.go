package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/facilitydesk/core/internal/adapters/repository"
	"github.com/facilitydesk/core/internal/application/services"
	"github.com/facilitydesk/core/internal/infrastructure/config"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
	"github.com/facilitydesk/core/internal/infrastructure/server"
)

// Build information, overridden with -ldflags
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "development"
)

// configFile is shared by every command through the root's persistent flag
var configFile string

// AddConfigFlag registers --config on the root command
func AddConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional config file (yaml, json, toml)")
}

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the FacilityDesk API server",
		Long:  "Start the FacilityDesk API server with all configured routes and middleware",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

// NewTokenCommand creates the token command with issue and inspect subcommands
func NewTokenCommand() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Access token commands",
		Long:  "Issue and inspect access tokens signed with the configured secret",
	}

	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a token for a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			if subject == "" {
				return errors.New("subject is required")
			}

			authService, err := newAuthService()
			if err != nil {
				return err
			}

			token, err := authService.IssueToken(map[string]interface{}{"sub": subject})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issueCmd.Flags().String("subject", "", "Token subject, usually an email (required)")

	inspectCmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Verify a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authService, err := newAuthService()
			if err != nil {
				return err
			}

			claims, err := authService.ValidateToken(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Subject: %s\n", claims.Subject)
			for k, v := range claims.Raw {
				if k == "sub" {
					continue
				}
				fmt.Fprintf(out, "  %s: %v\n", k, v)
			}
			return nil
		},
	}

	tokenCmd.AddCommand(issueCmd, inspectCmd)
	return tokenCmd
}

// NewHashPasswordCommand creates the hash-password command
func NewHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for AUTH_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, err := services.HashPassword(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print FacilityDesk version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "FacilityDesk Core v%s\n", Version)
			fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	srv, err := server.New(cfg, repository.NewStaticRepository(), appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Infow("Starting FacilityDesk API server",
		"address", cfg.Server.Address(),
		"environment", cfg.App.Environment,
		"version", cfg.App.Version,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	appLogger.Info("Server stopped")
	return nil
}

func newAuthService() (*services.AuthService, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return services.NewAuthService(repository.NewAccountRepository(cfg.Auth), cfg.JWT, logger.NewNop())
}
