package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"marketdash/config"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"

	"github.com/spf13/cobra"
)

const passwordEnv = "MARKETDASH_PASSWORD"

var errNotSignedIn = errors.New("not signed in, run dashctl login first")

// cli holds the flags and the app shared by every subcommand.
type cli struct {
	loadConfig func() (*config.Config, error)

	baseURL string
	dbPath  string
	timeout time.Duration
	verbose bool

	app *app
}

func newRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	c := &cli{loadConfig: loadConfig}

	rootCmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Marketplace dashboard session tool",
		Long: `dashctl signs in to the marketplace API, keeps the session in the local
store shared with the dashboard server, and reports whether the signed-in
merchant may operate their store.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.teardown()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "Marketplace API base URL (overrides api.baseUrl)")
	rootCmd.PersistentFlags().StringVar(&c.dbPath, "db", "", "Credential store path (overrides storage.dsn)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log to stderr")

	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect the merchant's store",
	}
	storeCmd.AddCommand(c.storeResolveCmd())

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse the store's categories",
	}
	categoriesCmd.AddCommand(c.categoriesListCmd())

	rootCmd.AddCommand(c.loginCmd())
	rootCmd.AddCommand(c.logoutCmd())
	rootCmd.AddCommand(c.whoamiCmd())
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(categoriesCmd)

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if c.baseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(c.baseURL, "/")
	}
	if c.dbPath != "" {
		cfg.Storage.DSN = c.dbPath
	}

	logOut := io.Discard
	if c.verbose {
		logOut = cmd.ErrOrStderr()
	}

	c.app, err = newApp(cfg, logOut)

	return err
}

func (c *cli) teardown() error {
	if c.app == nil {
		return nil
	}

	return c.app.Close()
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

// restore revives the stored session; commands that need one fail without it.
func (c *cli) restore(ctx context.Context) (usecase.SessionSnapshot, error) {
	snap, err := c.app.auth.Restore(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return snap, errors.Wrap(errNotSignedIn, "stored session expired")
		}

		return snap, err
	}
	if !snap.Authenticated() {
		return snap, errNotSignedIn
	}

	return snap, nil
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and resolve the merchant's store",
		Long: `Sign in with email and password. The password is read from --password or
the ` + passwordEnv + ` environment variable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			snap, err := c.app.auth.Login(ctx, &usecase.LoginInput{Email: email, Password: password})
			if err != nil {
				return err
			}

			printSnapshot(cmd.OutOrStdout(), snap)

			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			// restore only to load the token the upstream sign out needs
			if _, err := c.app.auth.Restore(ctx); err != nil {
				c.app.logger.Debug("Restore before logout failed", "error", err)
			}
			if err := c.app.auth.Logout(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")

			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session and its store access verdict",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			snap, err := c.restore(ctx)
			if err != nil {
				return err
			}

			printSnapshot(cmd.OutOrStdout(), snap)

			return nil
		},
	}
}

func (c *cli) storeResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Re-run store resolution for the signed-in merchant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.restore(ctx); err != nil {
				return err
			}

			snap, err := c.app.auth.RefreshStore(ctx)
			if err != nil {
				return err
			}

			printSnapshot(cmd.OutOrStdout(), snap)
			if res := snap.Resolution; res.Strategy != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "resolution: %s via %s after %d attempt(s)\n", res.Outcome, res.Strategy, res.Attempts)
			}

			return nil
		},
	}
}

func (c *cli) categoriesListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the category tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.restore(ctx); err != nil {
				return err
			}

			rows, err := c.app.categories.Flat(ctx, filter)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories")

				return nil
			}

			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", strings.Repeat("  ", row.Depth), row.Category.Name)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only show categories whose name contains this text, with their ancestors")

	return cmd
}

func printSnapshot(w io.Writer, snap usecase.SessionSnapshot) {
	if !snap.Authenticated() {
		fmt.Fprintln(w, "Not signed in")

		return
	}

	fmt.Fprintf(w, "user: %s (%s)\n", snap.Session.Email, snap.Session.Role)
	if snap.Store != nil {
		fmt.Fprintf(w, "store: %s [%s]\n", snap.Store.Name, snap.Store.Status)
	}

	verdict := string(snap.Verdict.Kind)
	if snap.Verdict.Reason != "" {
		verdict += " (" + snap.Verdict.Reason + ")"
	}
	fmt.Fprintf(w, "store access: %s\n", verdict)
}
