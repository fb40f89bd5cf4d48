package login

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/devflowinc/trieve-CLI/internal/api"
	"github.com/devflowinc/trieve-CLI/internal/auth"
	"github.com/devflowinc/trieve-CLI/internal/config"
	"github.com/devflowinc/trieve-CLI/internal/profile"
	"github.com/devflowinc/trieve-CLI/internal/prompt"
	"github.com/devflowinc/trieve-CLI/internal/spinner"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/oklog/run"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func New(apiConfig *config.API) *cobra.Command {
	cfg := &config.Login{API: apiConfig}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Trieve and store the credentials as a profile",
		Long: `Log in to Trieve. Without --api-key, a browser window authenticates
against the dashboard and delivers a fresh API key back to the CLI. The
resulting credentials are written to the profile store and the new
profile becomes the active one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return login(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cfg.AddFlags(cmd)

	return cmd
}

func login(ctx context.Context, cfg *config.Login, in io.Reader, out io.Writer) error {
	if err := cfg.UnauthInitAPIConfig(); err != nil {
		return err
	}
	// Login exists to write the profile store, so it cannot run with
	// profiles disabled.
	if err := cfg.EnsureProfilesEnabled(); err != nil {
		return err
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		key, err := waitForDashboardKey(ctx, cfg, out)
		if err != nil {
			return err
		}
		apiKey = key
	}

	// The key carries no organization; ask the API who owns it.
	client := api.NewClient(cfg.APIURL, apiKey, "", cfg.Logger())
	user, err := client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("verifying the API key: %w", err)
	}

	p := prompt.New(in, out)

	orgID := viper.GetString("org_id")
	if orgID == "" {
		orgID, err = chooseOrganization(user, p)
		if err != nil {
			return err
		}
	} else if _, err := uuid.Parse(orgID); err != nil {
		return fmt.Errorf("invalid organization ID %q: %v", orgID, err)
	}

	name := cfg.ProfileName
	if name == "" {
		name, err = p.Text("Profile name", "Switch between profiles with 'trieve profile switch'.", "default")
		if err != nil {
			return err
		}
	}

	storage := profile.GetStorage()
	st, err := storage.Load()
	if err != nil {
		return err
	}
	st.Upsert(profile.Profile{
		Name:   name,
		APIKey: apiKey,
		OrgID:  orgID,
		APIURL: cfg.APIURL,
	}, true)
	if err := storage.Save(st); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Logged in as %s (profile %q, organization %s)\n",
		green("✓"), user.Email, name, orgID)
	return nil
}

// waitForDashboardKey runs the loopback callback server until the
// dashboard redirect delivers an API key, the context ends, or the user
// interrupts.
func waitForDashboardKey(ctx context.Context, cfg *config.Login, out io.Writer) (string, error) {
	srv, err := auth.NewServer(cfg.Logger())
	if err != nil {
		return "", err
	}

	loginURL := config.DefaultDashboardURL + "/auth/cli"
	fmt.Fprintf(out, "To authenticate, visit: %s\n\n", loginURL)
	if err := browse(loginURL); err != nil {
		cfg.Logger().Debug("couldn't open a browser", "error", err)
	}

	spin := spinner.Start(out, "Waiting for login")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var apiKey string
	var g run.Group
	g.Add(srv.Start, func(error) { srv.Shutdown(context.Background()) })
	g.Add(func() error {
		select {
		case key := <-srv.Keys():
			apiKey = key
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, func(error) { cancel() })
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	switch err := g.Run().(type) {
	case nil:
	case run.SignalError:
		spin.StopFail()
		return "", fmt.Errorf("login canceled by %v signal", err.Signal)
	default:
		spin.StopFail()
		return "", err
	}
	if apiKey == "" {
		spin.StopFail()
		return "", errors.New("the dashboard delivered no API key")
	}

	spin.StopMessage("received API key")
	spin.Stop()
	return apiKey, nil
}

func chooseOrganization(user *api.SlimUser, p *prompt.Prompter) (string, error) {
	switch len(user.Orgs) {
	case 0:
		return "", errors.New("this account belongs to no organizations")
	case 1:
		return user.Orgs[0].ID, nil
	}

	options := make([]string, len(user.Orgs))
	for i, org := range user.Orgs {
		options[i] = fmt.Sprintf("%s - %s", org.Name, org.ID)
	}
	choice, err := p.Select("Select an organization to use:", options)
	if err != nil {
		return "", err
	}
	for i, option := range options {
		if option == choice {
			return user.Orgs[i].ID, nil
		}
	}
	return "", fmt.Errorf("no organization for selection %q", choice)
}

func browse(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported os: %s", runtime.GOOS)
	}
	return cmd.Start()
}
