package main

// Entry point for frontiers-tui
import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ucsb-cs156/frontiers-tui/auth"
	"github.com/ucsb-cs156/frontiers-tui/config"
	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/logging"
	"github.com/ucsb-cs156/frontiers-tui/tui"
)

func main() {
	// Parse command line flags
	runCmd := flag.String("run", "", "Run a command non-interactively (e.g., 'login', 'whoami', 'courses', 'jobs')")
	flag.Parse()

	// Initialize logging first (allow override via env)
	logLevel := logging.LevelInfo
	if v := strings.TrimSpace(os.Getenv("FRONTIERS_LOG_LEVEL")); v != "" {
		logLevel = logging.ParseLevel(v)
	}
	if err := logging.InitLogger(logLevel); err != nil {
		fmt.Printf("Warning: Failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting frontiers-tui application")

	// Load configuration
	cfg := config.LoadConfig()
	logging.Info("Configuration loaded", "baseUrl", cfg.BaseURL, "pageSize", fmt.Sprintf("%d", cfg.PageSize))

	// If run command is specified, execute it non-interactively
	if *runCmd != "" {
		err := runNonInteractiveCommand(*runCmd, cfg)
		if err != nil {
			logging.Error("Non-interactive command failed", "command", *runCmd, "error", err.Error())
			fmt.Printf("Error running command '%s': %v\n", *runCmd, err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(cfg); err != nil {
		logging.Error("UI exited with error", "error", err.Error())
		fmt.Println("Error:", err)
	}
}

// runNonInteractiveCommand executes a command without starting the TUI
func runNonInteractiveCommand(command string, cfg config.Config) error {
	logging.Info("Running non-interactive command", "command", command)

	switch command {
	case "login":
		return loginNonInteractive(cfg)
	case "whoami":
		return whoamiNonInteractive(cfg)
	case "courses":
		return listCoursesNonInteractive(cfg)
	case "jobs":
		return listJobsNonInteractive(cfg)
	default:
		return fmt.Errorf("unknown command: %s. Available commands: login, whoami, courses, jobs", command)
	}
}

// apiClient builds an authenticated API client or fails if no token is stored.
func apiClient(cfg config.Config) (*frontiers.Client, error) {
	authenticator := auth.NewAuthenticator(cfg.OAuth2)
	if !authenticator.HasValidToken() {
		return nil, fmt.Errorf("no valid authentication token found. Run with -run=login first")
	}
	return frontiers.NewClientWithAuthenticator(authenticator, cfg.BaseURL), nil
}

// whoamiNonInteractive prints the current session identity
func whoamiNonInteractive(cfg config.Config) error {
	client, err := apiClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cu, err := client.GetCurrentUser(ctx)
	if err != nil {
		logging.Error("Failed to fetch current user", "error", err.Error())
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	fmt.Printf("%s <%s>\n", cu.User.FullName, cu.User.Email)
	if cu.User.GithubLogin != "" {
		fmt.Printf("GitHub: %s\n", cu.User.GithubLogin)
	}
	fmt.Printf("Roles: %s\n", strings.Join(cu.Roles, ", "))
	return nil
}

// listCoursesNonInteractive lists visible courses without the TUI
func listCoursesNonInteractive(cfg config.Config) error {
	client, err := apiClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	courses, err := client.ListCourses(ctx)
	if err != nil {
		logging.Error("Failed to list courses", "error", err.Error())
		return fmt.Errorf("failed to list courses: %w", err)
	}

	fmt.Printf("Found %d courses:\n", len(courses))
	for i, c := range courses {
		fmt.Printf("%d. %s (%s, %s) org=%s\n", i+1, c.CourseName, c.Term, c.School, c.OrgName)
	}
	logging.Info("Successfully listed courses", "count", fmt.Sprintf("%d", len(courses)))
	return nil
}

// listJobsNonInteractive prints the first page of background jobs
func listJobsNonInteractive(cfg config.Config) error {
	client, err := apiClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := client.JobsPaged(ctx, 0, 10)
	if err != nil {
		logging.Error("Failed to list jobs", "error", err.Error())
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	fmt.Printf("Jobs (page 1 of %d):\n", page.Page.TotalPages)
	for _, j := range page.Content {
		fmt.Printf("%d. [%s] %s %s\n", j.ID, j.Status, j.CreatedAt, j.CreatedBy)
	}
	return nil
}

// loginNonInteractive performs device flow login without TUI
func loginNonInteractive(cfg config.Config) error {
	logging.Debug("Starting non-interactive login")

	authenticator := auth.NewAuthenticator(cfg.OAuth2)

	if authenticator.HasValidToken() {
		fmt.Println("Already authenticated with a valid token.")
		logging.Info("Already authenticated")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	fmt.Println("Starting GitHub device flow authentication...")
	logging.Debug("Initiating device flow")

	resp, err := authenticator.InitiateDeviceFlow(ctx)
	if err != nil {
		logging.Error("Failed to initiate device flow", "error", err.Error())
		return fmt.Errorf("failed to initiate device flow: %w", err)
	}

	if resp.VerificationURI != "" && resp.UserCode != "" {
		fmt.Printf("Open %s and enter code %s\n", resp.VerificationURI, resp.UserCode)
	}
	fmt.Println("Waiting for verification...")

	logging.Debug("Polling for token")
	token, err := authenticator.PollForToken(ctx, resp.DeviceCode, resp.Interval)
	if err != nil {
		logging.Error("Failed to poll for token", "error", err.Error())
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := authenticator.SaveTokenSecurely(token); err != nil {
		logging.Error("Failed to save token", "error", err.Error())
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Println("Authentication successful! Token saved.")
	logging.Info("Authentication completed successfully")
	return nil
}
