// Package main implements the taskctl CLI, a command-line front end for the
// Taskdeck API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck-api/internal/client"
)

var (
	serverURL   string
	sessionPath string
)

var rootCmd = &cobra.Command{
	Use:   "taskctl",
	Short: "Taskdeck - manage your tasks from the command line",
	Long: `taskctl talks to a Taskdeck API server. Log in once and your
session is kept on disk until you log out.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server",
		envOr("TASKDECK_SERVER", "http://localhost:3000"),
		"base URL of the Taskdeck API server")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session-file", "",
		"path to the session file (defaults to the user config directory)")

	rootCmd.AddCommand(
		registerCmd,
		loginCmd,
		logoutCmd,
		whoamiCmd,
		refreshCmd,
		listCmd,
		getCmd,
		createCmd,
		updateCmd,
		rmCmd,
		toggleCmd,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newClient builds an API client with a hydrated session store.
func newClient() (*client.Client, *client.FileSessionStore, error) {
	path := sessionPath
	if path == "" {
		var err error
		path, err = client.DefaultSessionPath()
		if err != nil {
			return nil, nil, err
		}
	}

	sessions := client.NewFileSessionStore(path)
	if err := sessions.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	return client.New(serverURL, sessions), sessions, nil
}
