package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <email> <name>",
	Short: "Create a new account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}

		session, err := c.Register(cmd.Context(), args[0], args[1], password)
		if err != nil {
			return err
		}

		fmt.Printf("Registered and logged in as %s <%s>\n", session.User.Name, session.User.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}

		session, err := c.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Long: `Discard the stored session.

The server keeps no session state, so logging out is purely a client-side
operation; previously issued tokens stay valid until they expire.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		if err := c.Logout(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sessions, err := newClient()
		if err != nil {
			return err
		}

		session, hydrated := sessions.Session()
		if !hydrated || !session.LoggedIn() || session.User == nil {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("%s <%s>\n", session.User.Name, session.User.Email)
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Obtain a new access token using the stored refresh token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		if err := c.Refresh(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Access token refreshed")
		return nil
	},
}
