package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notekeep/notes-api/pkg/client"
)

var signupCmd = &cobra.Command{
	Use:   "signup <email> <name>",
	Short: "Register a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		resp, err := anonClient().Signup(cmd.Context(), args[0], password, args[1])
		if err != nil {
			return err
		}
		if err := saveAuth(resp); err != nil {
			return err
		}

		fmt.Printf("signed up as %s\n", resp.User.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		resp, err := anonClient().Signin(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if err := saveAuth(resp); err != nil {
			return err
		}

		fmt.Printf("signed in as %s\n", resp.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.ClearSession(sessionPath); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		user, err := c.Profile(cmd.Context())
		if err != nil {
			if err == client.ErrUnauthorized {
				// Expired token: drop it so the next command prompts cleanly.
				_ = client.ClearSession(sessionPath)
				return fmt.Errorf("session expired, run \"notesctl login\" again")
			}
			return err
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read for piped input.
func promptPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	if term.IsTerminal(int(syscall.Stdin)) {
		data, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
}
