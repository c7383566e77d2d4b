// Command notesctl is a terminal client for the notes API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notekeep/notes-api/pkg/client"
)

var (
	serverURL   string
	sessionPath string
)

var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Manage your notes from the terminal",
	Long: `notesctl talks to a notes API server.

Sign up once with "notesctl signup", or sign in with "notesctl login";
the issued token is stored locally and reused by every other command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("NOTES_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8000"
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "notes API base URL (env NOTES_SERVER)")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", client.DefaultSessionPath(), "path of the stored session file")
}

// anonClient builds an API client without a token, for signup and login.
func anonClient() *client.Client {
	return client.New(serverURL, "")
}

// authedClient builds an API client from the stored session.
func authedClient() (*client.Client, error) {
	s, err := client.LoadSession(sessionPath)
	if err != nil {
		if err == client.ErrNoSession {
			return nil, fmt.Errorf("not signed in, run \"notesctl login\" first")
		}
		return nil, err
	}
	return client.New(serverURL, s.Token), nil
}

// saveAuth persists the token from a successful signup or login.
func saveAuth(resp *client.AuthResponse) error {
	s := &client.Session{Token: resp.Token}
	if resp.User != nil {
		s.Email = resp.User.Email
		s.Name = resp.User.Name
	}
	return client.SaveSession(sessionPath, s)
}
