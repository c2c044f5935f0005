package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/codescout/codescout/internal/account"
	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/session"
)

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}
	return string(raw), nil
}

// loginCmd establishes a session against the account API.
var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to CodeScout and persist the session",
	Long: `Authenticate against the CodeScout account API and persist the session token.

Two ways to log in:
- Email and password: pass the email as an argument and type the password
  at the hidden prompt.
- Token: pass --token with a bearer token obtained elsewhere (for example
  from a browser OAuth flow).

The session is stored in your home directory and reused by every command
until it expires or you run 'codescout logout'.

Examples:
  # Interactive login
  codescout login alice@example.com

  # Token login after an OAuth flow
  codescout login --token eyJhbGciOi...`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if token := viper.GetString("token"); token != "" {
			if err := sessionStore.SetSession(token); err != nil {
				contract.LogFatal("Cannot store session", err)
			}
			claims, _ := sessionStore.Claims()
			if claims.Email != "" {
				fmt.Printf("Logged in as %s\n", claims.Email)
			} else {
				fmt.Println("Session token stored.")
			}
			return
		}

		if len(args) != 1 {
			contract.LogFatal("Cannot log in", fmt.Errorf("an email argument or --token is required"))
		}
		email := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			contract.LogFatal("Cannot log in", err)
		}

		client := newAccountClient()
		token, err := client.Login(rootCtx, email, password)
		if err != nil {
			contract.LogFatal("Login failed", err)
		}
		if err := sessionStore.SetSession(token); err != nil {
			contract.LogFatal("Cannot store session", err)
		}
		fmt.Printf("Logged in as %s\n", email)
	},
}

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register <first-name> <last-name> <email>",
	Short: "Create a new CodeScout account",
	Long: `Create a new account against the CodeScout account API.

You will be prompted for a password. After registering, run
'codescout login' to establish a session.

Examples:
  codescout register Ada Lovelace ada@example.com`,
	Args:    cobra.ExactArgs(3),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		password, err := promptPassword("Password: ")
		if err != nil {
			contract.LogFatal("Cannot register", err)
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			contract.LogFatal("Cannot register", err)
		}
		if password != confirm {
			contract.LogFatal("Cannot register", fmt.Errorf("passwords do not match"))
		}

		client := newAccountClient()
		req := account.SignupRequest{
			FirstName: args[0],
			LastName:  args[1],
			Email:     strings.ToLower(args[2]),
			Password:  password,
		}
		if err := client.Signup(rootCtx, req); err != nil {
			contract.LogFatal("Registration failed", err)
		}
		fmt.Println("Account created. Run 'codescout login' to sign in.")
	},
}

// logoutCmd drops the persisted session.
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Log out and remove the persisted session",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if !sessionStore.Active() {
			fmt.Println("Not logged in.")
			return
		}
		if err := sessionStore.Logout(); err != nil {
			contract.LogFatal("Cannot log out", err)
		}
		fmt.Println("Logged out.")
	},
}

// whoamiCmd prints the active session identity.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the identity of the active session",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := sessionStore.Claims()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				fmt.Println("Not logged in.")
				return
			}
			contract.LogFatal("Cannot read session", err)
		}
		fmt.Printf("User ID: %s\n", claims.UserID)
		fmt.Printf("Email:   %s\n", claims.Email)
		fmt.Printf("Expires: %s\n", claims.Expiry.Format(time.RFC3339))
	},
}
