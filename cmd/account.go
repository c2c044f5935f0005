package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codescout/codescout/internal/account"
	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

// platformAliases maps CLI-friendly names to resource domains.
var platformAliases = map[string]schema.Platform{
	"leetcode":   schema.LeetCode,
	"codeforces": schema.Codeforces,
	"codechef":   schema.CodeChef,
	"atcoder":    schema.AtCoder,
}

// resolvePlatform turns a CLI platform name into its resource domain.
func resolvePlatform(name string) (schema.Platform, error) {
	if p, ok := platformAliases[strings.ToLower(name)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q. must be leetcode, codeforces, codechef, atcoder", name)
}

// accountCmd groups the account management subcommands.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your CodeScout account and linked platforms",
	Long: `Manage your account profile and the judge handles linked to it.

Subcommands:
  profile   - Show your profile
  platforms - List linked platform handles
  link      - Link or change a platform handle
  update    - Update profile fields
  delete    - Delete the account

All subcommands require an active login (codescout login).

Examples:
  # Link your Codeforces handle
  codescout account link codeforces tourist

  # Change your display name
  codescout account update --first-name Ada`,
}

// accountProfileCmd shows the profile.
var accountProfileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Show your account profile",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot show profile", err)
		}

		profile, err := newAccountClient().GetProfile(rootCtx, claims.UserID)
		if err != nil {
			contract.LogFatal("Cannot fetch profile", err)
		}
		fmt.Printf("Name:  %s %s\n", profile.FirstName, profile.LastName)
		fmt.Printf("Email: %s\n", profile.Email)
	},
}

// accountPlatformsCmd lists the linked handles.
var accountPlatformsCmd = &cobra.Command{
	Use:     "platforms",
	Short:   "List your linked platform handles",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot list platforms", err)
		}

		links, err := newAccountClient().GetPlatforms(rootCtx, claims.UserID)
		if err != nil {
			contract.LogFatal("Cannot fetch linked platforms", err)
		}
		for _, link := range links {
			handle := link.Username
			if handle == "" {
				handle = "(not linked)"
			}
			fmt.Printf("%-12s %s\n", link.PlatformURL.DisplayName(), handle)
		}
	},
}

// accountLinkCmd links or changes a platform handle.
var accountLinkCmd = &cobra.Command{
	Use:   "link <platform> <handle>",
	Short: "Link or change a judge platform handle",
	Long: `Attach a judge handle to your account so 'codescout ratings' can find it.

Platform must be one of: leetcode, codeforces, codechef, atcoder.

Examples:
  codescout account link codeforces tourist
  codescout account link leetcode lee215`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot link platform", err)
		}

		platform, err := resolvePlatform(args[0])
		if err != nil {
			contract.LogFatal("Cannot link platform", err)
		}

		if err := newAccountClient().SetPlatformHandle(rootCtx, claims.UserID, platform, args[1]); err != nil {
			contract.LogFatal("Cannot link platform", err)
		}
		fmt.Printf("Linked %s handle %q.\n", platform.DisplayName(), args[1])
	},
}

// accountUpdateCmd updates profile fields.
var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile fields",
	Long: `Update first name, last name or email on your profile.

Only the flags you pass are changed; the rest keep their current values.

Examples:
  codescout account update --first-name Ada --last-name Lovelace
  codescout account update --email ada@example.com`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot update profile", err)
		}

		client := newAccountClient()
		current, err := client.GetProfile(rootCtx, claims.UserID)
		if err != nil {
			contract.LogFatal("Cannot fetch profile", err)
		}

		update := account.ProfileUpdate{
			FirstName: current.FirstName,
			LastName:  current.LastName,
			Email:     current.Email,
		}
		changed := false
		if v := viper.GetString("first-name"); v != "" {
			update.FirstName = v
			changed = true
		}
		if v := viper.GetString("last-name"); v != "" {
			update.LastName = v
			changed = true
		}
		if v := viper.GetString("email"); v != "" {
			update.Email = strings.ToLower(v)
			changed = true
		}
		if !changed {
			fmt.Println("Nothing to update. Pass --first-name, --last-name or --email.")
			return
		}

		if err := client.UpdateProfile(rootCtx, claims.UserID, update); err != nil {
			contract.LogFatal("Cannot update profile", err)
		}
		fmt.Println("Profile updated.")
	},
}

// accountDeleteCmd deletes the account.
var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account permanently",
	Long: `Delete your CodeScout account and all server-side data.

WARNING: This action cannot be undone. Pass --yes to skip the prompt.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot delete account", err)
		}

		if !viper.GetBool("yes") {
			fmt.Fprintf(os.Stderr, "Delete account %s? This cannot be undone. Type 'yes' to confirm: ", claims.Email)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := newAccountClient().DeleteAccount(rootCtx, claims.UserID); err != nil {
			contract.LogFatal("Cannot delete account", err)
		}
		if err := sessionStore.Logout(); err != nil {
			contract.LogWarn("Cannot remove session file", err)
		}
		fmt.Println("Account deleted.")
	},
}
