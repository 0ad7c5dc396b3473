package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"instaosint/pkg/auth"
	"instaosint/pkg/ui"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Instagram credentials",
	Long: `Manage stored Instagram credentials securely.

Credentials are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (read-only)

Credentials are optional; public profiles work without them.`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Store Instagram credentials securely",
	Long: `Store Instagram session credentials in the system keychain or an
encrypted file.

To get these values:
1. Log into Instagram in your browser
2. Open Developer Tools (F12)
3. Go to Application/Storage > Cookies
4. Copy the sessionid and csrftoken values`,
	Example: `  # Interactive login
  instaosint auth login

  # Login with username
  instaosint auth login myusername`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:     "logout <username>",
	Short:   "Remove stored credentials",
	Example: `  instaosint auth logout myusername`,
	Args:    cobra.ExactArgs(1),
	Run:     runLogout,
}

// listCmd represents the auth list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored accounts",
	Long:  `List all stored Instagram accounts with secrets masked.`,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(listCmd)
}

func runLogin(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager", err.Error())
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		fmt.Print("Instagram username: ")
		line, _ := reader.ReadString('\n')
		username = strings.TrimSpace(line)
	}
	if username == "" {
		ui.PrintError("Username is required")
		os.Exit(1)
	}

	sessionID := promptSecret("Session ID: ")
	csrfToken := promptSecret("CSRF Token: ")

	fmt.Print("User Agent (optional, press Enter for default): ")
	userAgent, _ := reader.ReadString('\n')
	userAgent = strings.TrimSpace(userAgent)

	account := &auth.Account{
		Username:  username,
		SessionID: sessionID,
		CSRFToken: csrfToken,
		UserAgent: userAgent,
	}

	if err := manager.Store(account); err != nil {
		ui.PrintError("Failed to store credentials", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess(fmt.Sprintf("Credentials stored for %s", username))
}

func runLogout(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager", err.Error())
		os.Exit(1)
	}

	if err := manager.Delete(args[0]); err != nil {
		ui.PrintError("Failed to remove credentials", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess(fmt.Sprintf("Credentials removed for %s", args[0]))
}

func runList(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		ui.PrintError("Failed to initialize credential manager", err.Error())
		os.Exit(1)
	}

	accounts, err := manager.List()
	if err != nil {
		ui.PrintError("Failed to list accounts", err.Error())
		os.Exit(1)
	}

	if len(accounts) == 0 {
		ui.PrintWarning("No stored accounts")
		return
	}

	for _, account := range accounts {
		masked := auth.Sanitize(account)
		fmt.Printf("%s\n", ui.Cyan(masked.Username))
		fmt.Printf("  Session ID: %s\n", masked.SessionID)
		fmt.Printf("  CSRF Token: %s\n", masked.CSRFToken)
		if !masked.LastModified.IsZero() {
			fmt.Printf("  Modified:   %s\n", masked.LastModified.Format("2006-01-02 15:04:05"))
		}
	}
}

// promptSecret reads a value without echoing it to the terminal
func promptSecret(prompt string) string {
	fmt.Print(prompt)
	value, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		ui.PrintError("Failed to read input", err.Error())
		os.Exit(1)
	}
	return strings.TrimSpace(string(value))
}
