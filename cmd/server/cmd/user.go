package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"docstore/internal/domain/user"
	"docstore/internal/infrastructure/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users directly in the database",
}

var strictPassword bool

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user from the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := bufio.NewReader(os.Stdin)

		username, err := prompt(in, "Username: ")
		if err != nil {
			return err
		}
		email, err := prompt(in, "Email: ")
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		svc, closeStore, err := userService(cmd, strictPassword)
		if err != nil {
			return err
		}
		defer closeStore()

		u, err := svc.Create(cmd.Context(), user.CreateRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		color.Green("✓ user %q created with id %d", u.Username, u.ID)
		return nil
	},
}

var userCheckCmd = &cobra.Command{
	Use:   "check <username>",
	Short: "Verify a user's stored password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		svc, closeStore, err := userService(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		u, err := svc.Authenticate(cmd.Context(), args[0], password)
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}

		color.Green("✓ password matches user %d", u.ID)
		return nil
	},
}

func userService(cmd *cobra.Command, strict bool) (*user.Service, func(), error) {
	store, err := storage.New(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, err
	}

	validator := user.NewPasswordValidator()
	if strict {
		validator = user.NewStrictPasswordValidator()
	}

	svc := user.NewService(store.Users(), store.Folders(), store.Documents(), validator, log)
	return svc, func() { _ = store.Close() }, nil
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readPassword(label string) (string, error) {
	fmt.Print(label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

func init() {
	userAddCmd.Flags().BoolVar(&strictPassword, "strict", false, "require upper, lower, digit and special characters")
	userCmd.AddCommand(userAddCmd, userCheckCmd)
}
