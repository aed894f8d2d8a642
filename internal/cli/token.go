package cli

import (
	"errors"
	"fmt"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/config"
	"github.com/spf13/cobra"
)

var tokenSubject, tokenRole string

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		token, err := issue(cfg, tokenSubject, auth.Role(tokenRole))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Subject of the token, e.g. the e-mail address of the user.")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(auth.RoleStaff), "Role of the user: admin, finance_manager, accountant, project_lead or staff.")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func issue(cfg config.Config, subject string, role auth.Role) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET must be set to issue tokens")
	}

	return auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL).Issue(subject, role)
}
