// Command tokengen mints bearer tokens for development and tests. Real
// deployments get identities from their own identity provider.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/server/auth"
	"github.com/dmitrijs2005/bucketdrop/internal/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		userID    string
		role      string
		ttl       time.Duration
		newSecret bool
	)

	v := viper.New()
	v.SetEnvPrefix("BUCKETDROP")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "tokengen",
		Short:        "Generate an HS256 bearer token for the bucketdrop server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if newSecret {
				s, err := shared.NewSecret(32)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}

			secret := v.GetString("secret_key")
			if secret == "" {
				return fmt.Errorf("secret is required (--secret or BUCKETDROP_SECRET_KEY)")
			}

			tok, err := auth.GenerateToken(auth.Identity{UserID: userID, Role: role}, []byte(secret), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "dev", "user id")
	cmd.Flags().StringVarP(&role, "role", "r", common.RoleAdmin, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().BoolVar(&newSecret, "new-secret", false, "print a random secret for the server and exit")
	cmd.Flags().StringP("secret", "s", "", "HMAC secret (defaults to the server's secret_key)")
	_ = v.BindPFlag("secret_key", cmd.Flags().Lookup("secret"))

	return cmd
}
