package cmd

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/platform/config"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils"
	"github.com/spf13/cobra"
)

// tokenCmd represents the token command.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API token for a user",
	Long: `Sign a bearer token for the API with JWT_SECRET. Sign-in itself is
handled outside this service; this is for local use and scripts.

Example:
  financetracker token --user alice`,
	Run: runToken,
}

func init() {
	addUserFlag(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	exitOnError(err, "failed to load config")

	token, err := utils.GenerateJWT(userID, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration)
	exitOnError(err, "failed to sign token")
	fmt.Println(token)
}
