package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/rightnow/rightnow"
)

// userCmd groups user commands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Work with users",
}

// userGetCmd fetches users by hash
var userGetCmd = &cobra.Command{
	Use:   "get HASH...",
	Short: "Fetch full details of one or more users",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUserGet,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userGetCmd)
}

func runUserGet(cmd *cobra.Command, args []string) error {
	refs := make([]rightnow.UserRef, len(args))
	for i, hash := range args {
		refs[i] = rightnow.UserHash(hash)
	}

	users, err := client.UserGetMany(cmd.Context(), refs, callOptions()...)
	if err != nil {
		return err
	}

	out, err := attributeList(users)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}
