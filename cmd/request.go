package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/s0up4200/rightnow/rightnow"
)

var requestPost bool

// requestCmd sends an arbitrary action
var requestCmd = &cobra.Command{
	Use:   "request ACTION [key=value...]",
	Short: "Send a raw signed API action",
	Long: `Send any API action with the given parameters and print the parsed JSON
response as returned, without key normalization.

  rightnow request PostGet postHash=fa8e6cc713`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRequest,
}

func init() {
	rootCmd.AddCommand(requestCmd)

	requestCmd.Flags().BoolVar(&requestPost, "post", false, "send the action as a form POST")
}

func runRequest(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	opts := callOptions()
	if requestPost {
		opts = append(opts, rightnow.Verb(http.MethodPost))
	}

	result, err := client.Request(cmd.Context(), args[0], params, opts...)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}
