package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/rightnow/rightnow"
)

// postCmd groups post commands
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Work with posts",
}

// postGetCmd fetches posts by hash
var postGetCmd = &cobra.Command{
	Use:   "get HASH...",
	Short: "Fetch full details of one or more posts",
	Long: `Fetch full details of one or more posts. Several hashes are fetched in
parallel and printed in the order given; posts the API returned nothing for
print as null.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPostGet,
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postGetCmd)

	postGetCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	postGetCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runPostGet(cmd *cobra.Command, args []string) error {
	f, err := selectFilter(filterExpr, preset)
	if err != nil {
		return err
	}

	refs := make([]rightnow.PostRef, len(args))
	for i, hash := range args {
		refs[i] = rightnow.PostHash(hash)
	}

	ctx := cmd.Context()
	posts, err := client.PostGetMany(ctx, refs, callOptions()...)
	if err != nil {
		return err
	}

	posts, err = applyFilter(ctx, f, posts)
	if err != nil {
		return err
	}

	out, err := attributeList(posts)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}
