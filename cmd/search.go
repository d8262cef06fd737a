package cmd

import (
	"github.com/spf13/cobra"
)

var (
	searchTerm  string
	searchSort  string
	searchPage  int
	searchLimit int
	filterExpr  string
	preset      string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [key=value...]",
	Short: "Search posts",
	Long: `Search the community and print the matching posts.

Results can be narrowed locally with --filter or a --preset from the config,
for example:

  rightnow search --term paint --filter 'view_count > 100'`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchTerm, "term", "", "search term")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "sort order, e.g. az or recent")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "result page, starting at 1")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "results per page (default 20)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args)
	if err != nil {
		return err
	}
	if searchTerm != "" {
		params["term"] = searchTerm
	}
	if searchSort != "" {
		params["sort"] = searchSort
	}
	if searchPage > 0 {
		params["page"] = searchPage
	}
	if searchLimit > 0 {
		params["limit"] = searchLimit
	}

	f, err := selectFilter(filterExpr, preset)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	posts, err := client.Search(ctx, params, callOptions()...)
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
