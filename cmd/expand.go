package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/spf13/cobra"

	"sitesearch/internal/domain"
	"sitesearch/internal/search"
)

var expandJSON bool

var expandCMD = &cobra.Command{
	Use:   "expand <query...>",
	Short: "Print the results a query expands to",
	Long: `Print the results the search page would show for a query, without
starting the interactive view. Words are joined with single spaces.

Example:
  sitesearch expand -s docs.example.org getting started --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd, nil, nil)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results := search.Expand(query, cfg.Site)
		return writeResults(cmd.OutOrStdout(), results, expandJSON)
	},
}

func init() {
	expandCMD.Flags().BoolVar(&expandJSON, "json", false, "print results as JSON")
	rootCMD.AddCommand(expandCMD)
}

// writeResults prints results as an indented JSON array or a numbered list
func writeResults(w io.Writer, results []domain.SearchResult, asJSON bool) error {
	if asJSON {
		if results == nil {
			results = []domain.SearchResult{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "encode results")
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return errors.WithStack(err)
	}

	for i, r := range results {
		if _, err := fmt.Fprintf(w, "%d. %s (%d%% match)\n   %s\n   %s\n",
			i+1, r.Title, r.MatchPercent(), r.URL, r.Snippet); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
