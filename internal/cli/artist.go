package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Artist lookups",
}

var artistInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show artist metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artist, err := client.Artist.GetInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(artist)
		}
		fmt.Println(titleStyle.Render(artist.Name))
		if artist.URL != "" {
			fmt.Println(faintStyle.Render(artist.URL))
		}
		fmt.Printf("listeners: %s  plays: %s\n", count(artist.Listeners), count(artist.Playcount))
		if len(artist.Tags) > 0 {
			fmt.Printf("tags: %s\n", tagNames(artist.Tags))
		}
		if artist.Wiki != nil && artist.Wiki.Summary != "" {
			fmt.Println(artist.Wiki.Summary)
		}
		return nil
	},
}

var artistSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search artists by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, attrs, err := client.Artist.Search(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(artists)
		}
		for _, a := range artists {
			fmt.Printf("%s  %s\n", titleStyle.Render(a.Name), faintStyle.Render(count(a.Listeners)+" listeners"))
		}
		fmt.Println(faintStyle.Render(fmt.Sprintf("%d matches", attrs.Total)))
		return nil
	},
}

var artistSimilarCmd = &cobra.Command{
	Use:   "similar NAME",
	Short: "List artists similar to NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, err := client.Artist.GetSimilar(cmd.Context(), args[0], limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(artists)
		}
		for _, a := range artists {
			match := "-"
			if a.Match != nil {
				match = fmt.Sprintf("%.2f", *a.Match)
			}
			fmt.Printf("%-6s %s\n", match, a.Name)
		}
		return nil
	},
}

var artistCorrectCmd = &cobra.Command{
	Use:   "correct NAME",
	Short: "Show the canonical spelling for NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correction, err := client.Artist.GetCorrection(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if correction == nil {
			fmt.Println("no correction")
			return nil
		}
		if jsonOut {
			return printJSON(correction)
		}
		fmt.Println(correction.Artist.Name)
		return nil
	},
}

func init() {
	artistCmd.AddCommand(artistInfoCmd, artistSearchCmd, artistSimilarCmd, artistCorrectCmd)
	rootCmd.AddCommand(artistCmd)
}
