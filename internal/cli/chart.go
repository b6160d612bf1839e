package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Global charts",
}

var chartTopArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Show the global top artists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, _, err := client.Chart.GetTopArtists(cmd.Context(), 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(artists)
		}
		for i, a := range artists {
			fmt.Printf("%3d. %s  %s\n", i+1, a.Name, faintStyle.Render(count(a.Playcount)+" plays"))
		}
		return nil
	},
}

var chartTopTracksCmd = &cobra.Command{
	Use:   "top-tracks",
	Short: "Show the global top tracks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.Chart.GetTopTracks(cmd.Context(), 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for i, t := range tracks {
			fmt.Printf("%3d. %s - %s\n", i+1, t.Artist.Name, t.Name)
		}
		return nil
	},
}

var chartTopTagsCmd = &cobra.Command{
	Use:   "top-tags",
	Short: "Show the global top tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _, err := client.Chart.GetTopTags(cmd.Context(), 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tags)
		}
		for i, t := range tags {
			fmt.Printf("%3d. %s\n", i+1, t.Name)
		}
		return nil
	},
}

var geoTopArtistsCmd = &cobra.Command{
	Use:   "geo-top-artists COUNTRY",
	Short: "Show the top artists for a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, _, err := client.Geo.GetTopArtists(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(artists)
		}
		for i, a := range artists {
			fmt.Printf("%3d. %s\n", i+1, a.Name)
		}
		return nil
	},
}

func init() {
	chartCmd.AddCommand(chartTopArtistsCmd, chartTopTracksCmd, chartTopTagsCmd, geoTopArtistsCmd)
	rootCmd.AddCommand(chartCmd)
}
