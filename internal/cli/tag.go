package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag lookups",
}

var tagInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show tag metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := client.Tag.GetInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tag)
		}
		fmt.Println(titleStyle.Render(tag.Name))
		fmt.Printf("reach: %s  taggings: %s\n", count(tag.Reach), count(tag.Total))
		if tag.Wiki != nil && tag.Wiki.Summary != "" {
			fmt.Println(tag.Wiki.Summary)
		}
		return nil
	},
}

var tagTopArtistsCmd = &cobra.Command{
	Use:   "top-artists NAME",
	Short: "Show the top artists for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, _, err := client.Tag.GetTopArtists(cmd.Context(), args[0], 1, limitFlag)
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

var tagTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums NAME",
	Short: "Show the top albums for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		albums, _, err := client.Tag.GetTopAlbums(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(albums)
		}
		for i, a := range albums {
			fmt.Printf("%3d. %s - %s\n", i+1, a.Artist.Name, a.Name)
		}
		return nil
	},
}

var tagTopTracksCmd = &cobra.Command{
	Use:   "top-tracks NAME",
	Short: "Show the top tracks for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.Tag.GetTopTracks(cmd.Context(), args[0], 1, limitFlag)
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

func init() {
	tagCmd.AddCommand(tagInfoCmd, tagTopArtistsCmd, tagTopAlbumsCmd, tagTopTracksCmd)
	rootCmd.AddCommand(tagCmd)
}
