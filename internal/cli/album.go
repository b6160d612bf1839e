package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var albumCmd = &cobra.Command{
	Use:   "album",
	Short: "Album lookups",
}

var albumInfoCmd = &cobra.Command{
	Use:   "info ARTIST ALBUM",
	Short: "Show album metadata and tracklist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		album, err := client.Album.GetInfo(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(album)
		}
		fmt.Println(titleStyle.Render(album.Artist.Name + " - " + album.Name))
		fmt.Printf("listeners: %s  plays: %s\n", count(album.Listeners), count(album.Playcount))
		if len(album.Tags) > 0 {
			fmt.Printf("tags: %s\n", tagNames(album.Tags))
		}
		for i, t := range album.Tracks {
			fmt.Printf("%3d. %s\n", i+1, t.Name)
		}
		return nil
	},
}

var albumSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search albums by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		albums, _, err := client.Album.Search(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(albums)
		}
		for _, a := range albums {
			fmt.Printf("%s - %s\n", a.Artist.Name, titleStyle.Render(a.Name))
		}
		return nil
	},
}

func init() {
	albumCmd.AddCommand(albumInfoCmd, albumSearchCmd)
	rootCmd.AddCommand(albumCmd)
}
