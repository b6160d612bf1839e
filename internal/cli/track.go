package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track lookups",
}

var trackInfoCmd = &cobra.Command{
	Use:   "info ARTIST TRACK",
	Short: "Show track metadata",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := client.Track.GetInfo(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(track)
		}
		fmt.Println(titleStyle.Render(track.Artist.Name + " - " + track.Name))
		if track.Album != nil {
			fmt.Printf("album: %s\n", track.Album.Name)
		}
		fmt.Printf("listeners: %s  plays: %s\n", count(track.Listeners), count(track.Playcount))
		if len(track.TopTags) > 0 {
			fmt.Printf("tags: %s\n", tagNames(track.TopTags))
		}
		return nil
	},
}

var trackSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search tracks by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.Track.Search(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for _, t := range tracks {
			fmt.Printf("%s  %s\n", titleStyle.Render(t.Artist.Name+" - "+t.Name), faintStyle.Render(count(t.Listeners)+" listeners"))
		}
		return nil
	},
}

var trackSimilarCmd = &cobra.Command{
	Use:   "similar ARTIST TRACK",
	Short: "List tracks similar to the given one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, err := client.Track.GetSimilar(cmd.Context(), args[0], args[1], limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for _, t := range tracks {
			match := "-"
			if t.Match != nil {
				match = fmt.Sprintf("%.2f", *t.Match)
			}
			fmt.Printf("%-6s %s - %s\n", match, t.Artist.Name, t.Name)
		}
		return nil
	},
}

var trackCorrectCmd = &cobra.Command{
	Use:   "correct ARTIST TRACK",
	Short: "Show the canonical spelling for a track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		correction, err := client.Track.GetCorrection(cmd.Context(), args[0], args[1])
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
		fmt.Printf("%s - %s\n", correction.Track.Artist.Name, correction.Track.Name)
		return nil
	},
}

var trackLoveCmd = &cobra.Command{
	Use:   "love ARTIST TRACK",
	Short: "Love a track on the configured profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Track.Love(cmd.Context(), args[0], args[1])
	},
}

var trackUnloveCmd = &cobra.Command{
	Use:   "unlove ARTIST TRACK",
	Short: "Remove the loved mark from a track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Track.Unlove(cmd.Context(), args[0], args[1])
	},
}

func init() {
	trackCmd.AddCommand(trackInfoCmd, trackSearchCmd, trackSimilarCmd, trackCorrectCmd, trackLoveCmd, trackUnloveCmd)
	rootCmd.AddCommand(trackCmd)
}
