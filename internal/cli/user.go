package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tefra/lastfm/internal/lastfm"
)

var periodFlag string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User profile and listening history",
}

var userInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.User.GetInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(user)
		}
		fmt.Println(titleStyle.Render(user.Name))
		if user.RealName != "" {
			fmt.Println(user.RealName)
		}
		fmt.Printf("plays: %s\n", count(user.Playcount))
		if user.Registered != nil {
			fmt.Printf("registered: %s\n", user.Registered.Text)
		}
		return nil
	},
}

var userRecentCmd = &cobra.Command{
	Use:   "recent NAME",
	Short: "Show a user's recently played tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.User.GetRecentTracks(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for _, t := range tracks {
			when := "now playing"
			if t.Date != nil {
				when = t.Date.Text
			}
			fmt.Printf("%s - %s  %s\n", t.Artist.Name, t.Name, faintStyle.Render(when))
		}
		return nil
	},
}

var userLovedCmd = &cobra.Command{
	Use:   "loved NAME",
	Short: "Show a user's loved tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.User.GetLovedTracks(cmd.Context(), args[0], 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for _, t := range tracks {
			fmt.Printf("%s - %s\n", t.Artist.Name, t.Name)
		}
		return nil
	},
}

var userTopArtistsCmd = &cobra.Command{
	Use:   "top-artists NAME",
	Short: "Show a user's most played artists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artists, _, err := client.User.GetTopArtists(cmd.Context(), args[0], lastfm.Period(periodFlag), 1, limitFlag)
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

var userTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums NAME",
	Short: "Show a user's most played albums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		albums, _, err := client.User.GetTopAlbums(cmd.Context(), args[0], lastfm.Period(periodFlag), 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(albums)
		}
		for i, a := range albums {
			fmt.Printf("%3d. %s - %s  %s\n", i+1, a.Artist.Name, a.Name, faintStyle.Render(count(a.Playcount)+" plays"))
		}
		return nil
	},
}

var userTopTracksCmd = &cobra.Command{
	Use:   "top-tracks NAME",
	Short: "Show a user's most played tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, _, err := client.User.GetTopTracks(cmd.Context(), args[0], lastfm.Period(periodFlag), 1, limitFlag)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(tracks)
		}
		for i, t := range tracks {
			fmt.Printf("%3d. %s - %s  %s\n", i+1, t.Artist.Name, t.Name, faintStyle.Render(count(t.Playcount)+" plays"))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{userTopArtistsCmd, userTopAlbumsCmd, userTopTracksCmd} {
		c.Flags().StringVarP(&periodFlag, "period", "p", string(lastfm.PeriodOverall),
			"time period (overall, 7day, 1month, 3month, 6month, 12month)")
	}
	userCmd.AddCommand(userInfoCmd, userRecentCmd, userLovedCmd, userTopArtistsCmd, userTopAlbumsCmd, userTopTracksCmd)
	rootCmd.AddCommand(userCmd)
}
