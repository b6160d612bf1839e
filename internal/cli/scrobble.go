package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tefra/lastfm/internal/lastfm"
)

var (
	scrobbleAlbum      string
	scrobbleTimestamp  int64
	scrobbleNowPlaying bool
)

var scrobbleCmd = &cobra.Command{
	Use:   "scrobble ARTIST TRACK",
	Short: "Submit a play to the configured profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track := lastfm.NewScrobbleTrack(args[0], args[1])
		track.Album = scrobbleAlbum
		if scrobbleTimestamp > 0 {
			track.Timestamp = scrobbleTimestamp
		}

		if scrobbleNowPlaying {
			np, err := client.Track.UpdateNowPlaying(cmd.Context(), track)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(np)
			}
			fmt.Printf("now playing: %s - %s\n", np.Artist.Text, np.Track.Text)
			return nil
		}

		result, err := client.Track.Scrobble(cmd.Context(), []lastfm.ScrobbleTrack{track})
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(result)
		}
		printScrobbleResult(result)
		return nil
	},
}

func printScrobbleResult(result *lastfm.ScrobbleResult) {
	fmt.Printf("accepted: %d  ignored: %d\n", result.Accepted, result.Ignored)
	for _, s := range result.Scrobbles {
		when := humanize.Time(time.Unix(s.Timestamp, 0))
		if s.Accepted() {
			fmt.Printf("%s - %s  %s\n", s.Artist.Text, s.Track.Text, faintStyle.Render(when))
		} else {
			fmt.Printf("%s - %s  ignored: %s\n", s.Artist.Text, s.Track.Text, s.IgnoredMessage.Text)
		}
	}
}

func init() {
	scrobbleCmd.Flags().StringVar(&scrobbleAlbum, "album", "", "album the track belongs to")
	scrobbleCmd.Flags().Int64Var(&scrobbleTimestamp, "timestamp", 0, "unix time the play started (default: now)")
	scrobbleCmd.Flags().BoolVar(&scrobbleNowPlaying, "now-playing", false, "update the now playing status instead of recording a play")
	rootCmd.AddCommand(scrobbleCmd)
}
