package main

import "github.com/tefra/lastfm/internal/cli"

func main() {
	cli.Execute()
}
