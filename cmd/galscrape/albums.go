package main

import (
	"encoding/json"
	"fmt"

	"github.com/galscrape/galscrape"
)

// Run executes the albums command.
func (c *AlbumsCmd) Run(deps *Dependencies) error {
	source, err := galscrape.ParseSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", galscrape.ErrorMessage(err))
		return err
	}

	albums, err := deps.Gallery.ListAlbums(deps.Ctx, source, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", galscrape.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return json.NewEncoder(deps.Stdout).Encode(albums)
	}

	if len(albums) == 0 {
		fmt.Fprintln(deps.Stdout, "No albums found.")
		return nil
	}

	for _, a := range albums {
		if a.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", a.URL, a.Title)
		} else {
			fmt.Fprintln(deps.Stdout, a.URL)
		}
	}

	return nil
}
