package main

import (
	"encoding/json"
	"fmt"

	"github.com/galscrape/galscrape"
)

// Run executes the assets command.
func (c *AssetsCmd) Run(deps *Dependencies) error {
	source, err := galscrape.ParseSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", galscrape.ErrorMessage(err))
		return err
	}

	assets, err := deps.Gallery.ListAssets(deps.Ctx, source, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", galscrape.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return json.NewEncoder(deps.Stdout).Encode(assets)
	}

	if len(assets) == 0 {
		fmt.Fprintln(deps.Stdout, "No assets found.")
		return nil
	}

	for _, a := range assets {
		fmt.Fprintln(deps.Stdout, a.URL)
	}

	return nil
}
