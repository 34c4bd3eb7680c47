package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/contactfind/contactfind"
)

// Run executes the names command.
func (c *NamesCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	text := string(data)

	cacheKey := "names:" + text
	if deps.Cache != nil {
		if cached, ok := deps.Cache.Get(cacheKey); ok {
			for _, name := range strings.Split(cached, "\n") {
				fmt.Fprintln(deps.Stdout, name)
			}
			return nil
		}
	}

	names, err := deps.Names.ExtractCompanyNames(deps.Ctx, text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contactfind.ErrorMessage(err))
		return err
	}

	if deps.Cache != nil && len(names) > 0 {
		if err := deps.Cache.Put(cacheKey, strings.Join(names, "\n")); err != nil {
			deps.Logger.Warn("caching name list failed", "error", err)
		}
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
