package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/worddef"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	switch {
	case c.Databases:
		return c.runDatabases(deps)
	case c.Strategies:
		return c.runStrategies(deps)
	case c.Match:
		return c.runMatch(deps)
	}
	return c.runDefine(deps)
}

func (c *LookupCmd) runDefine(deps *Dependencies) error {
	for _, word := range c.Words {
		defs, err := deps.Service.Define(deps.Ctx, deps.Config.Database, word)
		if err != nil {
			return writeError(deps.Stdout, deps.Config, err)
		}
		if err := writeDefinitions(deps, word, defs); err != nil {
			return err
		}
	}
	return nil
}

func (c *LookupCmd) runMatch(deps *Dependencies) error {
	for _, word := range c.Words {
		matches, err := deps.Service.Match(deps.Ctx, deps.Config.Database, deps.Config.Strategy, word)
		if err != nil {
			return writeError(deps.Stdout, deps.Config, err)
		}
		if err := writeMatches(deps, word, matches); err != nil {
			return err
		}
	}
	return nil
}

func (c *LookupCmd) runDatabases(deps *Dependencies) error {
	dbs, err := deps.Service.Databases(deps.Ctx)
	if err != nil {
		return writeError(deps.Stdout, deps.Config, err)
	}
	if deps.Config.Format == worddef.FormatText {
		_, err := io.WriteString(deps.Stdout, worddef.FormatDatabases(dbs))
		return err
	}
	return encodeResults(deps.Stdout, worddef.DatabaseResults(dbs, deps.Config.Icon)...)
}

func (c *LookupCmd) runStrategies(deps *Dependencies) error {
	strats, err := deps.Service.Strategies(deps.Ctx)
	if err != nil {
		return writeError(deps.Stdout, deps.Config, err)
	}
	if deps.Config.Format == worddef.FormatText {
		_, err := io.WriteString(deps.Stdout, worddef.FormatStrategies(strats))
		return err
	}
	return encodeResults(deps.Stdout, worddef.StrategyResults(strats, deps.Config.Icon)...)
}

func writeDefinitions(deps *Dependencies, word string, defs []*worddef.Definition) error {
	switch deps.Config.Format {
	case worddef.FormatLauncher:
		return encodeResults(deps.Stdout, worddef.LauncherResult(word, defs, deps.Config.Icon))
	case worddef.FormatJSON:
		return encodeResults(deps.Stdout, worddef.EntryResults(defs, deps.Config.Icon)...)
	}
	if len(defs) == 0 {
		_, err := fmt.Fprintf(deps.Stdout, "No definition found for %q\n", word)
		return err
	}
	_, err := io.WriteString(deps.Stdout, worddef.FormatDefinitions(defs))
	return err
}

func writeMatches(deps *Dependencies, word string, matches []*worddef.Match) error {
	switch deps.Config.Format {
	case worddef.FormatLauncher:
		return encodeResults(deps.Stdout, worddef.MatchResult(word, matches, deps.Config.Icon))
	case worddef.FormatJSON:
		return encodeResults(deps.Stdout, worddef.MatchEntryResults(matches, deps.Config.Icon)...)
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintf(deps.Stdout, "No matches for %q\n", word)
		return err
	}
	_, err := io.WriteString(deps.Stdout, worddef.FormatMatches(matches))
	return err
}
