// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

// Id identifies a known problem.
type Id int

const (
	CatalogNotFoundId Id = iota + 1
	CatalogParseErrorId
	CatalogInvalidId
	ModuleNotFoundId
	ThemeNotFoundId
	DistributionNotFoundId
	ConfigLoadFailedId
	SourceRootNotFoundId
	ManifestWriteFailedId
)

type (
	MarkdownMsg string

	// Issue is the Markdown guidance shown for one Id.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance with the named glamour style ("dark",
// "light", "notty", ...).
func (i *Issue) Render(style string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg)), style)
}

var (
	render = glamour.Render

	catalogNotFoundIssue = &Issue{
		id: CatalogNotFoundId,
		mdMsg: `
# Catalog file not found!

stylereg could not open the catalog file you asked for.

## Things you can try:
- Check the path passed with ` + "`--catalog`" + ` or set in ` + "`catalog:`" + ` of your config
- Leave the catalog unset to use the built-in catalog
- Export the built-in catalog as a starting point:
~~~
$ stylereg catalog export > catalog.json
~~~`,
	}

	catalogParseErrorIssue = &Issue{
		id: CatalogParseErrorId,
		mdMsg: `
# Failed to parse the catalog!

The catalog file is not valid CUE, JSON or JSONC, or it does not match the
catalog schema.

## Common causes:
- Misspelled field names (e.g. ` + "`require_module`" + ` instead of ` + "`require_modules`" + `)
- A ` + "`style_info`" + ` block without ` + "`less_root`" + `
- An unsupported file extension (use .cue, .json or .jsonc)

## Minimal CUE catalog:
~~~cue
modules: [{
  name: "framework"
  style_info: {
    less_root: "framework"
    common_less_files: ["framework.less"]
  }
}]
~~~`,
	}

	catalogInvalidIssue = &Issue{
		id: CatalogInvalidId,
		mdMsg: `
# The catalog has structural problems!

Every module, theme and distribution name must be unique, and a module may
declare each theme variant only once.

## Things you can try:
- Fix the problems listed above and re-run
- Run ` + "`stylereg catalog check`" + ` to see dangling requirements and cycles`,
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found!

The module you named is not part of the catalog.

## Things you can try:
- List the available modules:
~~~
$ stylereg modules list
~~~
- Module names are case-sensitive`,
	}

	themeNotFoundIssue = &Issue{
		id: ThemeNotFoundId,
		mdMsg: `
# The module has no styles for this theme!

The module exists but does not declare a variant for the requested theme,
or it has no styles at all.

## Things you can try:
- List the themes and their color schemes:
~~~
$ stylereg themes list
~~~
- Pick a module that ships styles, such as one of its requirements`,
	}

	distributionNotFoundIssue = &Issue{
		id: DistributionNotFoundId,
		mdMsg: `
# Distribution not found!

## Things you can try:
- List the available distributions:
~~~
$ stylereg dist list
~~~
- Omit the name to plan the default distribution`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

stylereg could not load its configuration file.

## Things you can try:
- Check the file syntax and field names
- Write a fresh default configuration:
~~~
$ stylereg config init
~~~

## Example configuration:
~~~cue
source_root: "./styles"
distribution: "spa"
format: "json"
ui: verbose: false
~~~`,
	}

	sourceRootNotFoundIssue = &Issue{
		id: SourceRootNotFoundId,
		mdMsg: `
# Source root not found!

Base stylesheets are only listed when they exist below the source root, so
stylereg needs a readable directory.

## Things you can try:
- Pass the LESS source tree with ` + "`--source-root`" + `
- Set ` + "`source_root`" + ` in your config or ` + "`STYLEREG_SOURCE_ROOT`" + ` in the environment`,
	}

	manifestWriteFailedIssue = &Issue{
		id: ManifestWriteFailedId,
		mdMsg: `
# Failed to write the bundle manifest!

## Things you can try:
- Check that the output directory is writable
- Remove a stale ` + "`.lock`" + ` file next to the manifest if no other stylereg process is running
- Use an output extension of .json, .yaml or .toml, or pass ` + "`--format`",
	}

	issues = map[Id]*Issue{
		catalogNotFoundIssue.Id():      catalogNotFoundIssue,
		catalogParseErrorIssue.Id():    catalogParseErrorIssue,
		catalogInvalidIssue.Id():       catalogInvalidIssue,
		moduleNotFoundIssue.Id():       moduleNotFoundIssue,
		themeNotFoundIssue.Id():        themeNotFoundIssue,
		distributionNotFoundIssue.Id(): distributionNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		sourceRootNotFoundIssue.Id():   sourceRootNotFoundIssue,
		manifestWriteFailedIssue.Id():  manifestWriteFailedIssue,
	}
)

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
	return values
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
