// SPDX-License-Identifier: MPL-2.0

package catalog

import "sync"

// Names used by the compiled-in catalog.
const (
	PublicNameDefault  = "DevExtreme"
	PublicNameExporter = "DevExtreme Exporter"

	ModuleFramework             = "framework"
	ModuleWidgetsBase           = "widgets-base"
	ModuleTmpWidgetsForExporter = "tmp-widgets-for-exporter"
	ModuleTmpExporter           = "tmp-exporter"

	EULA = "https://js.devexpress.com/Licensing/"

	DistributionDefault  = ""
	DistributionSPA      = "spa"
	DistributionExporter = "exporter"

	ThemeGeneric  = "generic"
	ThemeIOS7     = "ios7"
	ThemeAndroid5 = "android5"
	ThemeWin8     = "win8"
	ThemeWin10    = "win10"

	ColorSchemeDefault  = "default"
	ColorSchemeBlack    = "black"
	ColorSchemeWhite    = "white"
	ColorSchemeLight    = "light"
	ColorSchemeDark     = "dark"
	ColorSchemeContrast = "contrast"

	SizeSchemeDefault = DefaultSizeScheme
	SizeSchemeCompact = "compact"
)

// Pseudo-theme names accepted by WidgetLessFiles.
const (
	widgetsCommon = "common"
	widgetsBase   = "base"
)

// widgetNames lists the themeable widget stylesheets in compile order.
var widgetNames = []string{
	"icons", "widget", "badge", "draggable", "resizable", "box", "responsiveBox",
	"button", "scrollable", "scrollView", "checkBox", "switch", "tabs", "map",
	"navBar", "textEditor", "textBox", "dropDownEditor", "list", "dropDownList",
	"textArea", "numberBox", "dateBox", "dateView", "toolbar", "tileView",
	"overlay", "toast", "popup", "popover", "trackBar", "progressBar", "tooltip",
	"slider", "rangeSlider", "gallery", "lookup", "actionSheet", "loadIndicator",
	"loadPanel", "autocomplete", "dropDownMenu", "selectBox", "tagBox",
	"radioButton", "radioGroup", "pivotTabs", "pivot", "panorama", "accordion",
	"slideOutView", "slideOut", "pager", "colorView", "colorBox", "gridBase",
	"dataGrid", "pivotGrid", "treeList", "menuBase", "menu", "contextMenu",
	"calendar", "multiView", "treeView", "fieldset", "tabPanel", "fileUploader",
	"validation", "timeView", "scheduler", "form", "spa",
}

// WidgetLessFiles generates the widget stylesheet list for a theme, or for the
// "common" and "base" pseudo-themes. Every list starts with the shared mixins.
// The common list additionally pulls in "../ui" and the non-themeable
// components; real themes prepend typography and shared rules and use the
// "{widget}.{theme}.less" naming.
func WidgetLessFiles(theme string) []string {
	names := make([]string, 0, len(widgetNames)+3)
	switch theme {
	case widgetsCommon:
		names = append(names, "../ui")
	case widgetsBase:
	default:
		names = append(names, "typography", "common")
	}
	names = append(names, widgetNames...)
	if theme == widgetsCommon {
		names = append(names, "deferRendering")
	}

	files := make([]string, 0, len(names)+1)
	files = append(files, "../../mixins.less")
	for _, name := range names {
		if theme != widgetsCommon && theme != widgetsBase {
			name += "." + theme
		}
		files = append(files, name+".less")
	}
	return files
}

// defaultKnownThemes is declared in the order the registry publishes them.
func defaultKnownThemes() []KnownTheme {
	return []KnownTheme{
		{ThemeInfo: ThemeInfo{Name: ThemeIOS7, ColorSchemeNames: []string{ColorSchemeDefault}}, PublicName: ThemeIOS7},
		{ThemeInfo: ThemeInfo{Name: ThemeAndroid5, ColorSchemeNames: []string{ColorSchemeLight}}, PublicName: ThemeAndroid5},
		{ThemeInfo: ThemeInfo{Name: ThemeWin8, ColorSchemeNames: []string{ColorSchemeBlack, ColorSchemeWhite}}, PublicName: ThemeWin8},
		{ThemeInfo: ThemeInfo{Name: ThemeGeneric, ColorSchemeNames: []string{ColorSchemeLight, ColorSchemeDark, ColorSchemeContrast}}},
		{ThemeInfo: ThemeInfo{Name: ThemeWin10, ColorSchemeNames: []string{ColorSchemeBlack, ColorSchemeWhite}}, PublicName: ThemeWin10},
	}
}

func genericColorSchemes() []string {
	return []string{ColorSchemeLight, ColorSchemeDark, ColorSchemeContrast}
}

// DefaultDefinition returns the compiled-in catalog definition.
func DefaultDefinition() Definition {
	themes := defaultKnownThemes()

	widgetThemes := make([]ModuleTheme, 0, len(themes))
	for _, t := range themes {
		widgetThemes = append(widgetThemes, ModuleTheme{
			ThemeInfo: ThemeInfo{Name: t.Name, ColorSchemeNames: t.ColorSchemeNames},
			LessFiles: WidgetLessFiles(t.Name),
		})
	}

	return Definition{
		Modules: []Module{
			{
				Name:        ModuleFramework,
				PublicName:  PublicNameDefault + " (Single Page App Framework)",
				LicenseInfo: EULA,
				StyleInfo: &StyleInfo{
					LessRoot:        "framework",
					CommonLessFiles: []string{"framework.less"},
				},
			},
			{
				Name:        ModuleWidgetsBase,
				PublicName:  PublicNameDefault + " (Common Widgets)",
				LicenseInfo: EULA,
				StyleInfo: &StyleInfo{
					LessRoot:        "widgets",
					CommonLessFiles: WidgetLessFiles(widgetsCommon),
					BaseLessFiles:   WidgetLessFiles(widgetsBase),
					Themes:          widgetThemes,
				},
			},
			// Deprecated exporter modules, kept until the exporter distribution is retired.
			{
				Name: ModuleTmpWidgetsForExporter,
				StyleInfo: &StyleInfo{
					LessRoot: "widgets",
					CommonLessFiles: []string{
						"../../mixins.less",
						"menuBase.less",
						"contextMenu.less",
						"menu.less",
						"overlay.less",
						"widget.less",
					},
					Themes: []ModuleTheme{{
						ThemeInfo: ThemeInfo{Name: ThemeGeneric, ColorSchemeNames: genericColorSchemes()},
						LessFiles: []string{
							"../../mixins.less",
							"../base/icons.less",
							"common.generic.less",
							"icons.generic.less",
							"menuBase.generic.less",
							"contextMenu.generic.less",
							"menu.generic.less",
						},
					}},
				},
			},
			{
				Name:        ModuleTmpExporter,
				LicenseInfo: EULA,
				StyleInfo: &StyleInfo{
					LessRoot: "exporter",
					Themes: []ModuleTheme{{
						ThemeInfo: ThemeInfo{Name: ThemeGeneric, ColorSchemeNames: genericColorSchemes()},
						LessFiles: []string{"exporter.generic.less"},
					}},
				},
			},
		},
		Themes: themes,
		Distributions: []Distribution{
			{
				Name:            DistributionDefault,
				PublicName:      PublicNameDefault,
				LicenseInfo:     EULA,
				Modules:         []string{ModuleWidgetsBase},
				SupportedThemes: []string{ThemeGeneric, ThemeIOS7, ThemeAndroid5, ThemeWin8, ThemeWin10},
				SupportedSizeSchemes: map[string][]string{
					ThemeGeneric: {SizeSchemeDefault, SizeSchemeCompact},
				},
			},
			{
				Name:              DistributionSPA,
				PublicName:        PublicNameDefault,
				LicenseInfo:       EULA,
				Modules:           []string{ModuleFramework},
				OmitCommonPostfix: true,
			},
			{
				Name:            DistributionExporter,
				PublicName:      PublicNameExporter,
				LicenseInfo:     EULA,
				Modules:         []string{ModuleTmpWidgetsForExporter, ModuleTmpExporter},
				SupportedThemes: []string{ThemeGeneric},
				SupportedSizeSchemes: map[string][]string{
					ThemeGeneric: {SizeSchemeDefault},
				},
			},
		},
	}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustNew(DefaultDefinition())
})

// Default returns the compiled-in catalog. The same instance is returned on
// every call.
func Default() *Catalog {
	return defaultCatalog()
}
