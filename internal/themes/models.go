package themes

import vcthemes "github.com/vowcraft/vowcraft/themes"

type (
	Definition = vcthemes.Definition
	Niche      = vcthemes.Niche
)
