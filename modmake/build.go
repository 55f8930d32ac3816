package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	fastblurVersion = "1.0.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	fastblur := NewAppBuild("fastblur", "cmd/fastblur", fastblurVersion)
	fastblur.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", fastblurVersion).
			CgoEnabled(false)
	})
	fastblur.Variant("windows", "amd64")
	fastblur.Variant("linux", "amd64")
	fastblur.Variant("linux", "arm64")
	fastblur.Variant("darwin", "amd64")
	fastblur.Variant("darwin", "arm64")
	b.ImportApp(fastblur)

	b.Execute()
}
