package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/app"
)

var defaultProfile string

func selectedModules(profile string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(profile))

	switch selected {
	case "thumbnails":
		return []fx.Option{
			app.ThumbnailModule(),
		}
	default:
		return []fx.Option{
			app.ThumbnailModule(),
			app.CacheModule(),
		}
	}
}

func main() {
	profile := flag.String("profile", defaultProfile, "select deployment profile: thumbnails (default: all)")
	flag.Parse()

	app.New(*profile, selectedModules(*profile)...).Run()
}
