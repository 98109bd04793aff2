package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-env-keeper/internal/cli"
	"github.com/MKhiriev/go-env-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
