package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/clonegroup/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/cli"
	"github.com/custodia-labs/clonegroup/internal/connectors/filesystem"
	"github.com/custodia-labs/clonegroup/internal/core/services"
	"github.com/custodia-labs/clonegroup/internal/normalisers"
	"github.com/custodia-labs/clonegroup/internal/normalisers/html"
	"github.com/custodia-labs/clonegroup/internal/normalisers/markdown"
	"github.com/custodia-labs/clonegroup/internal/normalisers/plaintext"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the adapters for one invocation.
func newServices(configDir string) (cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, err
	}

	registry := normalisers.NewRegistry(
		html.New(),
		markdown.New(),
		plaintext.New(),
	)
	source := filesystem.NewSource(registry)
	grouping := services.NewGroupingService(source)

	return cli.Services{
		Grouping: grouping,
		Settings: services.NewSettingsService(configStore),
		Watch:    services.NewWatchService(grouping, filesystem.NewWatcher()),
	}, nil
}
