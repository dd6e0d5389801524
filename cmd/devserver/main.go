// Command devserver hosts the demo page and its WASM bundle.
//
// Build the page first:
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm .
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
package main

import (
	"log"

	"github.com/alecthomas/kong"

	"github.com/vcrobe/crosslab/internal/config"
	"github.com/vcrobe/crosslab/internal/logger"
	"github.com/vcrobe/crosslab/internal/server"
)

// CLI defines the devserver command structure.
type CLI struct {
	Serve ServeCmd `cmd:"" default:"withargs" help:"Serve the demo page"`
}

// ServeCmd starts the HTTP server. Flags override the environment.
type ServeCmd struct {
	Port    string `flag:"" optional:"" help:"Port to listen on (default: $PORT or 8080)"`
	Root    string `flag:"" optional:"" help:"Directory holding index.html and main.wasm (default: $WEB_ROOT)"`
	EnvFile string `flag:"" default:".env" help:"Optional dotenv file"`
}

// Run executes the serve command.
func (c *ServeCmd) Run() error {
	cfg, err := config.LoadWithDotenv(c.EnvFile)
	if err != nil {
		return err
	}
	if c.Port != "" {
		cfg.Port = c.Port
	}
	if c.Root != "" {
		cfg.WebRoot = c.Root
	}

	appLogger := logger.SetupLogger(cfg)
	appLogger.Info("Starting crosslab dev server",
		"env", cfg.Env,
		"port", cfg.Port,
		"web_root", cfg.WebRoot,
	)

	return server.Run(server.New(cfg, appLogger))
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("devserver"),
		kong.Description("Serve the crosslab button demo."),
	)
	if err := ctx.Run(); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}
