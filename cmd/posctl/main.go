// Command posctl drives the restaurant POS API from the terminal using the
// same view state as the web screens.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/client"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/views"
	log "github.com/sirupsen/logrus"
)

const usage = `usage: posctl [-server URL] <command> [flags]

commands:
  menu list [-page N] [-rows N]
  menu add -name NAME -price PRICE
  menu edit -id ID [-name NAME] [-price PRICE]
  menu delete -id ID
  sales list
  sales add -menu ID [-qty N]
  sales delete -id ID
  analytics [-start YYYY-MM-DD] [-end YYYY-MM-DD]
  summary [-start YYYY-MM-DD] [-end YYYY-MM-DD]
`

var errUsage = errors.New("invalid usage")

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "production"))
	log.SetLevel(level)
	views.SetLogLevel(level)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, time.Now); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.WithError(err).Error("Command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses global flags and dispatches to a subcommand
func run(ctx context.Context, args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("posctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	server := fs.String("server", config.GetEnvWithDefault("POS_SERVER_URL", "http://localhost:8080"), "API base URL")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	api := client.New(*server)
	log.WithFields(log.Fields{"server": *server, "command": rest[0]}).Debug("Running command")

	switch rest[0] {
	case "menu":
		return runMenu(ctx, api, rest[1:], out)
	case "sales":
		return runSales(ctx, api, rest[1:], out)
	case "analytics":
		return runAnalytics(ctx, api, rest[1:], out, now)
	case "summary":
		return runSummary(ctx, api, rest[1:], out)
	default:
		return errUsage
	}
}
