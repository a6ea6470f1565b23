package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cl-interface/internal/application/usecases"
	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/errors"
	"cl-interface/internal/infrastructure/config"
	"cl-interface/internal/infrastructure/container"
	"cl-interface/internal/infrastructure/result"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	name = "cl-interface"

	description = `Classifies a front panel, management, loopback, bridge or bond interface
and reports the interface type and its assembled configuration.

The arguments file is written by the automation engine and holds either a
JSON/YAML mapping or a single "key=value" line.

OPTIONS (arguments file):
   name        name of the interface (required)
   ipv4        list of IPv4 addresses to configure on the interface, CIDR syntax
   ipv6        list of IPv6 addresses to configure on the interface, CIDR syntax
   bridgemems  list of ports associated with the bridge interface
   bondmems    list of ports associated with the bond interface
               (mutually exclusive with bridgemems)

EXAMPLES:
   # front panel port with an IP
   name=swp1 ipv4=10.1.1.1/24

   # front panel port with multiple IPs
   name=swp1 ipv4="['10.1.1.1/24', '20.1.1.1/24']"

   # bridge interface with a few trunk members and an access port
   name=br0 bridgemems="['swp1-10.100', 'swp11']"

   # bond interface with an IP address
   name=bond0 bondmems="['swp1', 'swp2']" ipv4=10.1.1.1/24`
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the module and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	exitCode := 0

	app := cli.NewApp()
	app.Name = name
	app.Usage = "configures a front panel, management, loopback, bridge or bond interface"
	app.UsageText = name + " [global options] <args-file>"
	app.Description = description
	app.Version = constants.ModuleVersion
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level, l",
			Value: "",
			Usage: "log level, overrides LOG_LEVEL (panic, fatal, error, warn, info, debug, trace)",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: "result format, overrides OUTPUT_FORMAT (json or yaml)",
		},
		cli.StringFlag{
			Name:  "metrics-textfile",
			Value: "",
			Usage: "node exporter textfile collector path, overrides METRICS_TEXTFILE",
		},
	}
	app.Action = func(c *cli.Context) error {
		exitCode = execute(c, stdout, stderr)
		return nil
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 2
	}
	return exitCode
}

func execute(c *cli.Context, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(c)
	if err != nil {
		// no logger configuration is usable yet, report with defaults
		logger := logrus.New()
		logger.SetOutput(stderr)
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.WithError(err).Error("Failed to load configuration")
		return report(result.NewReporter(stdout, constants.DefaultOutputFormat, logger), result.Failure(err), logger)
	}

	logger := cfg.NewLogger(stderr)

	appContainer, err := container.NewContainer(cfg, logger, stdout)
	if err != nil {
		logger.WithError(err).Error("Failed to create dependency injection container")
		return report(result.NewReporter(stdout, cfg.Output.Format, logger), result.Failure(err), logger)
	}
	defer func() {
		if err := appContainer.Close(); err != nil {
			logger.WithError(err).Warn("Failed to write metrics")
		}
	}()

	reporter := appContainer.GetReporter()
	argsFile := c.Args().First()

	req, err := appContainer.GetArgumentLoader().Load(argsFile)
	if err != nil {
		logger.WithError(err).WithField("args_file", argsFile).Error("Failed to load module arguments")
		appContainer.GetMetricsRecorder().RecordError(strings.ToLower(string(errors.TypeOf(err))))
		return report(reporter, result.Failure(err), logger)
	}

	output, err := appContainer.GetConfigureInterfaceUseCase().Execute(context.Background(), usecases.ConfigureInterfaceInput{
		Request: req,
	})
	if err != nil {
		return report(reporter, result.Failure(err), logger)
	}

	return report(reporter, result.Success(output.InterfaceType, output.Canonical), logger)
}

// loadConfig loads the environment configuration and applies flag overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.NewEnvironmentConfigLoader().Load()
	if err != nil {
		return nil, err
	}

	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output.Format = v
	}
	if v := c.String("metrics-textfile"); v != "" {
		cfg.Metrics.TextfilePath = v
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func report(reporter *result.Reporter, res result.ModuleResult, logger *logrus.Logger) int {
	if err := reporter.Report(res); err != nil {
		logger.WithError(err).Error("Failed to report module result")
		return 1
	}
	return res.ExitCode()
}
