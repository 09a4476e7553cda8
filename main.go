package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"os"
)

const ExitCodeMainError = 1

func main() {
	os.Exit(handleExitError(os.Stderr, newRootCommand(os.Stdout).Execute()))
}

func newRootCommand(out io.Writer) *cobra.Command {
	var envFilename string

	rootCmd := &cobra.Command{
		Use:           defaultAppName,
		Short:         "Dispatch process runtime events and commands",
		Long:          "Consumes runtime events into the query and audit projections and executes runtime commands, publishing their results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runApp(out, envFilename)
		},
	}

	rootCmd.Flags().StringVar(&envFilename, "env-file", "", "env file to load, .env in the working dir is used when present")

	return rootCmd
}

func runApp(out io.Writer, envFilename string) error {
	var serviceContainer *ServiceContainer

	if envFilename == "" {
		if _, err := os.Stat(".env"); err == nil {
			envFilename = ".env"
		}
	}

	config, err := loadConfig(envFilename)
	if err == nil {
		serviceContainer, err = NewServiceContainer(config, out)
	}

	if err != nil {
		return err
	}

	defer func() {
		_ = serviceContainer.Redis.Close()
	}()

	serviceContainer.Executor.Execute()

	return nil
}

func handleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
