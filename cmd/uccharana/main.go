package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/vtelikepalli/uccharana/internal/cli"
	"codeberg.org/vtelikepalli/uccharana/internal/gui"
	"codeberg.org/vtelikepalli/uccharana/internal/logging"
	"codeberg.org/vtelikepalli/uccharana/internal/models"
	"codeberg.org/vtelikepalli/uccharana/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetAPIKey(), models.BaseURLFromEndpoint(flags.Endpoint))
		return lister.ListAvailableModels()
	}

	log, err := logging.Setup(logging.Options{Dir: flags.LogDir})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Close()

	batchMode := len(args) > 0 || flags.BatchFile != "" || flags.NoGUI

	// Fail fast when no credential is configured: batch mode reports
	// on stderr, GUI mode shows a blocking error window instead of
	// the form.
	if cli.GetAPIKey() == "" {
		msg := fmt.Sprintf("%s environment variable not set. Set it (or add api.key to the config file) and restart.", cli.APIKeyEnvVar)
		log.Error("missing API key", "env", cli.APIKeyEnvVar)
		if batchMode {
			return fmt.Errorf("%s", msg)
		}
		gui.ShowFatalConfigError(msg)
		return nil
	}

	proc := processor.NewProcessor(flags, log)

	if batchMode {
		return proc.ProcessBatch(args)
	}
	return proc.RunGUIMode()
}
