package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/vtelikepalli/uccharana/internal"
)

// APIKeyEnvVar is the environment variable holding the completion API
// credential.
const APIKeyEnvVar = "TOGETHER_API_KEY"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uccharana [word ...]",
		Short: "English to Telugu Pronunciation Converter",
		Long: `uccharana converts English words into phonetic pronunciation guides:
a USA-style Latin respelling plus a Telugu-script rendering of the same
sounds, fetched from a hosted LLM completion endpoint.

Examples:
  uccharana                       # Launch the interactive form (default)
  uccharana toilet computer       # Convert words via CLI
  uccharana --batch words.txt     # Process words from a file
  uccharana --no-gui              # Convert the built-in sample word list`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.uccharana.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", flags.OutputPath, "Output JSON file for batch mode")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, commas accepted)")
	cmd.Flags().StringVar(&flags.LogDir, "log-dir", flags.LogDir, "Directory for per-day log files")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models available for the current API key")
	cmd.Flags().BoolVar(&flags.NoGUI, "no-gui", false, "Run in batch mode even without word arguments")

	// Completion endpoint flags
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", flags.Endpoint, "Completion endpoint URL")
	cmd.Flags().StringVar(&flags.Model, "model", flags.Model, "Model identifier for completion requests")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Token generation ceiling per request")
	cmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", flags.TimeoutSeconds, "Per-request timeout in seconds")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("api.endpoint", fs.Lookup("endpoint"))
	viper.BindPFlag("api.model", fs.Lookup("model"))
	viper.BindPFlag("api.max_tokens", fs.Lookup("max-tokens"))
	viper.BindPFlag("api.timeout", fs.Lookup("timeout"))
	viper.BindPFlag("output.path", fs.Lookup("output"))
	viper.BindPFlag("log.directory", fs.Lookup("log-dir"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Load .env first so the credential check sees it.
	godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".uccharana" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".uccharana")
	}

	// Environment variables
	viper.SetEnvPrefix("UCCHARANA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the completion API key from environment or config
func GetAPIKey() string {
	// First check environment variable
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("api.key")
}
