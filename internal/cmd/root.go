// Package cmd provides the command-line interface for sitecheck.
// It handles command parsing, configuration loading, and runs the
// validation pipeline.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"sitecheck/internal/checker"
	"sitecheck/internal/config"
	"sitecheck/internal/logging"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitecheck [URLs...]",
	Short: "Validate web pages, their outbound links, markup, and latency",
	Long: `Sitecheck validates a set of web pages.

Each page is fetched and timed. Optionally every outbound reference
(links, images, scripts, embedded media) is checked for reachability,
the markup is validated for well-formedness, and a maximum response
time is enforced. The run fails when any check failed.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runCheck,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Configuration file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sitecheck.yml)")

	// Configuration management flags
	rootCmd.Flags().Bool("show-config", false, "Display current configuration in YAML format and exit")

	// Check selection flags
	rootCmd.Flags().BoolP("check-links", "l", false, "Check every outbound reference of each page")
	rootCmd.Flags().Bool("same-domain", false, "Only check links on the page's own host")
	rootCmd.Flags().Bool("no-redirects", false, "Treat redirect answers as failures for links")
	rootCmd.Flags().StringSliceP("ignore-link", "i", []string{}, "Link URL to skip (exact match, use multiple times)")
	rootCmd.Flags().BoolP("check-markup", "m", false, "Validate markup well-formedness")
	rootCmd.Flags().Duration("max-response-time", 0, "Fail pages slower than this (0=disabled)")

	// HTTP flags
	rootCmd.Flags().StringP("user-agent", "u", "sitecheck/1.0", "HTTP User-Agent header")
	rootCmd.Flags().DurationP("timeout", "t", 30*time.Second, "HTTP request timeout")
	rootCmd.Flags().DurationP("delay", "r", 0, "Delay between requests to one host (0=none)")

	// Logging flags
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("log-file", "", "Also write JSON logs to this file")

	// Bind flags to viper
	bindFlags := []struct {
		viperKey string
		flagName string
	}{
		{"check_links", "check-links"},
		{"only_same_domain", "same-domain"},
		{"no_redirects", "no-redirects"},
		{"ignore_links", "ignore-link"},
		{"check_markup", "check-markup"},
		{"max_response_time", "max-response-time"},
		{"user_agent", "user-agent"},
		{"request_timeout", "timeout"},
		{"request_delay", "delay"},
		{"log_level", "log-level"},
		{"log_file", "log-file"},
	}

	for _, bind := range bindFlags {
		if err := viper.BindPFlag(bind.viperKey, rootCmd.Flags().Lookup(bind.flagName)); err != nil {
			// Log the error but continue - non-critical for operation
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", bind.flagName, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("sitecheck")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvPrefix("SC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func generateUserAgent() string {
	if version != "" && version != "dev" {
		return fmt.Sprintf("sitecheck/%s", version)
	}
	return "sitecheck/dev"
}

func showCurrentConfig(cfg *config.RunConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Configuration validation failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "Displaying configuration anyway...\n\n")
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	fmt.Printf("# Current sitecheck configuration\n")
	fmt.Printf("# Generated at: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("# Configuration file search paths: ./sitecheck.yml\n")
	fmt.Printf("# Environment variables prefix: SC_\n\n")

	fmt.Print(string(yamlData))

	fmt.Printf("\n# Configuration source priority:\n")
	fmt.Printf("# 1. Command-line arguments (highest priority)\n")
	fmt.Printf("# 2. Environment variables (SC_ prefix)\n")
	fmt.Printf("# 3. Configuration file (sitecheck.yml)\n")
	fmt.Printf("# 4. Default values (lowest priority)\n")

	return nil
}

// buildConfig assembles the run configuration from defaults, viper
// sources, and positional arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.RunConfig, error) {
	cfg := config.DefaultConfig()

	// Pages come from the command line, or from the config file when
	// no arguments are given.
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(args) > 0 {
		cfg.PageURLs = args
	}

	// Update User-Agent with dynamic version if not explicitly set
	if !cmd.Flags().Changed("user-agent") && cfg.UserAgent == "sitecheck/1.0" {
		cfg.UserAgent = generateUserAgent()
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	showConfig, _ := cmd.Flags().GetBool("show-config")

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Handle --show-config: display current configuration and exit
	if showConfig {
		return showCurrentConfig(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.SetDefault(logging.Config{
		Level:    logging.ParseLevel(cfg.LogLevel),
		FilePath: cfg.LogFile,
		Console:  true,
	}); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	chk, err := checker.New(cfg)
	if err != nil {
		return err
	}

	return chk.Run(cmd.Context())
}
