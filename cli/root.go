// Package cli wires the jj-prompt commands together: the default prompt
// rendering, the cheap detect gate starship uses before invoking the full
// pipeline, the starship.toml installer, and version output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/jj-prompt/command"
	"github.com/grovetools/jj-prompt/errors"
	"github.com/grovetools/jj-prompt/jj"
	"github.com/grovetools/jj-prompt/logging"
	"github.com/grovetools/jj-prompt/prompt"
	"github.com/grovetools/jj-prompt/starship"
)

const binaryName = "jj-prompt"

// NewRootCmd builds the command tree. Running the root with no subcommand
// renders the prompt line.
func NewRootCmd(info VersionInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   binaryName,
		Short: "Fast jj status line for the Starship prompt",
		// On any unrecoverable error stdout must stay empty so the host
		// framework shows no segment; diagnostics go to stderr only.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.SetVerbose(verbose)
		},
		RunE: runPrompt,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging on stderr")
	pf.String("cwd", "", "Override the working directory")
	pf.Int("id-length", 4, "Number of change id characters to display")
	pf.String("symbol", " ", "Symbol printed before the change id")
	pf.Bool("no-color", false, "Disable ANSI colors")
	pf.Bool("no-file-count", false, "Skip the changed-file probe (faster)")

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the prompt line (the default command)",
		RunE:  runPrompt,
	}

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Exit 0 inside a jj repository, 1 otherwise",
		RunE:  runDetect,
	}

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Add the jj module to your starship.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := starship.Install(binaryName); err != nil {
				PrintError(cmd, err)
				return err
			}
			return nil
		},
	}

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(NewVersionCmd(binaryName, info))

	SetStyledHelp(rootCmd)

	return rootCmd
}

// buildConfig assembles the immutable render configuration: compiled
// defaults, then the optional config file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (prompt.Config, error) {
	cfg, err := prompt.Default().WithFile(prompt.DefaultConfigPath())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("cwd") {
		cfg.Cwd, _ = flags.GetString("cwd")
	}
	if flags.Changed("id-length") {
		cfg.IDLength, _ = flags.GetInt("id-length")
	}
	if flags.Changed("symbol") {
		cfg.Symbol, _ = flags.GetString("symbol")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.ColorEnabled = !noColor
	}
	if flags.Changed("no-file-count") {
		noFileCount, _ := flags.GetBool("no-file-count")
		cfg.IncludeFileCount = !noFileCount
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	handler := NewErrorHandler(verbose)

	cfg, err := buildConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	line, err := prompt.Run(cmd.Context(), command.NewRunner(), cfg)
	if err != nil {
		return handler.Handle(err)
	}

	fmt.Fprint(cmd.OutOrStdout(), line)
	return nil
}

// runDetect is the exit-code contract the host framework's conditional
// execution relies on. Display flags deliberately play no part here.
func runDetect(cmd *cobra.Command, args []string) error {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	if !jj.IsRepo(cwd) {
		return errors.NotInRepo(cwd)
	}
	return nil
}
