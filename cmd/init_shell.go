package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/shell"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

Generates shell-specific initialization code that sets up:
- Shell completions
- Prompt hook exporting MOODCTL_TODAY, MOODCTL_MOOD and MOODCTL_STREAK
- moodctl_prompt_info helper function

Supported shells: bash, zsh`,
	Example: `  # Add to ~/.bashrc
  eval "$(moodctl init bash)"

  # Add to ~/.zshrc
  eval "$(moodctl init zsh)"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Shells,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.WriteInit(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}
