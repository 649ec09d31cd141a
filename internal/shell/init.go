package shell

import (
	"fmt"
	"io"
	"strings"
)

// Shells lists the shells with an integration script.
var Shells = []string{"bash", "zsh"}

// WriteInit writes the integration script for shell.
func WriteInit(w io.Writer, shell string) error {
	switch strings.ToLower(shell) {
	case "bash":
		WriteBashInit(w)
	case "zsh":
		WriteZshInit(w)
	default:
		return fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Shells, ", "))
	}
	return nil
}

// WriteEnv writes the status as shell variable assignments for eval.
func WriteEnv(w io.Writer, st Status) {
	today := 0
	if st.Today {
		today = 1
	}
	fmt.Fprintf(w, "export MOODCTL_TODAY=%d\n", today)
	fmt.Fprintf(w, "export MOODCTL_MOOD=%q\n", st.Mood)
	fmt.Fprintf(w, "export MOODCTL_STREAK=%d\n", st.Streak)
}

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) {
	io.WriteString(w, `# moodctl shell integration
__moodctl_prompt_hook() {
  eval "$(command moodctl status --env 2>/dev/null)"
}

moodctl_prompt_info() {
  if [[ "$MOODCTL_TODAY" == "1" ]]; then
    printf '%s %s' "$MOODCTL_MOOD" "$MOODCTL_STREAK"
  else
    printf '?'
  fi
}

if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__moodctl_prompt_hook"
else
  PROMPT_COMMAND="__moodctl_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command moodctl completion bash 2>/dev/null)"
`)
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) {
	io.WriteString(w, `# moodctl shell integration
__moodctl_prompt_hook() {
  eval "$(command moodctl status --env 2>/dev/null)"
}

moodctl_prompt_info() {
  if [[ "$MOODCTL_TODAY" == "1" ]]; then
    printf '%s %s' "$MOODCTL_MOOD" "$MOODCTL_STREAK"
  else
    printf '?'
  fi
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __moodctl_prompt_hook

eval "$(command moodctl completion zsh 2>/dev/null)"
`)
}
