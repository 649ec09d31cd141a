package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Header builds the comment block shown above the journal text.
func Header(moodToken string, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Journal for %s", date)
	if moodToken != "" {
		fmt.Fprintf(&b, " (mood %s)", moodToken)
	}
	b.WriteString("\n# Lines starting with '#' are ignored. An empty entry aborts.\n")
	return b.String()
}

// StripComments drops '#' comment lines and trims surrounding blank space.
func StripComments(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Compose opens the editor on header plus content and returns the journal
// text with comment lines removed. changed is false when the result is
// empty or identical to content.
func Compose(ctx context.Context, editorCmd, header, content string) (result string, changed bool, err error) {
	raw, err := run(ctx, editorCmd, header+"\n"+content)
	if err != nil {
		return "", false, err
	}
	result = StripComments(raw)
	if result == "" {
		return "", false, nil
	}
	if result == strings.TrimSpace(content) {
		return content, false, nil
	}
	return result, true, nil
}

func run(ctx context.Context, editorCmd, initial string) (string, error) {
	tmp, err := os.CreateTemp("", "moodctl-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty editor command")
	}

	cmdArgs := append(parts[1:], tmpName)
	cmd := exec.CommandContext(ctx, parts[0], cmdArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(data), nil
}
