// Package starship wires jj-prompt into the Starship prompt framework by
// editing the user's starship.toml: a [custom.jj] module that runs the
// prompt pipeline, gated by `jj-prompt detect` so starship never pays for
// the full query outside a jj repository.
package starship

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Install appends the jj module to the user's starship.toml configuration
// file and attempts to add it to the main prompt format.
func Install(binaryName string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get home directory: %w", err)
	}

	configPath := filepath.Join(home, ".config", "starship.toml")

	contentBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("starship config not found at %s. Please ensure starship is installed and configured", configPath)
		}
		return fmt.Errorf("could not read starship config: %w", err)
	}

	content := addModule(string(contentBytes), binaryName)
	content = addToFormat(content, configPath)

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write updated starship config: %w", err)
	}

	fmt.Printf("\nSuccessfully updated %s. Please restart your shell to see the changes.\n", configPath)
	return nil
}

func moduleConfig(binaryName string) string {
	return fmt.Sprintf(`
# Added by '%s install'
[custom.jj]
description = "Shows jj working copy status"
command = "%s"
when = "%s detect"
format = "$output "
`, binaryName, binaryName, binaryName)
}

// addModule adds or updates the [custom.jj] module definition. A section
// written by a different tool is left alone to avoid clobbering it.
func addModule(content, binaryName string) string {
	module := moduleConfig(binaryName)

	if !strings.Contains(content, "[custom.jj]") {
		fmt.Println("✓ Added [custom.jj] module to starship config.")
		return content + module
	}

	if !strings.Contains(content, fmt.Sprintf(`command = "%s"`, binaryName)) {
		fmt.Printf("ℹ️  [custom.jj] already exists with a different command.\n")
		fmt.Printf("   Keeping existing configuration to avoid conflicts.\n")
		return content
	}

	// Same command - replace the entire section
	startIdx := strings.Index(content, "[custom.jj]")
	afterModule := content[startIdx:]
	nextSectionIdx := strings.Index(afterModule[1:], "\n[")

	endIdx := len(content)
	if nextSectionIdx != -1 {
		endIdx = startIdx + nextSectionIdx + 1
	}

	fmt.Println("✓ Updated existing jj starship module configuration.")
	return content[:startIdx] + strings.TrimPrefix(module, "\n") + content[endIdx:]
}

// addToFormat inserts ${custom.jj} into the prompt format if absent.
func addToFormat(content, configPath string) string {
	if strings.Contains(content, "${custom.jj}") || strings.Contains(content, "$custom.jj") {
		fmt.Println("✓ jj module already in starship format.")
		return content
	}

	// Try to insert it after git_status, which is a common element.
	target := "$git_status\\"
	if strings.Contains(content, target) {
		replacement := target + "\n${custom.jj}\\"
		fmt.Println("✓ Added jj module to starship format.")
		return strings.Replace(content, target, replacement, 1)
	}

	fmt.Printf("⚠️  Could not automatically add '${custom.jj}' to your starship format.\n")
	fmt.Printf("   Please add it manually to the 'format' string in %s\n", configPath)
	return content
}
