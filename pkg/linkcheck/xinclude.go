package linkcheck

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// xmllintTool is the external XML processor used for include expansion.
// DocBook books spread across files via XInclude; links in included
// files are only visible after expansion.
const xmllintTool = "xmllint"

// CheckExpandTool verifies the external XML processor is installed.
// Called before any processing begins so a missing tool is a startup
// failure, never a mid-run one.
func CheckExpandTool() error {
	if _, err := exec.LookPath(xmllintTool); err != nil {
		return fmt.Errorf("required tool %q not found in PATH: %w", xmllintTool, err)
	}
	return nil
}

// ExpandIncludes renders the file with XInclude references resolved and
// returns the expanded text. The XML processor is treated as a black
// box; its output feeds the same Extract pass as plain content.
func ExpandIncludes(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, xmllintTool, "--xinclude", "--noent", path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s --xinclude %s: %w: %s",
			xmllintTool, path, err, stderr.String())
	}

	return stdout.String(), nil
}
