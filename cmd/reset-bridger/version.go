package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Version is the semantic version of the CLI. It can be overridden at build
// time via -ldflags.
var Version = "0.1.0-dev"

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version,omitempty"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show reset-bridger version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Shares the persistent --format flag; only pretty and json apply.
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			payload := versionPayload{Tool: "reset-bridger", Version: Version}
			if info, ok := debug.ReadBuildInfo(); ok {
				payload.GoVersion = info.GoVersion
			}

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(payload)
			case "pretty":
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", payload.Tool, colorVersion(Version))
				return err
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
}

// colorVersion colors the major, minor and patch parts of a version string.
func colorVersion(v string) string {
	core, suffix, _ := strings.Cut(v, "-")

	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}

	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}

	return out
}
