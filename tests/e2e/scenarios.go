package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const sampleListing = `CHAPTER TITLE	START TIME
Volume 1

Introduction - 0:00
Closed guard basics (4:35)
thanks for watching

DVD 2
Armbar from mount 123
Triangle details 1:02:33
`

// setupListing writes a pasted listing and a config that disables color.
func setupListing(ctx *harness.Context) error {
	dir := ctx.NewDir("work")
	if err := fs.CreateDir(dir); err != nil {
		return err
	}

	listingPath := filepath.Join(dir, "toc.txt")
	if err := fs.WriteString(listingPath, sampleListing); err != nil {
		return fmt.Errorf("failed to write toc.txt: %w", err)
	}
	configPath := filepath.Join(dir, "tocfmt.yml")
	if err := fs.WriteString(configPath, "format:\n  color: never\n"); err != nil {
		return fmt.Errorf("failed to write tocfmt.yml: %w", err)
	}

	ctx.Set("listing", listingPath)
	ctx.Set("config", configPath)
	ctx.Set("home", dir)
	return nil
}

// FormatFileScenario tests 'tocfmt format <file>'
func FormatFileScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "tocfmt-format-file",
		Steps: []harness.Step{
			harness.NewStep("Write sample listing", setupListing),
			harness.NewStep("Run 'tocfmt format'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "format", ctx.GetString("listing"), "--config-file", ctx.GetString("config")).
					Env("HOME=" + ctx.GetString("home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "tocfmt format should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Volume 1\n00:00 - Introduction", "Header should be followed directly by its first entry"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "0:01:23 - Armbar From Mount", "Three digit timestamp should widen in a long block"); err != nil {
					return err
				}
				if err := assert.NotContains(result.Stdout, "Thanks", "Lines without timestamps should be dropped"); err != nil {
					return err
				}
				return assert.NotContains(result.Stdout, "CHAPTER TITLE", "Table markers should be removed")
			}),
		},
	}
}

// FormatJSONScenario tests 'tocfmt format --json'
func FormatJSONScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "tocfmt-format-json",
		Steps: []harness.Step{
			harness.NewStep("Write sample listing", setupListing),
			harness.NewStep("Run 'tocfmt format --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "format", ctx.GetString("listing"), "--json", "--config-file", ctx.GetString("config")).
					Env("HOME=" + ctx.GetString("home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("tocfmt format --json failed: %s", result.Stderr)
				}

				var parsed struct {
					Lines []map[string]interface{} `json:"lines"`
					Dropped int                    `json:"dropped"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &parsed); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if len(parsed.Lines) != 7 {
					return fmt.Errorf("expected 7 outline lines, got %d", len(parsed.Lines))
				}
				for _, line := range parsed.Lines {
					if _, ok := line["kind"]; !ok {
						return fmt.Errorf("missing kind field in JSON output")
					}
				}
				return assert.Equal(1, parsed.Dropped, "One line should be dropped")
			}),
		},
	}
}

// TitleScenario tests 'tocfmt title'
func TitleScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "tocfmt-title",
		Steps: []harness.Step{
			harness.NewStep("Run 'tocfmt title'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "title", "the", "art", "of", "the", "takedown")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "tocfmt title should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "The Art of the Takedown", "Interior small words stay lowercase")
			}),
		},
	}
}
