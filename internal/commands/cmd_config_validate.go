package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/bingo/internal/core/config"
	"github.com/colonyops/bingo/internal/core/styles"
	"github.com/colonyops/bingo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "bingo config validate [options]",
				Description: "Validates the configuration file, checking the theme, targets, keybindings, symbols and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// configResult is the JSON output of bingo config validate.
type configResult struct {
	Valid    bool                       `json:"valid"`
	Path     string                     `json:"path"`
	Errors   []issue                    `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.config()

	validateErr := cmd.flags.ConfigErr
	if validateErr == nil {
		validateErr = cfg.ValidateDeep(cmd.flags.ConfigPath)
	}
	result := configResult{
		Valid:    validateErr == nil,
		Path:     cmd.flags.ConfigPath,
		Errors:   issuesOf(validateErr),
		Warnings: cfg.Warnings(),
	}

	out := c.Root().Writer
	switch cmd.format {
	case config.OutputJSON:
		if err := iojson.WriteWith(out, c.Root().ErrWriter, result); err != nil {
			return err
		}
	case config.OutputText:
		cmd.outputText(out, result)
	default:
		return fmt.Errorf("unknown format %q (text, json)", cmd.format)
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(out io.Writer, result configResult) {
	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.WarningStyle.Render("! "+warn.Category+": "+warn.Message)))
		if warn.Item != "" {
			_, _ = fmt.Fprintf(out, "  Item: %s\n", warn.Item)
		}
	}

	for _, e := range result.Errors {
		label := e.Message
		if e.Field != "" {
			label = e.Field + ": " + e.Message
		}
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.ErrorStyle.Render("✗ "+label)))
	}

	if len(result.Warnings) > 0 || len(result.Errors) > 0 {
		_, _ = fmt.Fprintln(out)
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.SuccessStyle.Render("✓ Configuration is valid")))
		return
	}

	_, _ = fmt.Fprintln(out, cmd.flags.styled(out, styles.ErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(result.Errors)))))
}
