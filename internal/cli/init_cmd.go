package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/phaseline/internal/cli/formatter"
	"github.com/alexanderramin/phaseline/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// configFormValues are the string-typed form fields for the config file.
type configFormValues struct {
	sourceKind string
	sheetID    string
	url        string
	file       string
	months     string
	keep       string
}

const (
	sourceSheet = "sheet"
	sourceURL   = "url"
	sourceFile  = "file"
)

func newConfigFormValues(cfg config.Config) configFormValues {
	v := configFormValues{
		sourceKind: sourceSheet,
		sheetID:    cfg.Source.SheetID,
		url:        cfg.Source.URL,
		file:       cfg.Source.File,
		months:     strconv.Itoa(cfg.View.Months),
		keep:       strconv.Itoa(cfg.Storage.KeepSnapshots),
	}
	switch {
	case cfg.Source.File != "":
		v.sourceKind = sourceFile
	case cfg.Source.URL != "":
		v.sourceKind = sourceURL
	}
	return v
}

// apply copies the form values onto cfg. Only the chosen source kind is
// kept so the file never names two sources.
func (v configFormValues) apply(cfg config.Config) config.Config {
	cfg.Source.SheetID, cfg.Source.URL, cfg.Source.File = "", "", ""
	switch v.sourceKind {
	case sourceFile:
		cfg.Source.File = strings.TrimSpace(v.file)
	case sourceURL:
		cfg.Source.URL = strings.TrimSpace(v.url)
	default:
		cfg.Source.SheetID = strings.TrimSpace(v.sheetID)
	}
	if n, err := strconv.Atoi(v.months); err == nil && n > 0 {
		cfg.View.Months = n
	}
	if n, err := strconv.Atoi(v.keep); err == nil && n > 0 {
		cfg.Storage.KeepSnapshots = n
	}
	return cfg
}

func phaselineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func configForm(v *configFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where does the project sheet live?").
				Options(
					huh.NewOption("Google Sheet ID", sourceSheet),
					huh.NewOption("CSV export URL", sourceURL),
					huh.NewOption("Local CSV file", sourceFile),
				).
				Value(&v.sourceKind),
		),
		huh.NewGroup(
			huh.NewInput().Title("Sheet ID").Placeholder("1AbC...xyz").Value(&v.sheetID).Validate(validateRequired),
		).WithHideFunc(func() bool { return v.sourceKind != sourceSheet }),
		huh.NewGroup(
			huh.NewInput().Title("CSV URL").Placeholder("https://...").Value(&v.url).Validate(validateRequired),
		).WithHideFunc(func() bool { return v.sourceKind != sourceURL }),
		huh.NewGroup(
			huh.NewInput().Title("CSV file path").Placeholder("./projects.csv").Value(&v.file).Validate(validateRequired),
		).WithHideFunc(func() bool { return v.sourceKind != sourceFile }),
		huh.NewGroup(
			huh.NewInput().Title("Months per view").Value(&v.months).Validate(validatePositiveInt),
			huh.NewInput().Title("Snapshots to keep").Value(&v.keep).Validate(validatePositiveInt),
		),
	).WithTheme(phaselineHuhTheme()).WithShowHelp(false)
}

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the configuration file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("init needs an interactive terminal; edit %s directly instead", app.ConfigPath)
			}

			values := newConfigFormValues(app.Config)
			if err := configForm(&values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
				return err
			}

			cfg := values.apply(app.Config)
			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			app.Config = cfg
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Saved"), app.ConfigPath)
			return nil
		},
	}
}
