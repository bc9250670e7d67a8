package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/redmonkez12/glp1-companion/internal/content"
)

// Catalog listing and command status lines
var (
	catalogHeading = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
	itemTypeBadge  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("30"))
	itemTagList    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("109"))
	doneLine       = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	noteLine       = lipgloss.NewStyle().Faint(true)
	failLine       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
)

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// RunContentForm asks for the fields of in that are still empty and
// returns the completed item.
func RunContentForm(in content.NewItem) (content.NewItem, error) {
	var (
		itemType = string(in.Type)
		tags     = strings.Join(in.Tags, ", ")
		url      string
		duration string
	)
	if in.URL != nil {
		url = *in.URL
	}
	if in.Duration != nil {
		duration = *in.Duration
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Protein-First Breakfasts").
				Value(&in.Title).
				Validate(required("title")),

			huh.NewText().
				Title("Description").
				Value(&in.Description).
				Validate(required("description")),

			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Nutrition", string(content.Nutrition)),
					huh.NewOption("Exercise", string(content.Exercise)),
					huh.NewOption("Behavioral", string(content.Behavioral)),
				).
				Value(&itemType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tags").
				Description("Comma separated, e.g. nausea, fatigue").
				Value(&tags),

			huh.NewInput().
				Title("Media URL").
				Description("Optional").
				Value(&url),

			huh.NewInput().
				Title("Duration").
				Description("Optional, e.g. 5 min read").
				Value(&duration),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return content.NewItem{}, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Type = content.Type(itemType)
	in.Tags = content.ParseTags(tags)
	in.URL = optional(url)
	in.Duration = optional(duration)
	return in, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// PrintItems lists catalog entries one per line
func PrintItems(items []content.Item) {
	fmt.Println(catalogHeading.Render(fmt.Sprintf("Content catalog (%d)", len(items))))
	for _, item := range items {
		fmt.Printf("  %s %s %s\n",
			item.Title,
			itemTypeBadge.Render(string(item.Type)),
			itemTagList.Render(strings.Join(item.Tags, ", ")),
		)
	}
	fmt.Println()
}

// PrintSuccess prints a highlighted confirmation line
func PrintSuccess(msg string) {
	fmt.Println(doneLine.Render("✓ " + msg))
}

// PrintInfo prints a dimmed status line
func PrintInfo(msg string) {
	fmt.Println(noteLine.Render(msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(failLine.Render("✗ " + msg))
}
