package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/avex/internal/catalog"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldCategory
	fieldAvatars
	fieldBoothID
	fieldPath
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Author", "Category", "Avatars", "Booth ID", "Path", "Image"}

// avatarSep separates supported avatar paths in the form.
const avatarSep = ";"

type formOutcome int

const (
	formPending formOutcome = iota
	formSubmitted
	formCancelled
)

// itemForm edits one item inside the explorer.
type itemForm struct {
	original   catalog.Item
	custom     []string
	inputs     []textinput.Model
	focused    int
	confirming bool
	err        error
	result     catalog.Item
	activeCmd  string
}

func newItemForm(it catalog.Item, customCategories []string) *itemForm {
	f := &itemForm{
		original: it,
		custom:   customCategories,
		inputs:   make([]textinput.Model, fieldCount),
	}

	const fieldWidth = 48
	values := [fieldCount]string{
		it.Title,
		it.AuthorName,
		categoryText(it),
		strings.Join(it.SupportedAvatar, avatarSep+" "),
		"",
		it.ItemPath,
		it.ImagePath,
	}
	if it.HasBoothID() {
		values[fieldBoothID] = strconv.Itoa(it.BoothID)
	}
	placeholders := [fieldCount]string{
		"Item title",
		"Author name",
		strings.Join(typeNames(), ", "),
		"/path/to/avatar" + avatarSep + " /path/to/other",
		"12345",
		"/path/to/item",
		"/path/to/thumbnail.png",
	}

	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.SetValue(values[i])
		in.CursorEnd()
		in.CharLimit = 1024
		in.Width = fieldWidth
		in.Prompt = "│ "
		f.inputs[i] = in
	}
	f.inputs[fieldBoothID].CharLimit = 12
	f.inputs[fieldTitle].Focus()
	return f
}

func categoryText(it catalog.Item) string {
	if it.Type == catalog.TypeCustom {
		return it.CustomCategory
	}
	return string(it.Type)
}

func typeNames() []string {
	names := make([]string, len(catalog.FixedTypes))
	for i, t := range catalog.FixedTypes {
		names[i] = string(t)
	}
	return names
}

// parseCategory maps a type name or custom category label to a type and
// custom label.
func parseCategory(s string, custom []string) (catalog.ItemType, string, error) {
	s = strings.TrimSpace(s)
	if t := catalog.ParseItemType(strings.ToLower(s)); t != catalog.TypeUnknown && t != catalog.TypeCustom {
		return t, "", nil
	}
	for _, c := range custom {
		if strings.EqualFold(c, s) {
			return catalog.TypeCustom, c, nil
		}
	}
	return "", "", fmt.Errorf("unknown category %q", s)
}

func splitAvatars(s string) []string {
	var out []string
	for _, p := range strings.Split(s, avatarSep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// build validates the inputs and returns the edited item.
func (f *itemForm) build() (catalog.Item, error) {
	it := f.original
	it.Title = strings.TrimSpace(f.inputs[fieldTitle].Value())
	it.AuthorName = strings.TrimSpace(f.inputs[fieldAuthor].Value())
	it.ItemPath = strings.TrimSpace(f.inputs[fieldPath].Value())
	it.ImagePath = strings.TrimSpace(f.inputs[fieldImage].Value())
	it.SupportedAvatar = splitAvatars(f.inputs[fieldAvatars].Value())

	if it.Title == "" {
		return it, fmt.Errorf("title is required")
	}
	if it.ItemPath == "" {
		return it, fmt.Errorf("path is required")
	}

	t, label, err := parseCategory(f.inputs[fieldCategory].Value(), f.custom)
	if err != nil {
		return it, err
	}
	it.Type, it.CustomCategory = t, label

	it.BoothID = catalog.NoBoothID
	if s := strings.TrimSpace(f.inputs[fieldBoothID].Value()); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id < 0 {
			return it, fmt.Errorf("invalid Booth id %q", s)
		}
		it.BoothID = id
	}
	return it, nil
}

func (f *itemForm) focus(i int) tea.Cmd {
	f.focused = (i + len(f.inputs)) % len(f.inputs)
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focused {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *itemForm) submit() formOutcome {
	it, err := f.build()
	if err != nil {
		f.err = err
		f.confirming = false
		return formPending
	}
	f.result = it
	return formSubmitted
}

// Update handles one message while the form is open.
func (f *itemForm) Update(msg tea.Msg) (formOutcome, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		f.activeCmd = ""
		return formPending, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return formCancelled, nil

		case "enter":
			if f.confirming {
				return f.submit(), nil
			}
			if _, err := f.build(); err != nil {
				f.err = err
				return formPending, nil
			}
			f.err = nil
			f.confirming = true
			return formPending, nil

		case "y", "Y":
			if f.confirming {
				return f.submit(), nil
			}

		case "n", "N":
			if f.confirming {
				f.confirming = false
				return formPending, nil
			}

		case "tab", "shift+tab", "up", "down":
			if f.confirming {
				return formPending, nil
			}
			next := f.focused + 1
			if msg.String() == "up" || msg.String() == "shift+tab" {
				next = f.focused - 1
			}
			f.activeCmd = "tab"
			return formPending, tea.Batch(f.focus(next), HighlightCmd())
		}
	}

	if f.confirming {
		return formPending, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return formPending, cmd
}

func (f *itemForm) View() string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(11).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := formLabel.
		Foreground(ColorYellow).
		Bold(true)

	const w = 62
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Edit Item"))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(truncateText(f.original.ItemPath, w)))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if f.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", f.err)))
		b.WriteString("\n\n")
	}

	for i, label := range fieldLabels {
		if i == f.focused && !f.confirming {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	if f.confirming {
		b.WriteString(StyleHighlight.Render("  Apply changes? "))
		b.WriteString(StyleHelp.Render("Y/n"))
	} else {
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "tab", Label: "Tab/↑↓ navigate"},
			{Key: "", Label: "enter submit"},
			{Key: "", Label: "esc cancel"},
		}, f.activeCmd))
	}
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return StyleBorderFocused.Render(innerPadding.Render(b.String()))
}
