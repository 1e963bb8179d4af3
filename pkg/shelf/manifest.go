package shelf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mayakit/shelf/pkg/icon"
	"github.com/mayakit/shelf/pkg/shelfdir"
	"github.com/mayakit/shelf/pkg/tool"
)

// Manifest renders a deterministic text description of what a build of the
// given categories would create: one line per button, menu item, and
// separator. It is written after each build and diffed against a fresh
// scan to answer "what would change on rebuild".
func Manifest(spec Spec, cats []Category) string {
	d := shelfdir.New(spec.Root)
	icons := icon.NewResolver(d.IconsDir(), spec.DefaultIcon)

	var sb strings.Builder

	fmt.Fprintf(&sb, "shelf %s\n", spec.Name)

	for _, cat := range cats {
		fmt.Fprintf(&sb, "category %s\n", cat.Name)

		for _, t := range cat.Tools {
			writeButtonLine(&sb, t, icons)
		}

		for _, p := range cat.Popups {
			if p.Primary != nil {
				fmt.Fprintf(&sb, "  popup %q primary=%s\n", p.Name, p.Primary.Path)
			} else {
				fmt.Fprintf(&sb, "  popup %q\n", p.Name)
			}

			for _, item := range p.Items {
				fmt.Fprintf(&sb, "    item %q %s %s\n", item.DisplayName(), item.Language, item.Path)
			}
		}

		sb.WriteString("  separator\n")
	}

	return sb.String()
}

// writeButtonLine renders one flat button, including its resolved icon and
// double-click companion when present.
func writeButtonLine(sb *strings.Builder, t tool.Tool, icons icon.Resolver) {
	fmt.Fprintf(sb, "  button %q %s %s icon=%s", t.DisplayName(), t.Language, t.Path, icons.Resolve(t.Name))

	if dcc, ok := tool.FindDoubleClick(t.Path); ok {
		fmt.Fprintf(sb, " dcc=%s", dcc.Path)
	}

	sb.WriteString("\n")
}

// WriteManifest saves the manifest for the given categories under the shelf
// root's state directory.
func WriteManifest(spec Spec, cats []Category) error {
	d := shelfdir.New(spec.Root)

	if err := shelfdir.EnsureState(d); err != nil {
		return err
	}

	if err := os.WriteFile(d.ManifestPath(), []byte(Manifest(spec, cats)), 0o600); err != nil {
		return fmt.Errorf("shelf: write manifest: %w", err)
	}

	return nil
}

// ReadManifest loads the manifest saved by the last build. A missing file
// yields an empty string: diffing against it shows the whole shelf as new.
func ReadManifest(spec Spec) (string, error) {
	data, err := os.ReadFile(shelfdir.New(spec.Root).ManifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("shelf: read manifest: %w", err)
	}

	return string(data), nil
}

// DiffManifest returns a unified diff between the saved manifest and a
// fresh one, or an empty string when nothing would change.
func DiffManifest(saved, fresh string) (string, error) {
	if saved == fresh {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(saved),
		B:        difflib.SplitLines(fresh),
		FromFile: "built",
		ToFile:   "scan",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("shelf: diff manifest: %w", err)
	}

	return diff, nil
}
