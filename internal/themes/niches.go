package themes

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"

	"github.com/vowcraft/vowcraft/content"
)

var ErrNicheFileInvalid = errors.New("themes: niche file invalid")

// nicheFrontmatter is the YAML header of a niche preset file.
type nicheFrontmatter struct {
	Slug    string `yaml:"slug"`
	Label   string `yaml:"label"`
	Theme   string `yaml:"theme"`
	Color   string `yaml:"color"`
	Tagline string `yaml:"tagline"`
}

// LoadNiches parses the markdown preset files under dir and returns the
// niches they declare, keyed by theme id. The frontmatter supplies the
// structured overrides (palette color, hero tagline); the markdown body is
// rendered to HTML and carried as marketing copy, which the editor ignores
// because no theme schema declares it.
func LoadNiches(fsys fs.FS, dir string) (map[string][]Niche, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	out := map[string][]Niche{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := path.Join(dir, entry.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		niche, themeID, err := parseNicheFile(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNicheFileInvalid, name, err)
		}
		out[themeID] = append(out[themeID], niche)
	}
	return out, nil
}

func parseNicheFile(raw []byte) (Niche, string, error) {
	var meta nicheFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Niche{}, "", err
	}
	if strings.TrimSpace(meta.Slug) == "" {
		return Niche{}, "", errors.New("slug required")
	}
	if strings.TrimSpace(meta.Theme) == "" {
		return Niche{}, "", errors.New("theme required")
	}

	overrides := content.Document{}
	if color := strings.TrimSpace(meta.Color); color != "" {
		overrides[content.SectionTheme] = map[string]any{
			"global": map[string]any{
				"palette": map[string]any{"primary": color},
			},
		}
	}
	if tagline := strings.TrimSpace(meta.Tagline); tagline != "" {
		overrides[content.SectionHero] = map[string]any{"tagline": tagline}
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		var rendered bytes.Buffer
		if err := goldmark.Convert(trimmed, &rendered); err != nil {
			return Niche{}, "", err
		}
		overrides["marketing"] = map[string]any{"body": rendered.String()}
	}

	label := strings.TrimSpace(meta.Label)
	if label == "" {
		label = meta.Slug
	}
	return Niche{Slug: meta.Slug, Label: label, Overrides: overrides}, meta.Theme, nil
}
