package integrations

import (
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/tastebook/tastebook/pkg/data"
	"github.com/tastebook/tastebook/pkg/utils"
)

// EPubBuilder writes a fetched recipe out as a standalone EPUB with a
// cover section, the ingredient list and the numbered instructions.
type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

func (p *EPubBuilder) Export(recipe *data.RecipeDetail) (string, error) {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(recipe.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor(recipe.Author.Username)
	if recipe.Description != "" {
		e.SetDescription(recipe.Description)
	}
	e.SetLang("en")

	if err := p.addAboutSection(e, recipe); err != nil {
		return "", err
	}
	if err := p.addIngredientsSection(e, recipe.Ingredients); err != nil {
		return "", err
	}
	if err := p.addInstructionsSection(e, recipe.Instructions); err != nil {
		return "", err
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(recipe.Title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

func (p *EPubBuilder) addAboutSection(e *epub.Epub, recipe *data.RecipeDetail) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(recipe.Title)))

	if imgPath, err := p.stageImage(recipe); err == nil && imgPath != "" {
		internalPath, err := e.AddImage(imgPath, "")
		if err == nil {
			b.WriteString(fmt.Sprintf(
				`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>%s`,
				internalPath, html.EscapeString(recipe.Title), "\n",
			))
		}
	}

	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(recipe.Description)))
	b.WriteString("<ul>\n")
	b.WriteString(fmt.Sprintf("<li>Prep time: %s</li>\n", utils.FormatTime(recipe.PrepTime)))
	b.WriteString(fmt.Sprintf("<li>Cook time: %s</li>\n", utils.FormatTime(recipe.CookTime)))
	b.WriteString(fmt.Sprintf("<li>Servings: %d</li>\n", recipe.Servings))
	b.WriteString(fmt.Sprintf("<li>Difficulty: %s</li>\n", html.EscapeString(recipe.Difficulty)))
	b.WriteString(fmt.Sprintf("<li>Cuisine: %s</li>\n", html.EscapeString(recipe.Cuisine)))
	b.WriteString(fmt.Sprintf("<li>Diet: %s</li>\n", html.EscapeString(recipe.Diet)))
	if recipe.Calories > 0 {
		b.WriteString(fmt.Sprintf("<li>Calories: %d per serving</li>\n", recipe.Calories))
	}
	b.WriteString("</ul>\n")

	_, err := e.AddSection(b.String(), "About", "", "")
	return err
}

func (p *EPubBuilder) addIngredientsSection(e *epub.Epub, ingredients []data.Ingredient) error {
	var b strings.Builder
	b.WriteString("<h1>Ingredients</h1>\n<ul>\n")
	for _, ing := range ingredients {
		b.WriteString(fmt.Sprintf(
			"<li>%s — %s</li>\n",
			html.EscapeString(ing.Name), html.EscapeString(ing.Amount),
		))
	}
	b.WriteString("</ul>\n")
	_, err := e.AddSection(b.String(), "Ingredients", "", "")
	return err
}

func (p *EPubBuilder) addInstructionsSection(e *epub.Epub, instructions []data.Instruction) error {
	var b strings.Builder
	b.WriteString("<h1>Instructions</h1>\n<ol>\n")
	for _, inst := range instructions {
		b.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(inst.Description)))
	}
	b.WriteString("</ol>\n")
	_, err := e.AddSection(b.String(), "Instructions", "", "")
	return err
}

// stageImage makes the recipe image addressable by go-epub: remote URLs
// pass through, data URIs are decoded to a temp file, anything else is
// skipped.
func (p *EPubBuilder) stageImage(recipe *data.RecipeDetail) (string, error) {
	img := recipe.Image
	switch {
	case strings.HasPrefix(img, "http://"), strings.HasPrefix(img, "https://"):
		return img, nil
	case strings.HasPrefix(img, "data:"):
		idx := strings.Index(img, "base64,")
		if idx < 0 {
			return "", nil
		}
		raw, err := base64.StdEncoding.DecodeString(img[idx+len("base64,"):])
		if err != nil {
			return "", err
		}
		f, err := os.CreateTemp("", "tastebook-cover-*.jpg")
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := f.Write(raw); err != nil {
			return "", err
		}
		return f.Name(), nil
	default:
		return "", nil
	}
}

// sanitizeFilename removes characters that are invalid in filenames.
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	return strings.Trim(result, ".")
}
