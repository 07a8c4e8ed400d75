package integrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tastebook/tastebook/pkg/data"
)

func sampleRecipe() *data.RecipeDetail {
	return &data.RecipeDetail{
		RecipeSummary: data.RecipeSummary{
			ID:          "r1",
			Title:       "Pasta Carbonara",
			Description: "A classic Roman pasta",
			Cuisine:     "Italian",
			Diet:        "Regular",
			Difficulty:  "Medium",
			PrepTime:    10,
			CookTime:    20,
			Servings:    4,
		},
		Calories: 650,
		Author:   data.User{Username: "dana"},
		Ingredients: []data.Ingredient{
			{Name: "Spaghetti", Amount: "400g"},
			{Name: "Eggs", Amount: "4"},
		},
		Instructions: []data.Instruction{
			{Step: 1, Description: "Boil the pasta"},
			{Step: 2, Description: "Mix eggs and cheese"},
		},
	}
}

func TestExportWritesEPub(t *testing.T) {
	outDir := t.TempDir()
	builder := NewEPubBuilder(outDir)

	path, err := builder.Export(sampleRecipe())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if filepath.Dir(path) != outDir {
		t.Errorf("Expected output in %s, got %s", outDir, path)
	}
	if !strings.HasSuffix(path, "Pasta Carbonara.epub") {
		t.Errorf("Unexpected filename %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty EPUB")
	}
}

func TestExportCreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "exports")
	builder := NewEPubBuilder(outDir)

	if _, err := builder.Export(sampleRecipe()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("Expected output directory to be created: %v", err)
	}
}

func TestExportSanitizesTitle(t *testing.T) {
	recipe := sampleRecipe()
	recipe.Title = "Mac & Cheese: The/Best?"
	builder := NewEPubBuilder(t.TempDir())

	path, err := builder.Export(recipe)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	name := filepath.Base(path)
	for _, char := range []string{"/", ":", "?"} {
		if strings.Contains(name, char) {
			t.Errorf("Expected %q stripped from filename %q", char, name)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain Title", "Plain Title"},
		{"a/b\\c:d", "a_b_c_d"},
		{"  spaced  ", "spaced"},
		{"dotted...", "dotted"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
