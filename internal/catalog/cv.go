package catalog

import "github.com/dev-760/portfolio-v2/internal/i18n"

// CV is the curriculum vitae shown on the CV and contact pages.
type CV struct {
	Email      string        `yaml:"email"`
	LinkedIn   string        `yaml:"linkedin"`
	Instagram  string        `yaml:"instagram"`
	Download   string        `yaml:"download"`
	Experience []Experience  `yaml:"experience"`
	Skills     []Text        `yaml:"skills"`
	Languages  []LanguageRow `yaml:"languages"`
	Education  []Education   `yaml:"education"`
}

// Experience is one professional entry.
type Experience struct {
	Title       Text                     `yaml:"title"`
	Period      Text                     `yaml:"period"`
	Description map[i18n.Locale][]string `yaml:"description"`
}

// Bullets returns the description lines for l.
func (e Experience) Bullets(l i18n.Locale) []string {
	return e.Description[l]
}

// LanguageRow is a spoken language and proficiency.
type LanguageRow struct {
	Name  Text `yaml:"name"`
	Level Text `yaml:"level"`
}

// Education is one schooling entry.
type Education struct {
	Title       Text   `yaml:"title"`
	Institution Text   `yaml:"institution"`
	Year        string `yaml:"year"`
	Status      Text   `yaml:"status"`
}
