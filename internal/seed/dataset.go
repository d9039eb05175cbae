// Package seed loads the bundled places and phrase datasets into MongoDB.
package seed

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"travelassistant/internal/services/places"
	"travelassistant/internal/services/translation"
)

//go:embed data/*.yaml
var dataFS embed.FS

type placeDoc struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Rating      *float64 `yaml:"rating"`
	PhotoURL    *string  `yaml:"photo_url"`
	Tags        []string `yaml:"tags"`
}

type phraseDoc struct {
	Phrase       string `yaml:"phrase"`
	Category     string `yaml:"category"`
	Translations map[string]struct {
		TranslatedPhrase string  `yaml:"translatedPhrase"`
		Pronunciation    *string `yaml:"pronunciation"`
		TTSURL           string  `yaml:"ttsUrl"`
	} `yaml:"translations"`
}

// Dataset is the content written by Run.
type Dataset struct {
	Places  []places.Place
	Phrases []translation.Phrase
}

// Load parses the embedded datasets. Places are ordered by location key,
// keeping file order within a location.
func Load() (Dataset, error) {
	var ds Dataset

	var byLocation map[string][]placeDoc
	if err := readYAML("data/places.yaml", &byLocation); err != nil {
		return Dataset{}, err
	}
	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	slices.Sort(locations)
	for _, loc := range locations {
		for _, d := range byLocation[loc] {
			ds.Places = append(ds.Places, places.Place{
				Name:        d.Name,
				Description: d.Description,
				Latitude:    d.Latitude,
				Longitude:   d.Longitude,
				Rating:      d.Rating,
				PhotoURL:    d.PhotoURL,
				Tags:        d.Tags,
				Location:    strings.ToLower(loc),
			})
		}
	}

	var phrases []phraseDoc
	if err := readYAML("data/phrases.yaml", &phrases); err != nil {
		return Dataset{}, err
	}
	for _, d := range phrases {
		p := translation.Phrase{
			Phrase:       d.Phrase,
			Category:     d.Category,
			Translations: make(map[string]translation.PhraseTranslation, len(d.Translations)),
		}
		for lang, tr := range d.Translations {
			p.Translations[lang] = translation.PhraseTranslation{
				TranslatedPhrase: tr.TranslatedPhrase,
				Pronunciation:    tr.Pronunciation,
				TTSURL:           tr.TTSURL,
			}
		}
		ds.Phrases = append(ds.Phrases, p)
	}
	return ds, nil
}

func readYAML(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
