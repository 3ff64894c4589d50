package vocabulary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Words []catalogEntry `yaml:"words"`
}

type catalogEntry struct {
	Name         string   `yaml:"name"`
	PartOfSpeech string   `yaml:"part_of_speech"`
	Meaning      string   `yaml:"meaning"`
	Examples     []string `yaml:"examples"`
	Level        string   `yaml:"level"`
}

// LoadYAML reads catalog words from a YAML file of the form:
//
//	words:
//	  - name: abandon
//	    part_of_speech: verb
//	    meaning: to leave behind
//	    examples:
//	      - They had to ____ the car.
//	    level: B2
func LoadYAML(path string) ([]Word, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	words := make([]Word, 0, len(file.Words))
	for i, entry := range file.Words {
		level, err := ParseLevel(entry.Level)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d (%s) > %w", path, i, entry.Name, err)
		}
		words = append(words, Word{
			Name:         NormalizeName(entry.Name),
			PartOfSpeech: entry.PartOfSpeech,
			Meaning:      entry.Meaning,
			Examples:     Examples(entry.Examples),
			Level:        level,
			Source:       SourceOxford,
		})
	}
	return words, nil
}
