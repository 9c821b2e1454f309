// Package embedded ships the starter topic list in the studytrack binary so
// a fresh install can be seeded without any external files.
package embedded

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var topicsYAML []byte

// StarterTopic is one entry of the built-in seed list.
type StarterTopic struct {
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
}

// StarterTopics returns the built-in topic seed list.
func StarterTopics() ([]StarterTopic, error) {
	var doc struct {
		Topics []StarterTopic `yaml:"topics"`
	}
	if err := yaml.Unmarshal(topicsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded topics: %w", err)
	}
	return doc.Topics, nil
}
