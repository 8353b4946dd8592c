package transform

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// recipeFile is the YAML shape for user-defined pipelines:
//
//	recipes:
//	  strict-cleanup:
//	    - deduplicate
//	    - remove-empty
//	    - sort-by-dependencies
type recipeFile struct {
	Recipes map[string][]string `yaml:"recipes"`
}

// LoadRecipes reads named pipeline recipes from YAML. Each recipe entry
// must name a registered transform; an unknown name fails the whole load.
func LoadRecipes(r io.Reader) (map[string]*Pipeline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading recipes: %w", err)
	}

	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing recipes: %w", err)
	}

	pipelines := make(map[string]*Pipeline, len(file.Recipes))
	for name, steps := range file.Recipes {
		p := NewPipeline()
		for _, step := range steps {
			t, err := NewByName(step)
			if err != nil {
				return nil, fmt.Errorf("recipe %q: %w", name, err)
			}
			p.Add(t)
		}
		pipelines[name] = p
	}
	return pipelines, nil
}
