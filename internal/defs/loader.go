// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LoadUnitDefinitions reads a JSON array of unit definitions.
func LoadUnitDefinitions(path string) (UnitLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	lib := make(UnitLibrary, len(unitDefs))
	var errs []error
	for _, def := range unitDefs {
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		lib[def.ID] = def
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid unit definitions in %s: %w", path, err)
	}

	log.Printf("Loaded %d unit definitions", len(lib))
	return lib, nil
}

// LoadWaveDefinitions reads a JSON array of wave definitions. Every enemy ID
// must exist in units.
func LoadWaveDefinitions(path string, units UnitLibrary) ([]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waves []WaveDefinition
	if err := json.Unmarshal(file, &waves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	if err := ValidateWaves(waves, units); err != nil {
		return nil, fmt.Errorf("invalid wave definitions in %s: %w", path, err)
	}

	log.Printf("Loaded %d wave definitions", len(waves))
	return waves, nil
}

// ValidateWaves checks that every group references a known archetype.
func ValidateWaves(waves []WaveDefinition, units UnitLibrary) error {
	var errs []error
	for i, w := range waves {
		if len(w.Groups) == 0 {
			errs = append(errs, fmt.Errorf("wave %d has no groups", i+1))
		}
		for _, g := range w.Groups {
			if _, ok := units[g.EnemyID]; !ok {
				errs = append(errs, fmt.Errorf("wave %d: unknown enemy %q", i+1, g.EnemyID))
			}
			if g.Count < 0 || g.SpawnDelay < 0 {
				errs = append(errs, fmt.Errorf("wave %d: negative count or delay for %q", i+1, g.EnemyID))
			}
		}
	}
	return errors.Join(errs...)
}

// ParseQuestions decodes a JSON array of questions.
func ParseQuestions(data []byte) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	return questions, nil
}

// LoadQuestionBank reads <dir>/<key>.json for every key. Missing files are
// logged and skipped; the quiz skips archetypes without questions.
func LoadQuestionBank(dir string, keys []string) (QuestionBank, error) {
	bank := make(QuestionBank, len(keys))
	var errs []error
	for _, key := range keys {
		path := filepath.Join(dir, key+".json")
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: no question file for %s: %s", key, path)
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read questions for %s: %w", key, err))
			continue
		}
		questions, err := ParseQuestions(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		bank[key] = questions
		log.Printf("Loaded %d questions for %s", len(questions), key)
	}
	return bank, errors.Join(errs...)
}
