// internal/app/options.go
package app

import (
	"fmt"
	"log"

	"go-wild-friends/internal/config"
	"go-wild-friends/internal/defs"
)

// DataPaths: необязательные файлы данных. Пустой путь означает
// встроенные значения.
type DataPaths struct {
	Balance   string // YAML
	Units     string // JSON
	Waves     string // JSON
	Questions string // каталог с <archetype>.json
}

// LoadOptions собирает Options из файлов, подставляя встроенные данные
// вместо незаданных путей.
func LoadOptions(paths DataPaths, seed int64) (Options, error) {
	opts := DefaultOptions()
	opts.Seed = seed

	if paths.Balance != "" {
		b, err := config.LoadBalance(paths.Balance)
		if err != nil {
			return opts, err
		}
		opts.Balance = b
	}
	if paths.Units != "" {
		units, err := defs.LoadUnitDefinitions(paths.Units)
		if err != nil {
			return opts, err
		}
		opts.Units = units
	}
	if paths.Waves != "" {
		waves, err := defs.LoadWaveDefinitions(paths.Waves, opts.Units)
		if err != nil {
			return opts, err
		}
		opts.Waves = waves
	} else if err := defs.ValidateWaves(opts.Waves, opts.Units); err != nil {
		return opts, fmt.Errorf("built-in waves do not match units: %w", err)
	}
	if paths.Questions != "" {
		bank, err := defs.LoadQuestionBank(paths.Questions, opts.Units.PlayableKeys())
		if err != nil {
			// Битые файлы пропускаются, викторина работает с тем, что загрузилось
			log.Printf("Warning: question bank loaded with errors: %v", err)
		}
		opts.Questions = bank
	}
	return opts, nil
}
