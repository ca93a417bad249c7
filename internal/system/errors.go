// internal/system/errors.go
package system

import "errors"

var (
	// ErrInvalidTransition: переход между фазами не разрешен в текущей фазе.
	ErrInvalidTransition = errors.New("invalid phase transition")
	// ErrAlreadySpawning: волна уже создается.
	ErrAlreadySpawning = errors.New("wave is already spawning")
	// ErrQuizActive: действие заблокировано открытой викториной.
	ErrQuizActive = errors.New("quiz is active")
	// ErrUnknownArchetype: для ключа нет определения юнита.
	ErrUnknownArchetype = errors.New("unknown unit archetype")
)
