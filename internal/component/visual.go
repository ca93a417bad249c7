// internal/component/visual.go
package component

// DamageFlash: короткая подсветка юнита после полученного урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Intensity возвращает яркость вспышки от 1 до 0.
func (f *DamageFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Timer >= f.Duration {
		return 0
	}
	return 1 - f.Timer/f.Duration
}
