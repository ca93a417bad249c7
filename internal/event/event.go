// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event: структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// funcListener позволяет подписать функцию. Указатель сравним, поэтому
// такого подписчика можно снять через Unsubscribe.
type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(event Event) { l.fn(event) }

// Dispatcher: синхронный диспетчер событий. Подписчики вызываются в
// порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на событие.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc подписывает функцию и возвращает Listener для отписки.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Listener {
	l := &funcListener{fn: fn}
	d.Subscribe(eventType, l)
	return l
}

// Unsubscribe снимает подписку.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch отправляет событие всем подписчикам. Подписки, сделанные во
// время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		snapshot := append([]Listener(nil), listeners...)
		for _, listener := range snapshot {
			listener.OnEvent(event)
		}
	}
}
