// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type  EventType      `json:"type"`
	Frame int64          `json:"frame"`
	Data  map[string]any `json:"data,omitempty"` // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий. Не потокобезопасен: вызывается только из
// горутины симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все типы событий
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes {
		d.Subscribe(t, listener)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
