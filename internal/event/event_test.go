package event

import "testing"

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, e.Type) }))
	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: WaveCleared})
	if len(got) != 1 || got[0] != WaveStarted {
		t.Fatalf("got %v", got)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	n := 0
	d.SubscribeAll(ListenerFunc(func(Event) { n++ }))
	for _, et := range AllTypes {
		d.Dispatch(Event{Type: et})
	}
	if n != len(AllTypes) {
		t.Fatalf("received %d events, want %d", n, len(AllTypes))
	}
}
