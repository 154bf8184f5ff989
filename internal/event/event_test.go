package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, PulseTriggered, PulseExpired)

	d.Dispatch(Event{Type: PulseTriggered})
	d.Dispatch(Event{Type: DangerZoneAdded})
	d.Dispatch(Event{Type: PulseExpired})

	if len(r.got) != 2 || r.got[0] != PulseTriggered || r.got[1] != PulseExpired {
		t.Errorf("Expected [PulseTriggered PulseExpired], got %v", r.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SessionReset, a)
	d.Subscribe(SessionReset, b)
	d.Unsubscribe(SessionReset, a)

	d.Dispatch(Event{Type: SessionReset})
	if len(a.got) != 0 {
		t.Errorf("Expected unsubscribed listener to see nothing, got %v", a.got)
	}
	if len(b.got) != 1 {
		t.Errorf("Expected remaining listener to see 1 event, got %d", len(b.got))
	}
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	var calls int
	d := NewDispatcher()
	d.Subscribe(PingIgnored, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: PingIgnored})
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}

	var none *Dispatcher
	none.Dispatch(Event{Type: PingIgnored}) // must not panic
}
