package events

import "testing"

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(7)
	defer cancel()

	bus.Publish(Event{Topic: TopicCartUpdated, UserID: 7, Payload: "payload"})

	select {
	case ev := <-ch:
		if ev.Topic != TopicCartUpdated {
			t.Errorf("Topic = %q; want %q", ev.Topic, TopicCartUpdated)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestBusIsolatesUsers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(Event{Topic: TopicCartUpdated, UserID: 2})

	select {
	case ev := <-ch:
		t.Fatalf("received another user's event: %+v", ev)
	default:
	}
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(1)
	defer cancel()

	// Nobody drains the channel; publishing past the buffer must not hang.
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(Event{Topic: TopicUserUpdated, UserID: 1})
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(3)
	cancel()

	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic on a closed channel.
	bus.Publish(Event{Topic: TopicUserUpdated, UserID: 3})

	// A second cancel is a no-op.
	cancel()
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus()
	ch1, cancel1 := bus.Subscribe(5)
	defer cancel1()
	ch2, cancel2 := bus.Subscribe(5)
	defer cancel2()

	bus.Publish(Event{Topic: TopicFavoritesUpdated, UserID: 5})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d got no event", i+1)
		}
	}
}
