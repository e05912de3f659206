package broadcast

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/metrics"
	"gatepass/internal/model"
)

func gateEvent(id uint) Event {
	return NewGateEvent(&model.GateLog{ID: id, PlateNumber: "MP09AB1234", Type: model.GateLogEntry, Status: model.GateStatusApprovedVehicle})
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub(nil)
	a := hub.Subscribe(4)
	b := hub.Subscribe(4)

	hub.Publish(gateEvent(1))

	for _, sub := range []*Subscription{a, b} {
		select {
		case evt := <-sub.C:
			assert.Equal(t, EventTypeGate, evt.Type)
			log, ok := evt.Payload.(*model.GateLog)
			require.True(t, ok)
			assert.Equal(t, uint(1), log.ID)
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHub_FullSubscriberDoesNotBlockOthers(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	hub := NewHub(m)
	slow := hub.Subscribe(1)
	fast := hub.Subscribe(8)

	hub.Publish(gateEvent(1))
	hub.Publish(gateEvent(2)) // slow is full here
	hub.Publish(gateEvent(3))

	assert.Len(t, slow.C, 1)
	assert.Equal(t, uint(1), (<-slow.C).Payload.(*model.GateLog).ID)

	require.Len(t, fast.C, 3)
	for want := uint(1); want <= 3; want++ {
		assert.Equal(t, want, (<-fast.C).Payload.(*model.GateLog).ID)
	}
}

func TestHub_LateSubscriberSeesNoPastEvents(t *testing.T) {
	hub := NewHub(nil)
	hub.Publish(gateEvent(1))

	late := hub.Subscribe(4)
	assert.Len(t, late.C, 0)

	hub.Publish(gateEvent(2))
	assert.Equal(t, uint(2), (<-late.C).Payload.(*model.GateLog).ID)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe(4)
	assert.Equal(t, 1, hub.Len())

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.Len())

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed")

	assert.NotPanics(t, func() { hub.Publish(gateEvent(1)) })
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe(4)
	hub.Close()

	_, ok := <-sub.C
	assert.False(t, ok)

	after := hub.Subscribe(4)
	_, ok = <-after.C
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Len())
}

func TestHub_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	hub := NewHub(nil)
	subs := make([]*Subscription, 16)
	for i := range subs {
		subs[i] = hub.Subscribe(2)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Publish(gateEvent(uint(i*100 + j)))
			}
		}(i)
	}
	for _, sub := range subs {
		wg.Add(1)
		go func(sub *Subscription) {
			defer wg.Done()
			hub.Unsubscribe(sub)
		}(sub)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Len())
}
