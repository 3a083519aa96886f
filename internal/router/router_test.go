package router_test

import (
	"testing"

	"github.com/sqrew/ss9k/internal/router"
)

func TestInOrderDelivery(t *testing.T) {
	t.Parallel()
	r := router.New(8)
	r.Send(router.Message{Kind: router.NeedsResampling, Samples: []float32{1}})
	r.Send(router.Message{Kind: router.AlreadyResampled, Samples: []float32{2}})
	r.Send(router.Message{Kind: router.NeedsResampling, Samples: []float32{3}})

	for _, want := range []float32{1, 2, 3} {
		msg, ok := r.Recv()
		if !ok {
			t.Fatal("expected message, channel closed early")
		}
		if msg.Samples[0] != want {
			t.Fatalf("expected %v, got %v", want, msg.Samples[0])
		}
	}
}

func TestWakeWordCheckCarriesResponseChannel(t *testing.T) {
	t.Parallel()
	r := router.New(1)
	resp := make(chan bool, 1)
	r.Send(router.Message{Kind: router.WakeWordCheck, Samples: []float32{0.1}, Response: resp})

	msg, ok := r.Recv()
	if !ok || msg.Kind != router.WakeWordCheck {
		t.Fatal("expected WakeWordCheck message")
	}
	msg.Response <- true
	select {
	case v := <-resp:
		if !v {
			t.Fatal("expected true verdict")
		}
	default:
		t.Fatal("expected response to be immediately available")
	}
}

func TestRecvDrainsThenClosedAfterClose(t *testing.T) {
	t.Parallel()
	r := router.New(2)
	r.Send(router.Message{Kind: router.NeedsResampling})
	r.Close()

	if _, ok := r.Recv(); !ok {
		t.Fatal("expected to drain the already-buffered message after close")
	}
}
