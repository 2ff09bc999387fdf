package engine

import (
	"testing"

	"github.com/soocke/match-overlay-go/domain/detect"
)

func TestBatchFeed_PublishAndDrain(t *testing.T) {
	feed := NewBatchFeed(2)
	space := detect.CaptureSpace{Width: 100, Height: 50}
	feed.Publish([]byte("a"), space)
	feed.Publish([]byte("b"), space)

	got := <-feed.Batches()
	if string(got.Payload) != "a" || got.Space != space {
		t.Fatalf("first batch = %q %v", got.Payload, got.Space)
	}
	got = <-feed.Batches()
	if string(got.Payload) != "b" {
		t.Fatalf("second batch = %q", got.Payload)
	}
}

func TestBatchFeed_FullBufferDropsOldest(t *testing.T) {
	feed := NewBatchFeed(1)
	space := detect.CaptureSpace{Width: 1, Height: 1}
	feed.Publish([]byte("old"), space)
	feed.Publish([]byte("new"), space)

	got := <-feed.Batches()
	if string(got.Payload) != "new" {
		t.Fatalf("expected newest batch to survive, got %q", got.Payload)
	}
	select {
	case extra := <-feed.Batches():
		t.Fatalf("buffer should be empty, got %q", extra.Payload)
	default:
	}
}
