// Package broadcast provides a small in-memory event bus with explicit
// subscription handles.
//
// It backs the session-changed and inbound-URL event streams: producers call
// Publish, consumers hold a Subscription and release it deterministically on
// teardown via Unsubscribe. Sends are non-blocking; a slow consumer has
// events dropped rather than stalling the producer.
//
//	bus := broadcast.NewBus[session.Change](16)
//	sub := bus.Subscribe()
//	defer sub.Unsubscribe()
//	for change := range sub.C() {
//		// react to change
//	}
package broadcast
