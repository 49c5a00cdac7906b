package mqtt

import "fmt"

// Subscribe routes messages matching topic to handler. The gateway uses it
// once, for the set/+ tree:
//
//	client.Subscribe(client.Topics().AllSets(), client.QoS(), gw.SetHandler(client.Topics()))
//
// The subscription is remembered and replayed after every reconnect. A
// handler error is logged; a handler panic is recovered and logged.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if err := checkTopic(topic, qos); err != nil {
		return err
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	c.track(subscription{topic: topic, qos: qos, handler: handler})
	if err := await(c.client.Subscribe(topic, qos, c.wrapHandler(handler)), ErrSubscribeFailed); err != nil {
		c.untrack(topic)
		return err
	}
	return nil
}

// Unsubscribe stops delivery for topic and forgets it, so it is not
// replayed on reconnect. Messages already in flight may still arrive.
func (c *Client) Unsubscribe(topic string) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	c.untrack(topic)
	return await(c.client.Unsubscribe(topic), ErrUnsubscribeFailed)
}

// SubscriptionCount returns how many topic filters are replayed on reconnect.
func (c *Client) SubscriptionCount() int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subscriptions)
}

func (c *Client) track(s subscription) {
	c.subMu.Lock()
	c.subscriptions[s.topic] = s
	c.subMu.Unlock()
}

func (c *Client) untrack(topic string) {
	c.subMu.Lock()
	delete(c.subscriptions, topic)
	c.subMu.Unlock()
}
