package mqtt

import "errors"

// Errors returned by Client. Broker-side failures wrap the paho error.
var (
	// ErrNotConnected means the broker link is down; publishes and
	// subscription changes are refused rather than queued.
	ErrNotConnected = errors.New("mqtt: client not connected")

	ErrConnectionFailed  = errors.New("mqtt: connection failed")
	ErrPublishFailed     = errors.New("mqtt: publish failed")
	ErrSubscribeFailed   = errors.New("mqtt: subscribe failed")
	ErrUnsubscribeFailed = errors.New("mqtt: unsubscribe failed")

	// ErrInvalidQoS rejects QoS levels above 2.
	ErrInvalidQoS = errors.New("mqtt: invalid QoS level (must be 0, 1, or 2)")

	// ErrInvalidTopic rejects empty topics.
	ErrInvalidTopic = errors.New("mqtt: topic cannot be empty")
)
