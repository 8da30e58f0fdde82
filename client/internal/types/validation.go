package types

import (
	"fmt"
	"strings"
)

// Topic is a webhook lifecycle event name.
type Topic string

const (
	TopicOrderCreated           Topic = "order:created"
	TopicOrderSentToProduction  Topic = "order:sent-to-production"
	TopicOrderShipmentCreated   Topic = "order:shipment:created"
	TopicOrderShipmentDelivered Topic = "order:shipment:delivered"
)

// Topics returns every known topic in a stable order.
func Topics() []Topic {
	return []Topic{
		TopicOrderCreated,
		TopicOrderSentToProduction,
		TopicOrderShipmentCreated,
		TopicOrderShipmentDelivered,
	}
}

// Known reports whether t is one of the known topics.
func (t Topic) Known() bool {
	for _, k := range Topics() {
		if t == k {
			return true
		}
	}
	return false
}

// ParseTopic converts user input (e.g. a CLI flag) into a Topic.
// The SDK itself never validates topics; only front ends call this.
func ParseTopic(s string) (Topic, error) {
	t := Topic(strings.TrimSpace(s))
	if !t.Known() {
		return "", fmt.Errorf("unknown webhook topic %q", s)
	}
	return t, nil
}

// ParseTopics splits a comma separated list of topics.
func ParseTopics(csv string) ([]Topic, error) {
	var out []Topic
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTopic(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no webhook topics given")
	}
	return out, nil
}
