package types

import "testing"

func TestParseTopic(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in string
		ok bool
	}{
		{"order:created", true}, {" order:sent-to-production ", true}, {"order:shipment:created", true},
		{"order:shipment:delivered", true}, {"", false}, {"orders/paid", false}, {"ORDER:CREATED", false},
	}
	for _, c := range cases {
		_, err := ParseTopic(c.in)
		if c.ok && err != nil {
			t.Fatalf("expected ok for %q, got %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected error for %q", c.in)
		}
	}
}

func TestParseTopics(t *testing.T) {
	t.Parallel()
	got, err := ParseTopics("order:created, order:shipment:delivered,")
	if err != nil {
		t.Fatalf("ParseTopics: %v", err)
	}
	if len(got) != 2 || got[0] != TopicOrderCreated || got[1] != TopicOrderShipmentDelivered {
		t.Fatalf("unexpected topics: %v", got)
	}
	if _, err := ParseTopics(" , "); err == nil {
		t.Fatal("expected error for empty list")
	}
	if _, err := ParseTopics("order:created,bogus"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}
