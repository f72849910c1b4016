// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events streams recorded votes to Kafka.

When KAFKA_BROKERS is set the server publishes a VoteEvent after every
successful cast:

	{"vote_id": "...", "candidate_id": "...", "status": "updated", "at": "..."}

Events carry no voter identity. KafkaPublisher writes asynchronously, so
a vote response never waits for broker acknowledgement; each delivery
result is reported to the callback given to NewKafkaPublisher. A failed
publish is logged and never fails the vote, which is already committed
by then. With no brokers the server uses NopPublisher.
*/
package events
