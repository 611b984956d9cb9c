package main

import (
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// MessageKind distinguishes the two broadcast rounds of a signing session.
type MessageKind int

const (
	KindCommitment MessageKind = iota
	KindPartial
)

// Message is a broadcast protocol message carrying a marshalled payload.
type Message struct {
	From party.ID
	Kind MessageKind
	Data []byte
}

// Network fans broadcast messages out to every registered participant,
// the sender included.
type Network interface {
	Send(msg *Message)
	Next(id party.ID) <-chan *Message
}

type chanNetwork struct {
	parties        party.IDSlice
	listenChannels map[party.ID]chan *Message
}

// NewNetwork builds an in-process broadcast network for the given parties.
// The channels are buffered for the two rounds of a signing session, Send
// never blocks.
func NewNetwork(parties party.IDSlice) Network {
	n := len(parties)
	lc := make(map[party.ID]chan *Message, n)
	for _, id := range parties {
		lc[id] = make(chan *Message, 2*n)
	}
	return &chanNetwork{
		parties:        parties,
		listenChannels: lc,
	}
}

func (c *chanNetwork) Next(id party.ID) <-chan *Message {
	return c.listenChannels[id]
}

func (c *chanNetwork) Send(msg *Message) {
	for _, id := range c.parties {
		c.listenChannels[id] <- msg
	}
}
