// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// SenderInterface submits one message to the mail backend.
type SenderInterface interface {
	Send(msg Message) error
}

// DispatcherInterface accepts messages for background delivery.
type DispatcherInterface interface {
	Enqueue(msg Message) error
}
