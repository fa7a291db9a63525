package domain

import "time"

// UnknownSender is used when a message has no sender handle.
const UnknownSender = "Unknown"

// StoreEpoch is the reference instant for message store timestamps.
var StoreEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// StoreTime converts a raw store timestamp (nanoseconds since StoreEpoch)
// to an absolute time.
func StoreTime(raw int64) time.Time {
	return StoreEpoch.Add(time.Duration(raw))
}

// CandidateMessage is decoded text read from one store row.
// It lives only for the duration of a single scan.
type CandidateMessage struct {
	// Text is the plain or decoded rich-body text. Never empty.
	Text string

	// Sender is the handle identifier, or UnknownSender.
	Sender string

	// Timestamp is when the store recorded the message.
	Timestamp time.Time
}

// OTPRecord is a one-time passcode detected in a message.
// Two records are duplicates when their codes are equal.
type OTPRecord struct {
	// ID is unique per scan; it is not stable across scans.
	ID string `json:"id"`

	// Code is the digit string.
	Code string `json:"code"`

	// Sender is the handle the message came from.
	Sender string `json:"sender"`

	// Timestamp is when the source message was recorded.
	Timestamp time.Time `json:"timestamp"`

	// FullMessage is the text the code was extracted from.
	FullMessage string `json:"full_message"`
}
