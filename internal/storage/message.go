package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

type Message struct {
	ID        string
	PeerID    int64
	PeerName  string
	Direction string
	Raw       string // what the user typed, or the incoming text
	Sent      string // what went over the wire, after decoration
	CreatedAt time.Time
}

func (s *Storage) SaveOutgoing(peerID int64, peerName, raw, sent string) error {
	return s.save(&Message{
		PeerID:    peerID,
		PeerName:  peerName,
		Direction: DirectionOut,
		Raw:       raw,
		Sent:      sent,
	})
}

func (s *Storage) SaveIncoming(peerID int64, peerName, text string) error {
	return s.save(&Message{
		PeerID:    peerID,
		PeerName:  peerName,
		Direction: DirectionIn,
		Raw:       text,
		Sent:      text,
	})
}

func (s *Storage) save(msg *Message) error {
	_, err := s.db.Exec(`
		INSERT INTO messages (id, peer_id, peer_name, direction, raw_text, sent_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), msg.PeerID, msg.PeerName, msg.Direction, msg.Raw, msg.Sent, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// RecentByPeer returns up to limit messages for a peer, oldest first.
func (s *Storage) RecentByPeer(peerID int64, limit int) ([]*Message, error) {
	rows, err := s.db.Query(`
		SELECT id, peer_id, peer_name, direction, raw_text, sent_text, created_at
		FROM (
			SELECT * FROM messages
			WHERE peer_id = ?
			ORDER BY created_at DESC, id
			LIMIT ?
		)
		ORDER BY created_at, id
	`, peerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.PeerID, &msg.PeerName, &msg.Direction,
			&msg.Raw, &msg.Sent, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

// MessageCountByPeer returns how many messages are stored for a peer.
func (s *Storage) MessageCountByPeer(peerID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE peer_id = ?`, peerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
