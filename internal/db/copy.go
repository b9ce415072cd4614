package db

import (
	"github.com/gyeh/datesift/internal/model"
	"github.com/jackc/pgx/v5"
)

// ChannelSource implements pgx.CopyFromSource by reading ParsedRows from a channel.
// The producer resolving candidate strings blocks when COPY falls behind.
type ChannelSource struct {
	ch      <-chan *model.ParsedRow
	current *model.ParsedRow
	rows    int64
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.ParsedRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.rows++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *ChannelSource) Err() error {
	return s.err
}

// Rows returns how many rows have been handed to COPY so far.
func (s *ChannelSource) Rows() int64 {
	return s.rows
}

// Compile-time check that ChannelSource satisfies the interface.
var _ pgx.CopyFromSource = (*ChannelSource)(nil)
