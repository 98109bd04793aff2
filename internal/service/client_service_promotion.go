package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/models"
)

type promotionService struct {
	writer    RecordWriter
	encryptor Encryptor
}

// NewPromotionService returns a PromotionService writing through writer and
// re-encrypting values with encryptor.
func NewPromotionService(writer RecordWriter, encryptor Encryptor) PromotionService {
	return &promotionService{writer: writer, encryptor: encryptor}
}

// Promote implements [PromotionService].
//
//	kind       left-to-right                   right-to-left
//	Added      create on left (right value)    no-op
//	Removed    no-op                           create on right (left value)
//	Modified   update right with left value    update left with right value
//	Unchanged  ErrPromotionNotAllowed          ErrPromotionNotAllowed
//
// Parameters:
//   - ctx: carries the request logger and cancellation for the record writes.
//   - entry: one entry of a fresh comparison; its records supply the value
//     and the destination record to update.
//   - direction: which environment receives the value.
//   - leftEnvironmentID, rightEnvironmentID: the compared environments, in
//     the order they were passed to Compute.
//
// Returns nil for a no-op, ErrPromotionNotAllowed for Unchanged entries and
// a *PromotionError carrying the key, kind and direction for write failures.
func (p *promotionService) Promote(ctx context.Context, entry models.DiffEntry, direction models.Direction, leftEnvironmentID, rightEnvironmentID string) error {
	switch entry.Kind {
	case models.DiffUnchanged:
		return ErrPromotionNotAllowed

	case models.DiffAdded:
		if direction != models.LeftToRight {
			return nil
		}
		if entry.RightRecord == nil {
			return p.fail(entry, direction, ErrInvalidDataProvided)
		}
		return p.create(ctx, entry, direction, leftEnvironmentID, *entry.RightRecord)

	case models.DiffRemoved:
		if direction != models.RightToLeft {
			return nil
		}
		if entry.LeftRecord == nil {
			return p.fail(entry, direction, ErrInvalidDataProvided)
		}
		return p.create(ctx, entry, direction, rightEnvironmentID, *entry.LeftRecord)

	case models.DiffModified:
		if entry.LeftRecord == nil || entry.RightRecord == nil {
			return p.fail(entry, direction, ErrInvalidDataProvided)
		}
		if direction == models.LeftToRight {
			return p.update(ctx, entry, direction, rightEnvironmentID, *entry.RightRecord, entry.LeftRecord.Value)
		}
		return p.update(ctx, entry, direction, leftEnvironmentID, *entry.LeftRecord, entry.RightRecord.Value)

	default:
		return p.fail(entry, direction, fmt.Errorf("%w: unknown diff kind %d", ErrInvalidDataProvided, entry.Kind))
	}
}

// create writes source into the destination environment. The new record
// inherits the secret flag of its source.
func (p *promotionService) create(ctx context.Context, entry models.DiffEntry, direction models.Direction, destinationID string, source models.Record) error {
	value, err := p.encryptor.Encrypt(destinationID, source.Value)
	if err != nil {
		return p.fail(entry, direction, err)
	}

	if _, err = p.writer.CreateRecord(ctx, destinationID, source.Key, value, source.Secret); err != nil {
		return p.fail(entry, direction, err)
	}
	return nil
}

// update overwrites the value of target and keeps its secret flag.
func (p *promotionService) update(ctx context.Context, entry models.DiffEntry, direction models.Direction, destinationID string, target models.Record, plaintext string) error {
	value, err := p.encryptor.Encrypt(destinationID, plaintext)
	if err != nil {
		return p.fail(entry, direction, err)
	}

	if _, err = p.writer.UpdateRecord(ctx, destinationID, target.ID, target.Key, value, target.Secret); err != nil {
		return p.fail(entry, direction, err)
	}
	return nil
}

func (p *promotionService) fail(entry models.DiffEntry, direction models.Direction, err error) error {
	return &PromotionError{Key: entry.Key, Kind: entry.Kind, Direction: direction, Err: err}
}
