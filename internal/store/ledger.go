package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/mathgarden/ent"
	"github.com/abhisek/mathgarden/ent/snapshot"
)

// ledgerKeep is how many historical ledger copies are retained on Save.
const ledgerKeep = 25

// ledgerRepo implements LedgerRepo on top of the Snapshot entity.
type ledgerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ledgerRepo) Save(ctx context.Context, data *LedgerData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	dataMap, err := ledgerDataToMap(data)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	return r.prune(ctx, ledgerKeep)
}

func (r *ledgerRepo) Latest(ctx context.Context) (*LedgerData, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest ledger: %w", err)
	}

	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data LedgerData
	if err := json.Unmarshal(b, &data); err != nil {
		// An undecodable snapshot is treated as absent so the caller
		// starts from defaults instead of failing to launch.
		return nil, nil
	}
	return &data, nil
}

// prune deletes all but the keep most recent ledger copies.
func (r *ledgerRepo) prune(ctx context.Context, keep int) error {
	old, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query ledgers for prune: %w", err)
	}
	if len(old) == 0 {
		return nil // fewer than keep copies exist
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(old[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune ledgers: %w", err)
	}
	return nil
}

// ledgerDataToMap converts LedgerData to map[string]any for ent JSON storage.
func ledgerDataToMap(data *LedgerData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
