//go:generate go run go.uber.org/mock/mockgen -source=instrument.go -destination=../mocks/mock_instrument_repository.go -package=mocks
package repositories

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"note-relay/domain"
	"note-relay/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const instrumentPrefix = "instrument:"

type IInstrumentRepository interface {
	Save(instrument domain.Instrument) error
	Get(id domain.InstrumentID) (domain.Instrument, error)
	List() ([]domain.Instrument, error)
	Delete(id domain.InstrumentID) error
}

// InstrumentRepository is the roster of instruments attached on this node.
// It keeps bindings only, never the notes played on them.
type InstrumentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewInstrumentRepository(db *badger.DB, log *slog.Logger) InstrumentRepository {
	return InstrumentRepository{db: db, log: log}
}

// Save persists the binding under "instrument:{id}", replacing any previous one.
func (r InstrumentRepository) Save(instrument domain.Instrument) error {
	value, err := toDiskInstrument(instrument)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(instrumentKey(instrument.ID), bytes)
	})
}

func (r InstrumentRepository) Get(id domain.InstrumentID) (domain.Instrument, error) {
	var instrument domain.Instrument
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(instrumentKey(id))
		if goerrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrInstrumentNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			instrument, err = fromBytes(value)
			return err
		})
	})
	return instrument, err
}

// List returns every binding, ordered by id. A binding that cannot be read
// back is logged and skipped.
func (r InstrumentRepository) List() ([]domain.Instrument, error) {
	instruments := make([]domain.Instrument, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(instrumentPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			instrument, err := fromBytes(value)
			if err != nil {
				r.log.Warn("Skipping unreadable instrument", "key", string(item.Key()), "error", err)
				continue
			}
			instruments = append(instruments, instrument)
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to list instruments", "error", err)
		return nil, err
	}
	return instruments, nil
}

func (r InstrumentRepository) Delete(id domain.InstrumentID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(instrumentKey(id))
	})
	if err != nil {
		return err
	}
	r.log.Debug("Instrument forgotten", "instrument", id)
	return nil
}

func instrumentKey(id domain.InstrumentID) []byte {
	return []byte(instrumentPrefix + string(id))
}

func toDiskInstrument(instrument domain.Instrument) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":         string(instrument.ID),
		"name":       instrument.Name,
		"owner":      string(instrument.Owner),
		"local":      instrument.Local,
		"created_at": instrument.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func fromBytes(value []byte) (domain.Instrument, error) {
	var disk structpb.Struct
	if err := proto.Unmarshal(value, &disk); err != nil {
		return domain.Instrument{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	fields := disk.GetFields()
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return domain.Instrument{}, fmt.Errorf("invalid created_at: %w", err)
	}
	return domain.Instrument{
		ID:        domain.InstrumentID(fields["id"].GetStringValue()),
		Name:      fields["name"].GetStringValue(),
		Owner:     domain.ParticipantID(fields["owner"].GetStringValue()),
		Local:     fields["local"].GetBoolValue(),
		CreatedAt: createdAt,
	}, nil
}

// Owners returns the distinct owners of the given instruments.
func Owners(instruments []domain.Instrument) []domain.ParticipantID {
	return lo.Uniq(lo.Map(instruments, func(i domain.Instrument, _ int) domain.ParticipantID {
		return i.Owner
	}))
}
