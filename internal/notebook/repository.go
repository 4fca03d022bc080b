package notebook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// ItemRecord is the database row shape of a saved entry. Examples are stored
// as a JSON column.
type ItemRecord struct {
	ID         string          `db:"id"`
	Word       string          `db:"word"`
	Phonetic   string          `db:"phonetic"`
	Definition string          `db:"definition"`
	Examples   json.RawMessage `db:"examples"`
	ChitChat   string          `db:"chit_chat"`
	ImageURL   string          `db:"image_url"`
	TargetLang string          `db:"target_lang"`
	NativeLang string          `db:"native_lang"`
	Date       int64           `db:"date"`
}

// ItemRepository defines operations for mirroring notebook items into a database.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]ItemRecord, error)
	Upsert(ctx context.Context, record *ItemRecord) error
	DeleteByID(ctx context.Context, id string) error
}

// DBItemRepository implements ItemRepository using MySQL.
type DBItemRepository struct {
	db *sqlx.DB
}

// NewDBItemRepository creates a new DBItemRepository.
func NewDBItemRepository(db *sqlx.DB) *DBItemRepository {
	return &DBItemRepository{db: db}
}

// FindAll returns all mirrored items, newest first.
func (r *DBItemRepository) FindAll(ctx context.Context) ([]ItemRecord, error) {
	var records []ItemRecord
	if err := r.db.SelectContext(ctx, &records, "SELECT * FROM notebook_items ORDER BY date DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(notebook_items) > %w", err)
	}
	return records, nil
}

// Upsert inserts or updates a mirrored item.
func (r *DBItemRepository) Upsert(ctx context.Context, record *ItemRecord) error {
	query := `INSERT INTO notebook_items
		(id, word, phonetic, definition, examples, chit_chat, image_url, target_lang, native_lang, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		word = VALUES(word), phonetic = VALUES(phonetic), definition = VALUES(definition),
		examples = VALUES(examples), chit_chat = VALUES(chit_chat), image_url = VALUES(image_url),
		target_lang = VALUES(target_lang), native_lang = VALUES(native_lang), date = VALUES(date)`
	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.Word, record.Phonetic, record.Definition, record.Examples,
		record.ChitChat, record.ImageURL, record.TargetLang, record.NativeLang, record.Date,
	); err != nil {
		return fmt.Errorf("db.ExecContext(upsert notebook_item) > %w", err)
	}
	return nil
}

// DeleteByID removes a mirrored item.
func (r *DBItemRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notebook_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete notebook_item) > %w", err)
	}
	return nil
}

// ToRecord converts a notebook item into its database row shape.
func ToRecord(item Item) (*ItemRecord, error) {
	examples, err := json.Marshal(item.Examples)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(examples) > %w", err)
	}
	return &ItemRecord{
		ID:         item.ID,
		Word:       item.Word,
		Phonetic:   item.Phonetic,
		Definition: item.Definition,
		Examples:   examples,
		ChitChat:   item.ChitChat,
		ImageURL:   item.ImageURL,
		TargetLang: string(item.TargetLang),
		NativeLang: string(item.NativeLang),
		Date:       item.Date,
	}, nil
}

// FromRecord converts a database row back into a notebook item.
func FromRecord(record ItemRecord) (Item, error) {
	var examples []dictionary.Example
	if len(record.Examples) > 0 {
		if err := json.Unmarshal(record.Examples, &examples); err != nil {
			return Item{}, fmt.Errorf("json.Unmarshal(examples) > %w", err)
		}
	}
	return Item{
		Entry: dictionary.Entry{
			Word:       record.Word,
			Phonetic:   record.Phonetic,
			Definition: record.Definition,
			Examples:   examples,
			ChitChat:   record.ChitChat,
			ImageURL:   record.ImageURL,
			TargetLang: dictionary.Language(record.TargetLang),
			NativeLang: dictionary.Language(record.NativeLang),
		},
		ID:   record.ID,
		Date: record.Date,
	}, nil
}

// Sync mirrors the notebook into the repository: every item is upserted, and
// rows whose ids no longer appear in the notebook are deleted.
func Sync(ctx context.Context, repository ItemRepository, items []Item) error {
	knownIDs := make(map[string]struct{}, len(items))
	for _, item := range items {
		knownIDs[item.ID] = struct{}{}
		record, err := ToRecord(item)
		if err != nil {
			return fmt.Errorf("ToRecord(%s) > %w", item.ID, err)
		}
		if err := repository.Upsert(ctx, record); err != nil {
			return fmt.Errorf("repository.Upsert(%s) > %w", item.ID, err)
		}
	}

	records, err := repository.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("repository.FindAll > %w", err)
	}
	for _, record := range records {
		if _, ok := knownIDs[record.ID]; ok {
			continue
		}
		if err := repository.DeleteByID(ctx, record.ID); err != nil {
			return fmt.Errorf("repository.DeleteByID(%s) > %w", record.ID, err)
		}
	}
	return nil
}
