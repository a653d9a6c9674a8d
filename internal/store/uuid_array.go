package store

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// uuidArray adapts a []uuid.UUID to a PostgreSQL uuid[] column through
// database/sql. Values are exchanged in the text array format ("{a,b}").
type uuidArray []uuid.UUID

// Value implements driver.Valuer.
func (a uuidArray) Value() (driver.Value, error) {
	elems := make([]pgtype.UUID, len(a))
	for i, id := range a {
		elems[i] = pgtype.UUID{Bytes: id, Valid: true}
	}

	buf, err := pgtype.NewMap().Encode(pgtype.UUIDArrayOID, pgtype.TextFormatCode, elems, nil)
	if err != nil {
		return nil, fmt.Errorf("encoding uuid array: %w", err)
	}

	return string(buf), nil
}

// Scan implements sql.Scanner. NULL is scanned as an empty array.
func (a *uuidArray) Scan(src any) error {
	var text []byte
	switch v := src.(type) {
	case nil:
		*a = uuidArray{}
		return nil
	case string:
		text = []byte(v)
	case []byte:
		text = v
	default:
		return fmt.Errorf("cannot scan %T into uuid array", src)
	}

	var elems []pgtype.UUID
	if err := pgtype.NewMap().Scan(pgtype.UUIDArrayOID, pgtype.TextFormatCode, text, &elems); err != nil {
		return fmt.Errorf("decoding uuid array: %w", err)
	}

	ids := make(uuidArray, 0, len(elems))
	for _, e := range elems {
		if e.Valid {
			ids = append(ids, uuid.UUID(e.Bytes))
		}
	}
	*a = ids

	return nil
}
