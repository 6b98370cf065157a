package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 50

// Cursor is the position of the last transaction of a page.
type Cursor struct {
	Date      domain.Date
	CreatedAt time.Time
	ID        string
}

// EncodeToken creates a base64 encoded token from a transaction's sort key.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.Date.String(), c.CreatedAt.Format(timeFormat), c.ID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := domain.ParseDate(parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}

// CursorOf returns the cursor positioned at txn.
func CursorOf(txn domain.Transaction) Cursor {
	return Cursor{Date: txn.Date, CreatedAt: txn.CreatedAt, ID: txn.ID}
}

// Page slices txns, which must be ordered newest first, to the page after token.
// It returns the page and the token of the following page, or nil on the last page.
func Page(txns []domain.Transaction, token string, limit int) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := 0
	if token != "" {
		cursor, err := DecodeToken(token)
		if err != nil {
			return nil, nil, err
		}
		start = len(txns)
		for i, txn := range txns {
			if txn.ID == cursor.ID {
				start = i + 1
				break
			}
			if isAfter(txn, cursor) {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(txns))
	page := txns[start:end]
	if end >= len(txns) || len(page) == 0 {
		return page, nil, nil
	}
	next := EncodeToken(CursorOf(page[len(page)-1]))
	return page, &next, nil
}

// isAfter reports whether txn sorts strictly after the cursor in newest-first order.
// It lets a page resume even when the cursor's transaction has since been deleted.
func isAfter(txn domain.Transaction, c Cursor) bool {
	if cmp := txn.Date.Compare(c.Date); cmp != 0 {
		return cmp < 0
	}
	return txn.CreatedAt.Before(c.CreatedAt)
}
