package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diary/models"
)

var (
	userColumns  = []string{"id", "username", "password"}
	entryColumns = []string{"id", "user_id", "title", "content", "timestamp"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, d Dialect, username, passwordHash string) (string, []any, error) {
	q := b.Insert(models.User{}.TableName()).
		Columns("username", "password").
		Values(username, passwordHash)
	if d.returning() {
		q = q.Suffix("RETURNING id")
	}
	return q.ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertEntryQuery(b sq.StatementBuilderType, d Dialect, entry models.Entry) (string, []any, error) {
	q := b.Insert(models.Entry{}.TableName()).
		Columns("user_id", "title", "content", "timestamp").
		Values(entry.UserID, entry.Title, entry.Content, entry.Timestamp)
	if d.returning() {
		q = q.Suffix("RETURNING id")
	}
	return q.ToSql()
}

// buildListEntriesQuery selects one user's entries, newest id first.
func buildListEntriesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()
}

// buildGetEntryQuery selects by id only; ownership is decided by the caller
// so a foreign entry is distinguishable from a missing one.
func buildGetEntryQuery(b sq.StatementBuilderType, entryID int64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func buildEntryOwnerQuery(b sq.StatementBuilderType, entryID int64) (string, []any, error) {
	return b.Select("user_id").
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func buildUpdateEntryQuery(b sq.StatementBuilderType, update models.EntryUpdate) (string, []any, error) {
	return b.Update(models.Entry{}.TableName()).
		Set("title", update.Title).
		Set("content", update.Content).
		Set("timestamp", update.Timestamp).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, userID, entryID int64) (string, []any, error) {
	return b.Delete(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
}
