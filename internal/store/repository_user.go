package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Register inserts a new user and returns it with the store-assigned id.
//
// Error handling:
//   - unique violation on username → [ErrLoginAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *userRepository) Register(ctx context.Context, username, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), r.db.dialect, username, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Register").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	id, err := insertReturningID(ctx, r.db, query, args)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.Register").Str("username", username).Msg("username is already taken")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Register").Msg("error inserting user")
		return models.User{}, r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	return models.User{UserID: id, Username: username, PasswordHash: passwordHash}, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.builder(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error querying user")
		return models.User{}, r.db.wrapDriverError(ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// DeleteUser removes the user row; the entries go with it through
// ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("user deleted")
	return nil
}

// insertReturningID runs an INSERT and reports the new primary key, through
// RETURNING on PostgreSQL and LastInsertId elsewhere.
func insertReturningID(ctx context.Context, db *DB, query string, args []any) (int64, error) {
	var id int64
	if db.dialect.returning() {
		err := db.QueryRowContext(ctx, query, args...).Scan(&id)
		return id, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
