package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row scanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (models.User, bool, error) {
	return r.findOne(ctx, sq.Eq{"id": id.String()}, "*userRepository.FindByID", false)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return r.findOne(ctx, sq.Eq{"email": email}, "*userRepository.FindByEmail", false)
}

// LockByID reads the user and, on PostgreSQL, holds a row lock until the
// surrounding transaction ends. Writes that depend on counts of the user's
// rows serialize on it. SQLite allows one writer at a time, so a plain read
// suffices there.
func (r *userRepository) LockByID(ctx context.Context, id uuid.UUID) (models.User, bool, error) {
	return r.findOne(ctx, sq.Eq{"id": id.String()}, "*userRepository.LockByID", r.db.Driver() == config.DriverPostgres)
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq, funcName string, forUpdate bool) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	var user models.User
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return scanUser(row, &user)
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, false, err
	}

	return user, found, nil
}

// Save inserts a new user. A duplicate email yields [ErrAlreadyExists].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Password, user.Role, user.CreatedAt)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error saving user")
		return models.User{}, err
	}

	return user, nil
}

// Update writes the mutable fields of user. Only the password changes
// after sign-up.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(usersTable).
		Set("password", user.Password).
		Where(sq.Eq{"id": user.ID.String()})

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error updating user")
		return models.User{}, false, err
	}
	if affected == 0 {
		return models.User{}, false, nil
	}

	return r.FindByID(ctx, user.ID)
}
