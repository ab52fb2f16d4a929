package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/repository"
	"marketdash/internal/errors"
	"marketdash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements repository.CredentialRepository on the client_states table.
type credentialRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB, logger *slog.Logger) repository.CredentialRepository {
	return &credentialRepository{db: db, logger: logger}
}

var credentialKeys = []string{repository.KeyAccessToken, repository.KeyRefreshToken, repository.KeyUser}

// Load returns the stored credentials; the result is Empty when nothing is stored.
func (repo *credentialRepository) Load(ctx context.Context) (*entity.Credentials, error) {
	var rows []model.ClientStateModel
	if err := repo.db.WithContext(ctx).Where(map[string]any{"key": credentialKeys}).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to load credentials")
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	creds := &entity.Credentials{
		AccessToken:  values[repository.KeyAccessToken],
		RefreshToken: values[repository.KeyRefreshToken],
	}
	if creds.Empty() {
		return creds, nil
	}

	if raw := values[repository.KeyUser]; raw != "" {
		var user entity.Session
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			// a corrupt profile is recoverable: /auth/me fetches it again
			repo.logger.WarnContext(ctx, "Discarded unreadable stored user",
				slog.Int("bytes", len(raw)), slog.Any("error", err))

			return creds, nil
		}
		creds.User = &user
	}

	return creds, nil
}

// Save replaces all stored credentials in one transaction.
func (repo *credentialRepository) Save(ctx context.Context, creds *entity.Credentials) error {
	if creds.Empty() {
		return errors.New("refusing to persist credentials without an access token")
	}

	rows := []model.ClientStateModel{
		{Key: repository.KeyAccessToken, Value: creds.AccessToken},
		{Key: repository.KeyRefreshToken, Value: creds.RefreshToken},
	}
	if creds.User != nil {
		user, err := json.Marshal(creds.User)
		if err != nil {
			return errors.Wrap(err, "failed to encode user")
		}
		rows = append(rows, model.ClientStateModel{Key: repository.KeyUser, Value: string(user)})
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(map[string]any{"key": credentialKeys}).Delete(&model.ClientStateModel{}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	})
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to save credentials")
	}

	return nil
}

// Clear removes every stored credential.
func (repo *credentialRepository) Clear(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where(map[string]any{"key": credentialKeys}).Delete(&model.ClientStateModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to clear credentials")
	}

	return nil
}
