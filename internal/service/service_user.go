package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/adapter"
	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

const (
	signUpKeyLength         = 6
	generatedPasswordLength = 12
)

// userService is the concrete implementation of UserService.
type userService struct {
	tx            store.Transactor
	users         store.UserRepository
	profiles      store.ProfileRepository
	codes         store.VerificationCodeCache
	refreshTokens store.RefreshTokenRepository

	mail   adapter.MailSender
	tokens TokenProvider

	signUpKeyTTL         time.Duration
	refreshTokenDuration time.Duration
	bcryptCost           int
	passwordPolicy       validators.PasswordPolicy

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given storages.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(storages *store.Storages, mail adapter.MailSender, tokens TokenProvider, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		tx:                   storages.Transactor,
		users:                storages.UserRepository,
		profiles:             storages.ProfileRepository,
		codes:                storages.VerificationCodeCache,
		refreshTokens:        storages.RefreshTokenRepository,
		mail:                 mail,
		tokens:               tokens,
		signUpKeyTTL:         cfg.SignUpKeyTTL,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		bcryptCost:           cfg.BcryptCost,
		passwordPolicy:       passwordPolicy(cfg),
		logger:               logger,
	}
}

// passwordPolicy applies the configured length bounds to the default
// character class requirements. MaxLength never exceeds what bcrypt hashes.
func passwordPolicy(cfg config.App) validators.PasswordPolicy {
	policy := validators.DefaultPasswordPolicy
	if cfg.PasswordMinLength > 0 {
		policy.MinLength = cfg.PasswordMinLength
	}
	if cfg.PasswordMaxLength > 0 {
		policy.MaxLength = min(cfg.PasswordMaxLength, validators.MaxPasswordBytes)
	}
	return policy
}

func (s *userService) FindByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.findUser(ctx, userID)
		return err
	})
	return user, err
}

func (s *userService) IsDuplicatedByEmail(ctx context.Context, email string) (bool, error) {
	var found bool
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		_, found, err = s.users.FindByEmail(ctx, email)
		return err
	})
	return found, err
}

// SignUpVerifyMail stores a fresh numeric code for email and mails it.
// A code sent earlier for the same email is replaced.
func (s *userService) SignUpVerifyMail(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	duplicated, err := s.IsDuplicatedByEmail(ctx, email)
	if err != nil {
		return err
	}
	if duplicated {
		return ErrDuplicateEmail
	}

	code, err := utils.GenerateNumericCode(signUpKeyLength)
	if err != nil {
		log.Err(err).Str("func", "*userService.SignUpVerifyMail").Msg("error generating sign-up key")
		return fmt.Errorf("error generating sign-up key: %w", err)
	}

	stored, err := s.codes.SetDataExpire(ctx, email, code, s.signUpKeyTTL)
	if err != nil {
		log.Err(err).Str("func", "*userService.SignUpVerifyMail").Msg("error caching sign-up key")
		return fmt.Errorf("error caching sign-up key: %w", err)
	}

	if err = s.mail.SendMailWithSignUpKey(ctx, email, stored); err != nil {
		log.Err(err).Str("func", "*userService.SignUpVerifyMail").Msg("error sending sign-up key")
		return fmt.Errorf("error sending sign-up key: %w", err)
	}

	return nil
}

// SignUpVerifyAuth checks signUpKey against the cached code. A missing
// (expired) or different code is ErrNotAccessible.
func (s *userService) SignUpVerifyAuth(ctx context.Context, email, signUpKey string) error {
	stored, found, err := s.codes.GetData(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.SignUpVerifyAuth").Msg("error reading sign-up key")
		return fmt.Errorf("error reading sign-up key: %w", err)
	}
	if !found || subtle.ConstantTimeCompare([]byte(stored), []byte(signUpKey)) != 1 {
		return fmt.Errorf("%w: sign-up key is expired or does not match", ErrNotAccessible)
	}

	return nil
}

// SignUp creates a USER account. The password must satisfy the password
// format policy and is stored as a bcrypt hash.
func (s *userService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.PasswordFormat(req.Password, s.passwordPolicy).Validate(ctx); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.SignUp").Msg("error hashing password")
		return models.User{}, err
	}

	var saved models.User
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, found, err := s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if found {
			return ErrDuplicateEmail
		}

		saved, err = s.users.Save(ctx, models.User{
			ID:        utils.NewID(),
			Email:     req.Email,
			Password:  hash,
			Role:      models.RoleUser,
			CreatedAt: time.Now().UTC(),
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrDuplicateEmail
		}
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user_id", saved.ID.String()).Msg("user signed up")
	return saved, nil
}

// SignIn checks the credentials and issues an access token and a refresh
// token together with the active profiles of the user. No token is issued
// when the password does not match.
func (s *userService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	log := logger.FromContext(ctx)

	var (
		user     models.User
		profiles []models.Profile
	)
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var (
			found bool
			err   error
		)
		user, found, err = s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrInvalidSignIn, req.Email)
		}

		if err = validators.NewChain(validators.Password(req.Password, user.Password)).Validate(ctx); err != nil {
			return err
		}

		profiles, err = s.profiles.FindByUserID(ctx, user.ID)
		return err
	})
	if err != nil {
		return models.SignInResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.SignInResponse{}, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user signed in")
	return models.SignInResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Profiles:     profiles,
	}, nil
}

// RefreshAccessToken exchanges a stored refresh token for a new token
// pair. The presented refresh token is consumed; a token that was already
// consumed by a concurrent call is ErrNotAccessible.
func (s *userService) RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	userID, found, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if !found {
		return models.TokenResponse{}, fmt.Errorf("%w: unknown refresh token", ErrNotAccessible)
	}

	deleted, err := s.refreshTokens.Delete(ctx, refreshToken)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if !deleted {
		return models.TokenResponse{}, fmt.Errorf("%w: refresh token already used", ErrNotAccessible)
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return models.TokenResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *userService) issueTokens(ctx context.Context, user models.User) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	access, err := s.tokens.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		log.Err(err).Str("func", "*userService.issueTokens").Msg("error creating access token")
		return models.TokenResponse{}, err
	}

	refresh, err := s.tokens.CreateRefreshToken()
	if err != nil {
		log.Err(err).Str("func", "*userService.issueTokens").Msg("error creating refresh token")
		return models.TokenResponse{}, err
	}

	if err = s.refreshTokens.Save(ctx, refresh, user.ID, s.refreshTokenDuration); err != nil {
		log.Err(err).Str("func", "*userService.issueTokens").Msg("error storing refresh token")
		return models.TokenResponse{}, fmt.Errorf("error storing refresh token: %w", err)
	}

	return models.TokenResponse{AccessToken: access.String(), RefreshToken: refresh}, nil
}

// UpdatePassword replaces the password of userID after checking the
// current one and the format of the new one. On any failure the stored
// password is unchanged.
func (s *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) (models.User, error) {
	var updated models.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return err
		}

		err = validators.NewChain(validators.Password(req.SrcPassword, user.Password)).
			LinkWith(validators.PasswordFormat(req.DstPassword, s.passwordPolicy)).
			Validate(ctx)
		if err != nil {
			return err
		}

		updated, err = s.setPassword(ctx, user, req.DstPassword)
		return err
	})
	return updated, err
}

// FindPassword resets the password of the account registered with email
// and mails the generated one. A failed delivery rolls the reset back.
func (s *userService) FindPassword(ctx context.Context, email string) error {
	length := min(max(generatedPasswordLength, s.passwordPolicy.MinLength), s.passwordPolicy.MaxLength)

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, found, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrUserNotFound, email)
		}

		password, err := utils.GeneratePassword(length)
		if err != nil {
			return fmt.Errorf("error generating password: %w", err)
		}

		if _, err = s.setPassword(ctx, user, password); err != nil {
			return err
		}

		if err = s.mail.SendMailWithNewPassword(ctx, user.Email, password); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*userService.FindPassword").Msg("error sending new password")
			return fmt.Errorf("error sending new password: %w", err)
		}
		return nil
	})
}

func (s *userService) FindProfiles(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return err
		}

		profiles, err = s.profiles.FindByUserID(ctx, user.ID)
		return err
	})
	return profiles, err
}

func (s *userService) findUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, found, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return user, nil
}

func (s *userService) setPassword(ctx context.Context, user models.User, password string) (models.User, error) {
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = hash

	updated, found, err := s.users.Update(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: user %s", ErrCheckedRowVanished, user.ID)
	}
	return updated, nil
}
