package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/email"
	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
	"github.com/rolandaayo/Astral-cu/internal/security"
	"github.com/rolandaayo/Astral-cu/internal/storage"
)

// SignupRequest carries the validated signup payload.
type SignupRequest struct {
	Name        string
	Email       string
	PhoneNumber string
	SSN         string
	Password    string
	FrontID     storage.Upload
	BackID      storage.Upload
}

// SignupResult is returned by the verification-enabled signup path.
type SignupResult struct {
	Email             string
	CodeExpiresAt     time.Time
	NeedsVerification bool
}

// AuthResult is a signed session token plus the authenticated user.
type AuthResult struct {
	Token string
	User  *models.User
}

// VerificationService owns the pending-signup verification workflow: it
// issues, refreshes, and checks 6-digit codes and promotes pending records
// into verified user records.
type VerificationService struct {
	users   repository.UserRepository
	pending repository.PendingRepository
	docs    storage.DocumentStore
	mailer  email.Mailer
	tokens  *security.TokenManager
	hasher  security.PasswordHasher
	logger  *slog.Logger
	// adminEmail owns the admin role; a signup with this email comes out
	// with role admin instead of user.
	adminEmail string
	codeTTL    time.Duration
	now        func() time.Time
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(
	users repository.UserRepository,
	pending repository.PendingRepository,
	docs storage.DocumentStore,
	mailer email.Mailer,
	tokens *security.TokenManager,
	hasher security.PasswordHasher,
	adminEmail string,
	codeTTL time.Duration,
	logger *slog.Logger,
) *VerificationService {
	return &VerificationService{
		users:      users,
		pending:    pending,
		docs:       docs,
		mailer:     mailer,
		tokens:     tokens,
		hasher:     hasher,
		logger:     logger,
		adminEmail: normalizeEmail(adminEmail),
		codeTTL:    codeTTL,
		now:        time.Now,
	}
}

// InitiateSignup stores a pending verification and emails its code. A
// delivery failure rolls the pending record back so the email stays free
// for another attempt.
func (s *VerificationService) InitiateSignup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	if err := validateSignupRequest(&req); err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	now := s.now()

	existing, err := s.pending.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, storeError("failed to check pending verifications", err)
	}
	// An expired leftover is replaced; only a live pending blocks the signup.
	if existing != nil && !existing.Expired(now) {
		return nil, &ServiceError{
			Code:    ErrCodeConflict,
			Message: "a verification is already in progress for this email",
		}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to hash password", Err: err}
	}

	frontURL, backURL, svcErr := s.uploadIDImages(ctx, &req)
	if svcErr != nil {
		return nil, svcErr
	}

	record := &models.PendingVerification{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		SSN:            req.SSN,
		FrontIDImage:   frontURL,
		BackIDImage:    backURL,
		HashedPassword: hashed,
		Code:           generateVerificationCode(),
		CodeExpiresAt:  now.Add(s.codeTTL),
		CreatedAt:      now,
	}

	if err := s.pending.Upsert(ctx, record); err != nil {
		return nil, storeError("failed to store pending verification", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, record.Email, record.Code); err != nil {
		// Roll back so a retry is not rejected as a live pending signup.
		if delErr := s.pending.Delete(ctx, record.Email); delErr != nil {
			s.logger.Error("failed to roll back pending verification",
				"email", record.Email, "error", delErr)
		}
		return nil, &ServiceError{
			Code:    ErrCodeDeliveryFailed,
			Message: "failed to send verification email",
			Err:     err,
		}
	}

	s.logger.Info("signup initiated", "email", record.Email, "expires_at", record.CodeExpiresAt)

	return &SignupResult{
		Email:             record.Email,
		CodeExpiresAt:     record.CodeExpiresAt,
		NeedsVerification: true,
	}, nil
}

// DirectSignup creates a verified user immediately, bypassing email
// verification. Active when VERIFICATION_ENABLED is false.
func (s *VerificationService) DirectSignup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	if err := validateSignupRequest(&req); err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to hash password", Err: err}
	}

	frontURL, backURL, svcErr := s.uploadIDImages(ctx, &req)
	if svcErr != nil {
		return nil, svcErr
	}

	user, svcErr := s.createVerifiedUser(ctx, &models.PendingVerification{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		SSN:            req.SSN,
		FrontIDImage:   frontURL,
		BackIDImage:    backURL,
		HashedPassword: hashed,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	token, svcErr := s.signToken(user.ID)
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("user created without verification", "email", user.Email, "user_id", user.ID)

	return &AuthResult{Token: token, User: user}, nil
}

// SendCode issues a fresh code for an existing pending signup.
func (s *VerificationService) SendCode(ctx context.Context, email string) error {
	return s.refreshAndSendCode(ctx, email)
}

// ResendCode regenerates the code and resends it. The pending record is kept
// even if delivery fails; only the initial signup rolls back.
func (s *VerificationService) ResendCode(ctx context.Context, email string) error {
	return s.refreshAndSendCode(ctx, email)
}

func (s *VerificationService) refreshAndSendCode(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return &ServiceError{Code: ErrCodeValidation, Message: "email is required"}
	}

	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return storeError("failed to check existing users", err)
	}
	if user != nil && user.EmailVerified {
		return &ServiceError{Code: ErrCodeAlreadyVerified, Message: "email is already verified"}
	}

	pending, err := s.pending.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeNotFound,
				Message: "no pending verification found, please sign up first",
			}
		}
		return storeError("failed to load pending verification", err)
	}

	now := s.now()
	if pending.Expired(now) {
		if err := s.pending.Delete(ctx, emailAddr); err != nil {
			s.logger.Error("failed to purge expired pending verification",
				"email", emailAddr, "error", err)
		}
		return &ServiceError{
			Code:    ErrCodeCodeExpired,
			Message: "verification window has expired, please sign up again",
		}
	}

	code := generateVerificationCode()
	expiresAt := now.Add(s.codeTTL)
	if err := s.pending.UpdateCode(ctx, emailAddr, code, expiresAt); err != nil {
		return storeError("failed to refresh verification code", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, emailAddr, code); err != nil {
		return &ServiceError{
			Code:    ErrCodeDeliveryFailed,
			Message: "failed to send verification email",
			Err:     err,
		}
	}

	s.logger.Info("verification code resent", "email", emailAddr, "expires_at", expiresAt)
	return nil
}

// Confirm checks the code and, on success, promotes the pending record into
// a verified user with a fresh account number and zero balances.
func (s *VerificationService) Confirm(ctx context.Context, emailAddr, code string) (*AuthResult, error) {
	emailAddr = normalizeEmail(emailAddr)

	pending, err := s.pending.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeNotFound,
				Message: "no pending verification found for this email",
			}
		}
		return nil, storeError("failed to load pending verification", err)
	}

	if pending.Code != code {
		return nil, &ServiceError{Code: ErrCodeInvalidCode, Message: "invalid verification code"}
	}

	// Re-checked here because the background sweep is coarser than the code
	// window.
	if pending.Expired(s.now()) {
		if err := s.pending.Delete(ctx, emailAddr); err != nil {
			s.logger.Error("failed to purge expired pending verification",
				"email", emailAddr, "error", err)
		}
		return nil, &ServiceError{
			Code:    ErrCodeCodeExpired,
			Message: "verification code has expired, please sign up again",
		}
	}

	user, svcErr := s.createVerifiedUser(ctx, pending)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.pending.Delete(ctx, emailAddr); err != nil {
		s.logger.Error("failed to delete promoted pending verification",
			"email", emailAddr, "error", err)
	}

	token, svcErr := s.signToken(user.ID)
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("email verified, account created",
		"email", user.Email, "user_id", user.ID, "account_number", user.AccountNumber)

	return &AuthResult{Token: token, User: user}, nil
}

// SweepExpired purges expired pending signups. Best-effort cleanup; Confirm
// and ResendCode do not depend on it.
func (s *VerificationService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.pending.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, storeError("failed to sweep expired verifications", err)
	}
	if removed > 0 {
		s.logger.Info("removed expired pending verifications", "count", removed)
	}
	return removed, nil
}

func (s *VerificationService) createVerifiedUser(ctx context.Context, pending *models.PendingVerification) (*models.User, *ServiceError) {
	accountNumber, err := allocateAccountNumber(ctx, s.users)
	if err != nil {
		var svcErr *ServiceError
		errors.As(err, &svcErr)
		return nil, svcErr
	}

	role := models.RoleUser
	if s.adminEmail != "" && pending.Email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:             uuid.New(),
		Name:           pending.Name,
		Email:          pending.Email,
		PhoneNumber:    pending.PhoneNumber,
		SSN:            pending.SSN,
		HashedPassword: pending.HashedPassword,
		AccountNumber:  accountNumber,
		RoutingNumber:  models.RoutingNumber,
		FrontIDImage:   pending.FrontIDImage,
		BackIDImage:    pending.BackIDImage,
		EmailVerified:  true,
		Role:           role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{Code: ErrCodeConflict, Message: "email already exists", Err: err}
		}
		return nil, storeError("failed to create user", err)
	}

	return user, nil
}

func (s *VerificationService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return &ServiceError{Code: ErrCodeConflict, Message: "email already exists"}
	}
	if !errors.Is(err, models.ErrNotFound) {
		return storeError("failed to check existing users", err)
	}
	return nil
}

func (s *VerificationService) uploadIDImages(ctx context.Context, req *SignupRequest) (frontURL, backURL string, svcErr *ServiceError) {
	frontURL, err := s.docs.UploadIDDocument(ctx, "front", req.FrontID)
	if err != nil {
		return "", "", uploadError(err)
	}

	backURL, err = s.docs.UploadIDDocument(ctx, "back", req.BackID)
	if err != nil {
		return "", "", uploadError(err)
	}

	return frontURL, backURL, nil
}

func uploadError(err error) *ServiceError {
	if errors.Is(err, storage.ErrFileTooBig) || errors.Is(err, storage.ErrInvalidFileType) {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error(), Err: err}
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "failed to upload ID images, please try again",
		Err:     err,
	}
}

func (s *VerificationService) signToken(userID uuid.UUID) (string, *ServiceError) {
	token, err := s.tokens.Generate(userID)
	if err != nil {
		if errors.Is(err, security.ErrMissingSecret) {
			return "", &ServiceError{
				Code:    ErrCodeConfig,
				Message: "server configuration error: signing secret is missing",
				Err:     err,
			}
		}
		return "", &ServiceError{Code: ErrCodeInternalError, Message: "failed to sign token", Err: err}
	}
	return token, nil
}

func validateSignupRequest(req *SignupRequest) error {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	if req.SSN == "" {
		missing = append(missing, "ssn")
	}
	if len(missing) > 0 {
		return &ServiceError{
			Code:    ErrCodeValidation,
			Message: "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	if req.FrontID.Reader == nil || req.BackID.Reader == nil {
		return &ServiceError{
			Code:    ErrCodeValidation,
			Message: "both front and back ID images are required",
		}
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
