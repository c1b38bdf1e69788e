package service

import (
	"context"
	"errors"
	"time"

	"simpleeval/config"
	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"
	mongoRepo "simpleeval/internal/database/mongodb/repository"
	redisRepo "simpleeval/internal/database/redis/repository"
	"simpleeval/internal/dto"
	"simpleeval/internal/mail"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	trace       *telemetry.Trace
	logger      *zap.Logger
	config      *config.Configuration
	userRepo    *mongoRepo.UserRepository
	orgRepo     *mongoRepo.OrganizationRepository
	sessionRepo *redisRepo.SessionRepository
	limiterRepo *redisRepo.RateLimiterRepository
	mailer      mail.Mailer
}

func NewAuthService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	config *config.Configuration,
	userRepo *mongoRepo.UserRepository,
	orgRepo *mongoRepo.OrganizationRepository,
	sessionRepo *redisRepo.SessionRepository,
	limiterRepo *redisRepo.RateLimiterRepository,
	mailer mail.Mailer,
) *AuthService {
	return &AuthService{
		trace:       trace,
		logger:      logger,
		config:      config,
		userRepo:    userRepo,
		orgRepo:     orgRepo,
		sessionRepo: sessionRepo,
		limiterRepo: limiterRepo,
		mailer:      mailer,
	}
}

// SignUp 註冊：同時建立組織（試用期、預設席次）與 admin 使用者
func (s *AuthService) SignUp(ctx context.Context, in *dto.SignUpDto) (*dto.AuthResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// email 全域唯一，先預查再寫入，資料庫唯一索引擋競態
	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, cErr.Conflict("email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database GetByEmail error")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cErr.InternalServer("password hash error")
	}

	trialDays := s.config.Auth.TrialDays
	if trialDays <= 0 {
		trialDays = 14
	}
	seats := s.config.Auth.DefaultSeats
	if seats <= 0 {
		seats = 10
	}

	user := &model.User{
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(passwordHash),
		Role:         core.RoleAdmin,
		IsActive:     true,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("email already registered")
		}
		return nil, cErr.DatabaseError("database CreateUser error")
	}

	organization := &model.Organization{
		Name:        in.OrganizationName,
		OwnerID:     created.ID,
		TrialEndsAt: time.Now().UTC().AddDate(0, 0, trialDays),
		IsActive:    true,
		Seats:       seats,
		UsedSeats:   0,
	}
	createdOrg, err := s.orgRepo.Create(ctx, organization)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateOrganization error")
	}

	// 補回使用者所屬組織
	if _, err := s.userRepo.UpdateByID(ctx, created.ID, bson.M{"$set": bson.M{"organizationId": createdOrg.ID}}); err != nil {
		return nil, cErr.DatabaseError("database UpdateUser error")
	}
	created.OrganizationID = createdOrg.ID

	if err := s.mailer.Send(ctx, created.Email, "Welcome to SimpleEval",
		"Your organization \""+createdOrg.Name+"\" has been created. Your trial ends on "+
			createdOrg.TrialEndsAt.Format("2006-01-02")+"."); err != nil {
		s.logger.Warn("failed to send welcome mail", zap.Error(err))
	}

	return s.issueTokens(ctx, created)
}

// SignIn 密碼登入，帶登入限流與停用帳號檢查
func (s *AuthService) SignIn(ctx context.Context, in *dto.SignInDto) (*dto.AuthResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	limit := s.config.Auth.LoginRateLimit
	window := s.config.Auth.LoginRateWindow
	if limit > 0 && window > 0 {
		if _, _, err := s.limiterRepo.Consume(ctx, in.Email, window, limit); err != nil {
			if errors.Is(err, redisRepo.ErrRateLimitExceeded) {
				return nil, cErr.RateLimitExceeded("too many login attempts")
			}
			s.logger.Warn("login rate limiter unavailable", zap.Error(err))
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidCredentials("invalid email or password")
		}
		return nil, cErr.DatabaseError("database GetByEmail error")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, cErr.InvalidCredentials("invalid email or password")
	}
	if !user.IsActive {
		return nil, cErr.AccountDeactivated("account is deactivated")
	}

	if limit > 0 && window > 0 {
		if err := s.limiterRepo.Reset(ctx, in.Email); err != nil {
			s.logger.Warn("failed to reset login limiter", zap.Error(err))
		}
	}
	if _, err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update last login", zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

// SignInWithProvider 第三方登入：信任上游 email，不存在即拒絕（帳號開通走註冊流程）
func (s *AuthService) SignInWithProvider(ctx context.Context, in *dto.SignInWithProviderDto) (*dto.AuthResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidCredentials("no account for this email")
		}
		return nil, cErr.DatabaseError("database GetByEmail error")
	}
	if !user.IsActive {
		return nil, cErr.AccountDeactivated("account is deactivated")
	}

	if _, err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update last login", zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken 以有效的 refresh token 換發新的 token 對，舊 token 作廢
func (s *AuthService) RefreshToken(ctx context.Context, in *dto.RefreshTokenDto) (*dto.AuthResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	userID, err := s.sessionRepo.GetRefreshToken(ctx, in.RefreshToken)
	if err != nil {
		if errors.Is(err, redisRepo.ErrSessionNotFound) {
			return nil, cErr.InvalidSession("refresh token expired or revoked")
		}
		return nil, cErr.InternalServer("session store error")
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, cErr.InvalidSession("malformed session")
	}
	user, err := s.userRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidSession("user no longer exists")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	if !user.IsActive {
		return nil, cErr.AccountDeactivated("account is deactivated")
	}

	if err := s.sessionRepo.DeleteRefreshToken(ctx, in.RefreshToken); err != nil {
		s.logger.Warn("failed to revoke old refresh token", zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

// SignOut 作廢 access token（黑名單）與 refresh token
func (s *AuthService) SignOut(ctx context.Context, tokenID string, tokenExpiry time.Time, refreshToken string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if tokenID != "" {
		ttl := time.Until(tokenExpiry)
		if err := s.sessionRepo.BlacklistToken(ctx, tokenID, ttl); err != nil {
			return cErr.InternalServer("session store error")
		}
	}
	if refreshToken != "" {
		if err := s.sessionRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
			s.logger.Warn("failed to revoke refresh token", zap.Error(err))
		}
	}
	return nil
}

// ParseToken 驗證 JWT 簽章與效期，回傳 claims
func (s *AuthService) ParseToken(tokenString string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, cErr.Unauthorized("invalid token")
	}
	return claims, nil
}

// GetUserByID 供 middleware 檢查使用者狀態
func (s *AuthService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	return modelToUserResponseDto(user), nil
}

// IsTokenBlacklisted 查登出黑名單
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	return s.sessionRepo.IsTokenBlacklisted(ctx, tokenID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*dto.AuthResponseDto, error) {
	accessTTL := time.Duration(s.config.Auth.AccessTokenTTL) * time.Minute
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := time.Duration(s.config.Auth.RefreshTokenTTL) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 720 * time.Hour
	}

	now := time.Now().UTC()
	claims := &core.Claims{
		UserID:         user.ID.Hex(),
		OrganizationID: user.OrganizationID.Hex(),
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return nil, cErr.InternalServer("token signing error")
	}

	refreshToken := uuid.NewString()
	if err := s.sessionRepo.StoreRefreshToken(ctx, refreshToken, user.ID.Hex(), refreshTTL); err != nil {
		return nil, cErr.InternalServer("session store error")
	}

	return &dto.AuthResponseDto{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
		User:         *modelToUserResponseDto(user),
	}, nil
}

func modelToUserResponseDto(m *model.User) *dto.UserResponseDto {
	return &dto.UserResponseDto{
		ID:             m.ID.Hex(),
		Email:          m.Email,
		FullName:       m.FullName,
		OrganizationID: m.OrganizationID.Hex(),
		Role:           m.Role,
		IsActive:       m.IsActive,
		LastLoginAt:    m.LastLoginAt,
		CreatedAt:      m.CreatedAt,
	}
}
