package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims are the identity token claims. The user id travels as the subject.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SignToken mints a signed bearer token for a user.
func SignToken(cfg *config.Config, userID uint64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.JWTSecret)
}

// ParseToken validates a bearer token and returns its claims.
func ParseToken(cfg *config.Config, tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// UserIDFromClaims recovers the numeric user id from the token subject.
func UserIDFromClaims(claims *Claims) (uint64, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed token subject: %w", err)
	}
	return id, nil
}

// Register creates a user and returns a fresh token. Duplicate usernames
// yield ErrConflict and leave the store untouched.
func Register(db *gorm.DB, cfg *config.Config, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return "", err
	}

	return SignToken(cfg, user.ID, user.Username)
}

// Login verifies a username/password pair and returns a fresh token.
func Login(db *gorm.DB, cfg *config.Config, username, password string) (string, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredential
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredential
	}
	return SignToken(cfg, user.ID, user.Username)
}

// ChangePassword swaps a user's password after verifying the old one and
// returns a fresh token.
func ChangePassword(db *gorm.DB, cfg *config.Config, userID uint64, oldPassword, newPassword string) (string, error) {
	if newPassword == "" {
		return "", ErrValidation
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return "", ErrInvalidCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return "", err
	}

	return SignToken(cfg, user.ID, user.Username)
}

// GetUser loads a user row.
func GetUser(db *gorm.DB, userID uint64) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. With deleteContent, every owned world is
// cascade-deleted first. Without it, a user that still owns worlds is
// refused with ErrConflict so content is never silently orphaned.
func DeleteUser(db *gorm.DB, store *assets.Store, userID uint64, deleteContent bool) error {
	user, err := GetUser(db, userID)
	if err != nil {
		return err
	}

	var worlds []models.World
	if err := db.Where("user_id = ?", user.ID).Find(&worlds).Error; err != nil {
		return err
	}

	if !deleteContent && len(worlds) > 0 {
		return fmt.Errorf("%w: user still owns content, pass delete_content=true", ErrConflict)
	}

	for i := range worlds {
		if err := cascadeWorld(db, store, &worlds[i]); err != nil {
			return err
		}
	}

	return db.Delete(user).Error
}
