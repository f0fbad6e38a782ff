package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/models"
	"github.com/worldscribe/worldscribe/internal/services"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.World{},
		&models.LongRead{},
		&models.Chapter{},
		&models.BlockContent{},
		&models.WorldObj{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
}

func testStore(t *testing.T) *assets.Store {
	t.Helper()
	store, err := assets.NewStore(t.TempDir(), "/staticFiles/images")
	if err != nil {
		t.Fatalf("Failed to create asset store: %v", err)
	}
	return store
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	token, err := services.Register(db, cfg, "alice", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned empty token")
	}

	claims, err := services.ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %s", claims.Username)
	}
	userID, err := services.UserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("UserIDFromClaims failed: %v", err)
	}
	if userID == 0 {
		t.Error("Expected non-zero user id in token subject")
	}

	loginToken, err := services.Login(db, cfg, "alice", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginToken == "" {
		t.Fatal("Login returned empty token")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	if _, err := services.Register(db, cfg, "alice", "secret123"); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	_, err := services.Register(db, cfg, "alice", "other-secret")
	if !errors.Is(err, services.ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 user after duplicate register, got %d", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	if _, err := services.Register(db, cfg, "", "secret"); !errors.Is(err, services.ErrValidation) {
		t.Errorf("Expected ErrValidation for empty username, got %v", err)
	}
	if _, err := services.Register(db, cfg, "alice", ""); !errors.Is(err, services.ErrValidation) {
		t.Errorf("Expected ErrValidation for empty password, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	if _, err := services.Register(db, cfg, "alice", "secret123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := services.Login(db, cfg, "alice", "wrong"); !errors.Is(err, services.ErrInvalidCredential) {
		t.Errorf("Expected ErrInvalidCredential for wrong password, got %v", err)
	}
	if _, err := services.Login(db, cfg, "nobody", "secret123"); !errors.Is(err, services.ErrInvalidCredential) {
		t.Errorf("Expected ErrInvalidCredential for unknown user, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	token, err := services.Register(db, cfg, "alice", "oldsecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	claims, _ := services.ParseToken(cfg, token)
	userID, _ := services.UserIDFromClaims(claims)

	if _, err := services.ChangePassword(db, cfg, userID, "wrong", "newsecret"); !errors.Is(err, services.ErrInvalidCredential) {
		t.Errorf("Expected ErrInvalidCredential for wrong old password, got %v", err)
	}

	if _, err := services.ChangePassword(db, cfg, userID, "oldsecret", "newsecret"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := services.Login(db, cfg, "alice", "oldsecret"); !errors.Is(err, services.ErrInvalidCredential) {
		t.Error("Old password still accepted after change")
	}
	if _, err := services.Login(db, cfg, "alice", "newsecret"); err != nil {
		t.Errorf("New password rejected after change: %v", err)
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	token, err := services.Register(db, cfg, "alice", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	otherCfg := testConfig()
	otherCfg.JWTSecret = []byte("other-secret")
	if _, err := services.ParseToken(otherCfg, token); err == nil {
		t.Error("Expected token signed with another secret to be rejected")
	}
}

func TestDeleteUserRefusesWhenContentRemains(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	store := testStore(t)

	token, _ := services.Register(db, cfg, "alice", "secret123")
	claims, _ := services.ParseToken(cfg, token)
	userID, _ := services.UserIDFromClaims(claims)

	if _, err := services.CreateWorld(db, store, userID, "Midgard", "nine realms"); err != nil {
		t.Fatalf("CreateWorld failed: %v", err)
	}

	err := services.DeleteUser(db, store, userID, false)
	if !errors.Is(err, services.ErrConflict) {
		t.Errorf("Expected ErrConflict deleting a user that owns content, got %v", err)
	}
	if _, err := services.GetUser(db, userID); err != nil {
		t.Errorf("User should survive a refused delete: %v", err)
	}
}

func TestDeleteUserWithContent(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	store := testStore(t)

	token, _ := services.Register(db, cfg, "alice", "secret123")
	claims, _ := services.ParseToken(cfg, token)
	userID, _ := services.UserIDFromClaims(claims)

	world, err := services.CreateWorld(db, store, userID, "Midgard", "nine realms")
	if err != nil {
		t.Fatalf("CreateWorld failed: %v", err)
	}
	lr, err := services.CreateLongRead(db, store, userID, world.ID, "Saga", "a tale")
	if err != nil {
		t.Fatalf("CreateLongRead failed: %v", err)
	}

	if err := services.DeleteUser(db, store, userID, true); err != nil {
		t.Fatalf("DeleteUser with delete_content failed: %v", err)
	}

	if _, err := services.GetUser(db, userID); !errors.Is(err, services.ErrNotFound) {
		t.Error("User row should be gone")
	}
	if _, err := services.GetWorld(db, world.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("Owned world should be cascade-deleted")
	}
	if _, err := services.GetLongRead(db, lr.ID); !errors.Is(err, services.ErrNotFound) {
		t.Error("Owned longread should be cascade-deleted")
	}
}

func TestDeleteUserWithoutContent(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	store := testStore(t)

	token, _ := services.Register(db, cfg, "alice", "secret123")
	claims, _ := services.ParseToken(cfg, token)
	userID, _ := services.UserIDFromClaims(claims)

	if err := services.DeleteUser(db, store, userID, false); err != nil {
		t.Fatalf("DeleteUser for a user without content failed: %v", err)
	}
	if _, err := services.GetUser(db, userID); !errors.Is(err, services.ErrNotFound) {
		t.Error("User row should be gone")
	}
}
