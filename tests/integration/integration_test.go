package integration_test

import (
	"context"
	"errors"
	"net"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/database"
	"github.com/worldscribe/worldscribe/internal/handlers"
	"github.com/worldscribe/worldscribe/internal/models"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/types"
	"github.com/worldscribe/worldscribe/tests/helpers"
	"gorm.io/gorm"
)

func dbImage() string {
	if img := os.Getenv("DB_IMAGE"); img != "" {
		return img
	}
	return "mariadb:11"
}

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage(),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
		JWTSecret:         []byte("integration-secret"),
		TokenTTL:          time.Hour,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("OwnershipAndCascade", func(t *testing.T) {
		testOwnershipAndCascade(t, db)
	})

	t.Run("AssociationRoundTrip", func(t *testing.T) {
		testAssociationRoundTrip(t, db)
	})

	t.Run("HandlerFlow", func(t *testing.T) {
		testHandlerFlow(t, db, cfg)
	})
}

// testOwnershipAndCascade exercises denormalized ownership and the cascade
// against a real MariaDB schema.
func testOwnershipAndCascade(t *testing.T, db *gorm.DB) {
	store, err := assets.NewStore(t.TempDir(), "/staticFiles/images")
	if err != nil {
		t.Fatalf("Failed to create asset store: %v", err)
	}

	alice := models.User{Username: "int-alice", PasswordHash: "x"}
	bob := models.User{Username: "int-bob", PasswordHash: "x"}
	if err := db.Create(&alice).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	if err := db.Create(&bob).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	world := helpers.CreateTestWorld(t, db, alice.ID, "int-midgard")
	lr := helpers.CreateTestLongRead(t, db, world, "int-saga")
	ch := helpers.CreateTestChapter(t, db, lr, "int-opening")
	bc := helpers.CreateTestBlock(t, db, ch, "int-first")

	// A descendant created through the service inherits the world's owner.
	created, err := services.CreateBlockContent(db, store, alice.ID, ch.ID, "int-second")
	if err != nil {
		t.Fatalf("CreateBlockContent failed: %v", err)
	}
	if created.UserID != alice.ID {
		t.Errorf("Expected owner %d, got %d", alice.ID, created.UserID)
	}

	// Foreign mutations are refused.
	if err := services.DeleteWorld(db, store, bob.ID, world.ID); !errors.Is(err, services.ErrDenied) {
		t.Errorf("Expected ErrDenied, got %v", err)
	}

	// The owner's cascade clears the whole subtree.
	if err := services.DeleteWorld(db, store, alice.ID, world.ID); err != nil {
		t.Fatalf("DeleteWorld failed: %v", err)
	}
	for _, check := range []struct {
		name string
		err  error
	}{
		{"longread", func() error { _, err := services.GetLongRead(db, lr.ID); return err }()},
		{"chapter", func() error { _, err := services.GetChapter(db, ch.ID); return err }()},
		{"block", func() error { _, err := services.GetBlockContent(db, bc.ID); return err }()},
	} {
		if !errors.Is(check.err, services.ErrNotFound) {
			t.Errorf("Expected %s to be cascade-deleted, got %v", check.name, check.err)
		}
	}
}

// testAssociationRoundTrip exercises the many-to-many join table against a
// real MariaDB schema.
func testAssociationRoundTrip(t *testing.T, db *gorm.DB) {
	user := models.User{Username: "int-carol", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	world := helpers.CreateTestWorld(t, db, user.ID, "int-assoc-world")
	lr := helpers.CreateTestLongRead(t, db, world, "int-assoc-saga")
	ch := helpers.CreateTestChapter(t, db, lr, "int-assoc-ch")
	bc := helpers.CreateTestBlock(t, db, ch, "int-assoc-block")
	wo := helpers.CreateTestWorldObj(t, db, world, "int-assoc-obj")

	if err := services.AttachWorldObj(db, user.ID, bc.ID, wo.ID); err != nil {
		t.Fatalf("AttachWorldObj failed: %v", err)
	}
	if err := services.AttachWorldObj(db, user.ID, bc.ID, wo.ID); err != nil {
		t.Fatalf("Repeat AttachWorldObj failed: %v", err)
	}

	objs, err := services.ListBlockContentWorldObjs(db, bc.ID)
	if err != nil {
		t.Fatalf("ListBlockContentWorldObjs failed: %v", err)
	}
	if len(objs) != 1 {
		t.Errorf("Expected exactly 1 linked object, got %d", len(objs))
	}

	if err := services.DetachWorldObj(db, user.ID, bc.ID, wo.ID); err != nil {
		t.Fatalf("DetachWorldObj failed: %v", err)
	}
	objs, _ = services.ListBlockContentWorldObjs(db, bc.ID)
	if len(objs) != 0 {
		t.Errorf("Expected no linked objects after detach, got %d", len(objs))
	}
}

// testHandlerFlow runs the register/create/read path through fiber handlers
// with the real database behind them.
func testHandlerFlow(t *testing.T, db *gorm.DB, cfg *config.Config) {
	store, err := assets.NewStore(t.TempDir(), "/staticFiles/images")
	if err != nil {
		t.Fatalf("Failed to create asset store: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var custom *types.CustomError
			if errors.As(err, &custom) {
				return c.Status(custom.Code).JSON(fiber.Map{"message": custom.Message})
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg, Store: store}
	worldHandler := &handlers.WorldHandler{DB: db, Store: store}
	app.Post("/api/auth/register", authHandler.Register)
	app.Get("/api/worlds/:id", worldHandler.GetWorld)

	// Serve on a real port so the account helper can register over HTTP.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	go func() {
		_ = app.Listener(ln)
	}()
	defer app.Shutdown()
	baseURL := "http://" + ln.Addr().String()

	token := helpers.AcquireAccount(t, baseURL, "int-erin", helpers.GeneratePassword())
	if token == "" {
		t.Fatal("Expected a token from registration")
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/worlds/999999", nil), -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	// Seed a world directly and read it through the handler.
	user := models.User{Username: "int-dave", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	world := helpers.CreateTestWorld(t, db, user.ID, "int-handler-world")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/worlds/"+itoa(world.ID), nil), -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var got models.World
	helpers.ParseJSON(t, resp, &got)
	if got.Name != "int-handler-world" {
		t.Errorf("Expected seeded world, got %s", got.Name)
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage(),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}
	if result.Status != "healthy" {
		t.Errorf("Expected status to be healthy, got: %s", result.Status)
	}
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
