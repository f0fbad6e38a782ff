package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterLoginWhoAmI(t *testing.T) {
	app, _ := newTestApp(t)

	token := acquireToken(t, app, "alice")

	resp := doJSON(t, app, "GET", "/api/auth/whoami", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("whoami returned %d", resp.StatusCode)
	}
	var who struct {
		UserID   uint64 `json:"user_id"`
		Username string `json:"username"`
	}
	decodeBody(t, resp, &who)
	if who.Username != "alice" {
		t.Errorf("Expected username alice, got %s", who.Username)
	}
	if who.UserID == 0 {
		t.Error("Expected a non-zero user id")
	}

	// Login with the same credentials works.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Login returned %d", resp.StatusCode)
	}

	// No token means no identity.
	resp = doJSON(t, app, "GET", "/api/auth/whoami", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("whoami without token returned %d, want 401", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/auth/whoami", "not-a-token", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("whoami with garbage token returned %d, want 401", resp.StatusCode)
	}
}

func TestRegisterDuplicateOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	acquireToken(t, app, "alice")

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
		"password": "another",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("Duplicate register returned %d, want 409", resp.StatusCode)
	}
}

func TestLoginWrongPasswordOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	acquireToken(t, app, "alice")

	resp := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Wrong password login returned %d, want 401", resp.StatusCode)
	}
}

func TestChangePasswordOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	token := acquireToken(t, app, "alice")

	resp := doJSON(t, app, "PUT", "/api/auth/password", token, map[string]string{
		"old_password": "secret123",
		"new_password": "changed456",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Password change returned %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Old password still accepted, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "changed456",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("New password rejected, got %d", resp.StatusCode)
	}
}

func TestDeleteUserOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	token := acquireToken(t, app, "alice")
	worldID := createWorld(t, app, token, "Midgard")

	// A user that still owns content is refused without the flag.
	resp := doJSON(t, app, "DELETE", "/api/auth/user", token, nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("Delete with content returned %d, want 409", resp.StatusCode)
	}

	resp = doJSON(t, app, "DELETE", "/api/auth/user?delete_content=true", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Delete with delete_content returned %d", resp.StatusCode)
	}

	// The cascade took the world with it.
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/worlds/%d", worldID), "", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("World survived user delete, got %d", resp.StatusCode)
	}

	// The account is gone.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Deleted account can still log in, got %d", resp.StatusCode)
	}
}
