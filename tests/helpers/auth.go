package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"testing"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital and special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// AcquireAccount registers the user, falling back to login when the username
// is already taken, and returns a bearer token.
func AcquireAccount(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	token, status, err := postCredentials(baseURL+"/api/auth/register", username, password)
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	if status == http.StatusCreated {
		return token
	}

	token, status, err = postCredentials(baseURL+"/api/auth/login", username, password)
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("Login failed with status %d", status)
	}
	return token
}

func postCredentials(url, username, password string) (string, int, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", 0, err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return body.Token, resp.StatusCode, nil
}
