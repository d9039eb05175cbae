package gateway

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// User is the public view of an account.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

type account struct {
	User
	passwordHash []byte
}

// Directory is an in-memory user table with bcrypt-hashed passwords.
type Directory struct {
	mu    sync.RWMutex
	cost  int
	users map[string]account
}

// NewDirectory returns an empty directory hashing with cost. A cost of zero
// uses bcrypt.DefaultCost.
func NewDirectory(cost int) *Directory {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Directory{cost: cost, users: make(map[string]account)}
}

// NewDemoDirectory returns a directory holding the demo account.
func NewDemoDirectory(cost int) (*Directory, error) {
	d := NewDirectory(cost)
	err := d.Add(User{
		Username: "testuser",
		Email:    "testuser@example.com",
		FullName: "Test User",
	}, "testpassword")
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Add stores u with a hash of password, replacing any existing entry.
func (d *Directory) Add(u User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", u.Username, err)
	}
	d.mu.Lock()
	d.users[u.Username] = account{User: u, passwordHash: hash}
	d.mu.Unlock()
	return nil
}

// Lookup returns the user named username.
func (d *Directory) Lookup(username string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.users[username]
	return a.User, ok
}

// Authenticate checks password against the stored hash.
func (d *Directory) Authenticate(username, password string) (User, error) {
	d.mu.RLock()
	a, ok := d.users[username]
	d.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return a.User, nil
}
