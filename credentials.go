package tradebook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"unicode"
)

// AddOutcome is the discriminated result of CredentialStore.AddUser.
type AddOutcome int

const (
	// Added means the user was created and the store was saved.
	Added AddOutcome = iota
	// DuplicateUser means the username is already taken.
	DuplicateUser
	// PasswordPolicyFailed means the password does not meet the policy.
	PasswordPolicyFailed
	// InvalidUsername means the username is empty or contains whitespace.
	InvalidUsername
)

func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case DuplicateUser:
		return "duplicate user"
	case PasswordPolicyFailed:
		return "password policy failed"
	case InvalidUsername:
		return "invalid username"
	default:
		return "unknown"
	}
}

// Credential is a stored username and password pair.
type Credential struct {
	Username string
	Password string
}

// CredentialStore is a durable map from username to password. It is
// rewritten in full on every successful AddUser.
type CredentialStore struct {
	path  string
	users map[string]string
}

// NewCredentialStore creates an empty in-memory store. A store without a
// path is never persisted.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{users: make(map[string]string)}
}

// LoadCredentials loads the store from path. A missing file yields an
// empty store without error; any other read error also yields an empty
// store and is returned so the caller can report it.
func LoadCredentials(path string) (*CredentialStore, error) {
	s := NewCredentialStore()
	s.path = path

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, credentials file %q does not exist, starting with an empty store", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("could not open credentials file %q: %w", path, err)
	}
	defer f.Close()

	if err := DecodeCredentials(path, f, s); err != nil {
		return s, err
	}
	return s, nil
}

// Authenticate reports whether username exists and the stored password is
// byte-for-byte equal to the given one.
func (s *CredentialStore) Authenticate(username, password string) bool {
	stored, ok := s.users[username]
	return ok && stored == password
}

// User returns the stored credential for username.
func (s *CredentialStore) User(username string) (Credential, bool) {
	p, ok := s.users[username]
	if !ok {
		return Credential{}, false
	}
	return Credential{Username: username, Password: p}, true
}

// Len returns the number of stored users.
func (s *CredentialStore) Len() int { return len(s.users) }

// AddUser creates a new user. On Added the store file is rewritten
// immediately; a save failure is returned alongside Added and leaves the
// in-memory state in place.
func (s *CredentialStore) AddUser(username, password string) (AddOutcome, error) {
	if !validUsername(username) {
		return InvalidUsername, nil
	}
	if _, ok := s.users[username]; ok {
		return DuplicateUser, nil
	}
	if !ValidPassword(password) {
		return PasswordPolicyFailed, nil
	}
	s.users[username] = password
	if s.path == "" {
		return Added, nil
	}
	return Added, s.save()
}

func (s *CredentialStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening credentials file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	return EncodeCredentials(f, s)
}

func validUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ValidPassword reports whether password meets the policy: at least 8
// characters, with at least one decimal digit, one letter, and one
// character that is neither alphanumeric nor whitespace.
func ValidPassword(password string) bool {
	var length, digit, letter, special bool

	n := 0
	for _, r := range password {
		n++
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case !unicode.IsSpace(r):
			special = true
		}
	}
	length = n >= 8

	return length && digit && letter && special
}
