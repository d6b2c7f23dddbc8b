package tradebook

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
)

// The credentials file is a plain text file, one user per line: the
// username, a single space, then the password. The password is
// everything after the first space and may itself contain spaces.
// Lines without both fields are reported and skipped on decode. Encode
// writes users sorted by username so the file is deterministic.

// DecodeCredentials reads credentials from r into s. filename is for
// warning messages only.
func DecodeCredentials(filename string, r io.Reader, s *CredentialStore) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		// split at the first space only: the password keeps any spaces
		// of its own
		parts := strings.SplitN(text, " ", 2)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			log.Printf("warning: invalid record in %q on line %d: %q, skipping", filename, line, text)
			continue
		}
		s.users[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read credentials %q: %w", filename, err)
	}
	return nil
}

// EncodeCredentials writes every credential of s to w.
func EncodeCredentials(w io.Writer, s *CredentialStore) error {
	usernames := make([]string, 0, len(s.users))
	for u := range s.users {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	for _, u := range usernames {
		if _, err := fmt.Fprintf(w, "%s %s\n", u, s.users[u]); err != nil {
			return fmt.Errorf("could not write credential %q: %w", u, err)
		}
	}
	return nil
}
