package store

import (
	"strconv"
	"strings"

	"github.com/prithvi1320/StyleSphere/models"
)

// Register creates a customer account and signs it in. Emails are unique
// case-insensitively.
func (s *Store) Register(name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if strings.TrimSpace(name) == "" || normalized == "" || strings.TrimSpace(password) == "" {
		return models.User{}, validationError("All fields are required.")
	}
	for _, u := range s.users {
		if strings.ToLower(u.Email) == normalized {
			return models.User{}, conflictError("An account with this email already exists.")
		}
	}

	user := models.User{
		ID:        s.nextUserIDLocked(),
		Name:      strings.TrimSpace(name),
		Email:     normalized,
		Role:      models.RoleCustomer,
		CreatedAt: s.formatDate(s.now()),
	}
	s.users = append([]models.User{user}, s.users...)
	s.credentials[normalized] = s.verifier.Seal(password)
	s.currentUserID = user.ID
	s.persistLocked()
	return user, nil
}

// Login authenticates against the credential table, falling back to the
// role default password for seeded accounts without an explicit entry. The
// error never reveals which of email or password was wrong.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	var matched *models.User
	for i := range s.users {
		if strings.ToLower(s.users[i].Email) == normalized {
			matched = &s.users[i]
			break
		}
	}
	if matched == nil {
		return models.User{}, authError("Invalid email or password.")
	}
	if !s.verifier.Verify(s.credentials[normalized], matched.Role, password) {
		return models.User{}, authError("Invalid email or password.")
	}
	s.currentUserID = matched.ID
	s.persistLocked()
	return *matched, nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = ""
	s.persistLocked()
}

// UpdateProfile changes the signed-in user's name and email, migrating the
// credential table entry to the new email key.
func (s *Store) UpdateProfile(name, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.currentUserLocked()
	if !ok {
		return models.User{}, authError("Please sign in first.")
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" || normalized == "" {
		return models.User{}, validationError("Name and email are required.")
	}
	for _, u := range s.users {
		if u.ID != current.ID && strings.ToLower(u.Email) == normalized {
			return models.User{}, conflictError("Email is already in use.")
		}
	}

	var updated models.User
	for i := range s.users {
		if s.users[i].ID == current.ID {
			s.users[i].Name = trimmedName
			s.users[i].Email = normalized
			updated = s.users[i]
			break
		}
	}

	oldKey := strings.ToLower(current.Email)
	stored := s.credentials[oldKey]
	if oldKey != normalized {
		delete(s.credentials, oldKey)
	}
	if stored != "" {
		s.credentials[normalized] = stored
	}
	s.persistLocked()
	return updated, nil
}

// UpdatePassword replaces the signed-in user's credential after verifying
// the current one.
func (s *Store) UpdatePassword(currentPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.currentUserLocked()
	if !ok {
		return authError("Please sign in first.")
	}
	key := strings.ToLower(current.Email)
	if !s.verifier.Verify(s.credentials[key], current.Role, currentPassword) {
		return authError("Current password is incorrect.")
	}
	if len(strings.TrimSpace(newPassword)) < 6 {
		return validationError("New password must be at least 6 characters.")
	}
	s.credentials[key] = s.verifier.Seal(newPassword)
	s.persistLocked()
	return nil
}

// nextUserIDLocked hands out millisecond-timestamp ids, bumping until
// unique since two registrations can land in the same tick.
func (s *Store) nextUserIDLocked() string {
	n := s.now().UnixMilli()
	id := strconv.FormatInt(n, 10)
	for s.userIDTakenLocked(id) {
		n++
		id = strconv.FormatInt(n, 10)
	}
	return id
}

func (s *Store) userIDTakenLocked(id string) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
