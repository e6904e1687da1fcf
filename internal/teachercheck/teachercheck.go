// Package teachercheck verifies teacher identities against a curated email
// allow-list. Sponsorship eligibility is deliberately not a database flag:
// the list is maintained by coordinators and shipped with the deployment.
package teachercheck

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type allowlistFile struct {
	TeacherEmails []string `yaml:"teacher_emails"`
}

// Verifier answers whether an email belongs to a verified teacher
type Verifier struct {
	emails map[string]struct{}
}

// Load reads the allow-list from a YAML file
func Load(path string) (*Verifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teacher allowlist: %w", err)
	}

	var file allowlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse teacher allowlist: %w", err)
	}

	return NewVerifier(file.TeacherEmails), nil
}

// NewVerifier builds a Verifier from an explicit email list
func NewVerifier(emails []string) *Verifier {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &Verifier{emails: set}
}

// IsTeacherEmail checks if an email belongs to a verified teacher. The
// probed email is normalized the same way stored entries are.
func (v *Verifier) IsTeacherEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := v.emails[email]
	return ok
}

// Count returns the total number of verified teachers
func (v *Verifier) Count() int {
	return len(v.emails)
}
