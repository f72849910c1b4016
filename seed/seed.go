// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

// File is the declarative roster loaded at startup.
type File struct {
	Accounts   []Account   `yaml:"accounts"`
	Candidates []Candidate `yaml:"candidates"`
}

type Account struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	Admin       bool   `yaml:"admin,omitempty"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
}

type Candidate struct {
	Name  string `yaml:"name"`
	Party string `yaml:"party,omitempty"`
	Topic string `yaml:"topic,omitempty"`
	Bio   string `yaml:"bio,omitempty"`
	Image string `yaml:"image,omitempty"`
	Owner string `yaml:"owner,omitempty"` // username of the owning account
}

// Load reads and validates a seed file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document and validates it.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks required fields and that every owner names a listed
// account.
func (f File) Validate() error {
	var errs []error
	usernames := make(map[string]bool, len(f.Accounts))
	for i, a := range f.Accounts {
		name := strings.TrimSpace(a.Username)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("accounts[%d]: username is required", i))
		case a.Password == "":
			errs = append(errs, fmt.Errorf("account %q: password is required", name))
		case usernames[name]:
			errs = append(errs, fmt.Errorf("account %q: listed twice", name))
		}
		usernames[name] = true
	}

	owners := make(map[string]string)
	for i, c := range f.Candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("candidates[%d]: name is required", i))
			continue
		}
		owner := strings.TrimSpace(c.Owner)
		if owner == "" {
			continue
		}
		if !usernames[owner] {
			errs = append(errs, fmt.Errorf("candidate %q: owner %q is not a listed account", name, owner))
		}
		if prev, ok := owners[owner]; ok {
			errs = append(errs, fmt.Errorf("candidate %q: owner %q already owns %q", name, owner, prev))
		}
		owners[owner] = name
	}
	return errors.Join(errs...)
}

// Result counts what Apply changed.
type Result struct {
	AccountsCreated   int
	AccountsUpdated   int
	CandidatesCreated int
	CandidatesUpdated int
}

// Apply upserts the file's accounts, then its candidates. Running it twice
// leaves the database as one run does.
func Apply(ctx context.Context, f File, accounts *store.Accounts, roster *store.Roster) (Result, error) {
	var res Result
	ids := make(map[string]string, len(f.Accounts))

	for _, a := range f.Accounts {
		acct, created, err := accounts.Ensure(ctx, a.Username, a.Password, a.Admin, a.PhoneNumber)
		if err != nil {
			return res, fmt.Errorf("seeding account %q: %w", a.Username, err)
		}
		ids[acct.Username] = acct.ID
		if created {
			res.AccountsCreated++
		} else {
			res.AccountsUpdated++
		}
	}

	for _, c := range f.Candidates {
		req := models.CreateCandidateRequest{
			Name:           c.Name,
			Party:          c.Party,
			Topic:          c.Topic,
			Bio:            c.Bio,
			ImageURL:       c.Image,
			OwnerAccountID: ids[strings.TrimSpace(c.Owner)],
		}
		_, created, err := roster.Ensure(ctx, req)
		if err != nil {
			return res, fmt.Errorf("seeding candidate %q: %w", c.Name, err)
		}
		if created {
			res.CandidatesCreated++
		} else {
			res.CandidatesUpdated++
		}
	}

	slog.Info("seed applied",
		"accounts_created", res.AccountsCreated,
		"accounts_updated", res.AccountsUpdated,
		"candidates_created", res.CandidatesCreated,
		"candidates_updated", res.CandidatesUpdated,
	)
	return res, nil
}
