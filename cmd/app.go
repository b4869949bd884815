// Package cmd implements the CLI application to manage personal finance
// profiles.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mvezin/finstate"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statePath = flag.String("state-path", ".pfs", "Path to the state folder holding user profiles and the session")

// usersDir is where each user's profile lives, one <user>.jsonl per user.
func usersDir() string { return filepath.Join(*statePath, "users") }

// sessionFile persists the session between invocations.
func sessionFile() string { return filepath.Join(*statePath, "session.json") }

// LoadState decodes every user profile and the persisted session from the
// state folder.
func LoadState() (*finstate.Store, *finstate.Session, error) {
	store := finstate.NewStore()

	entries, err := os.ReadDir(usersDir())
	if err != nil {
		return nil, nil, fmt.Errorf("could not read users folder %q: %w", usersDir(), err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".jsonl") {
			continue
		}
		user := strings.TrimSuffix(name, ".jsonl")
		f, err := os.Open(filepath.Join(usersDir(), name))
		if err != nil {
			return nil, nil, fmt.Errorf("could not open profile %q: %w", name, err)
		}
		bundle, err := finstate.DecodeBundle(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("could not decode profile %q: %w", name, err)
		}
		store.AddUser(user, bundle)
	}

	if len(store.Users()) == 0 {
		return nil, nil, fmt.Errorf("no user profiles in %q", usersDir())
	}

	session, err := loadSession(store)
	if err != nil {
		return nil, nil, err
	}
	return store, session, nil
}

// LoadService is the one-call variant used by most commands.
func LoadService() (*finstate.Service, *finstate.Store, error) {
	store, session, err := LoadState()
	if err != nil {
		return nil, nil, err
	}
	return finstate.NewService(store, session), store, nil
}

// loadSession reads the persisted session, falling back to a fresh session
// for the first user when there is none or its user no longer exists.
func loadSession(store *finstate.Store) (*finstate.Session, error) {
	data, err := os.ReadFile(sessionFile())
	if err != nil {
		if os.IsNotExist(err) {
			return finstate.NewSession(store.Users()[0]), nil
		}
		return nil, fmt.Errorf("could not read session %q: %w", sessionFile(), err)
	}
	var session finstate.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("could not decode session %q: %w", sessionFile(), err)
	}
	if !store.HasUser(session.ActiveUser) {
		return finstate.NewSession(store.Users()[0]), nil
	}
	return &session, nil
}

// SaveState writes every user profile back in canonical form and persists the
// session.
func SaveState(store *finstate.Store, session *finstate.Session) error {
	if err := os.MkdirAll(usersDir(), 0755); err != nil {
		return fmt.Errorf("could not create users folder %q: %w", usersDir(), err)
	}
	for _, user := range store.Users() {
		path := filepath.Join(usersDir(), user+".jsonl")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not write profile %q: %w", path, err)
		}
		err = finstate.EncodeBundle(f, store.Bundle(user))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("could not encode profile %q: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}
	if err := os.WriteFile(sessionFile(), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write session %q: %w", sessionFile(), err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
