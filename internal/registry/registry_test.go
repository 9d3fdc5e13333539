package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/session"
)

type stubFrontend struct {
	id, title string
}

func (s stubFrontend) ID() string         { return s.id }
func (s stubFrontend) Title() string      { return s.title }
func (s stubFrontend) OwnsTerminal() bool { return false }

func (s stubFrontend) Run(context.Context, *session.Session, config.Config) error {
	return nil
}

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Frontend { return stubFrontend{id: id, title: title} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test-b", "Bravo")

	if !Exists("test-b") {
		t.Fatal("Exists() = false after Register")
	}

	fe, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if fe.ID() != "test-b" || fe.Title() != "Bravo" {
		t.Errorf("Create() = %s/%s, expected test-b/Bravo", fe.ID(), fe.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if err == nil {
		t.Fatal("Create() should fail for unknown ID")
	}
	if !strings.Contains(err.Error(), "no-such-frontend") {
		t.Errorf("error %q should name the ID", err)
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() = true for unknown ID")
	}
}

func TestListSorted(t *testing.T) {
	register(t, "test-z", "Zulu")
	register(t, "test-a", "Alpha")

	list := List()
	idx := map[string]int{}
	for i, info := range list {
		idx[info.ID] = i
	}

	a, okA := idx["test-a"]
	z, okZ := idx["test-z"]
	if !okA || !okZ {
		t.Fatalf("List() = %v, expected both test frontends", list)
	}
	if a > z {
		t.Errorf("List() not sorted: test-a at %d, test-z at %d", a, z)
	}
	if list[a].Title != "Alpha" {
		t.Errorf("Title = %q, expected Alpha", list[a].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "test-dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Frontend { return stubFrontend{id: "test-dup"} })
}
