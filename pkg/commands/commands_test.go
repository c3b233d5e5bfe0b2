package commands

import (
	"strings"
	"testing"

	"tableflip.dev/quake/pkg/query"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := map[string]bool{"ui": false, "list": false, "feeds": false, "version": false, "completion": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing %q subcommand", name)
		}
	}
}

func TestListFlagsParse(t *testing.T) {
	root := New()
	list, _, err := root.Find([]string{"list"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := list.ParseFlags([]string{"--sort", "largest", "--feed", "4.5_week", "-n", "5"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := list.Flag("sort").Value.String(); got != query.LargestFirst.String() {
		t.Fatalf("unexpected sort %q", got)
	}
	if got := list.Flag("feed").Value.String(); got != "4.5_week" {
		t.Fatalf("unexpected feed %q", got)
	}
}

func TestBadFlagValuesAreRejected(t *testing.T) {
	root := New()
	list, _, _ := root.Find([]string{"list"})
	if err := list.ParseFlags([]string{"--sort", "loudest"}); err == nil {
		t.Fatalf("expected an unknown sort mode to be rejected")
	}
	if err := list.ParseFlags([]string{"--feed", "nope"}); err == nil {
		t.Fatalf("expected an unknown feed to be rejected")
	}
}

func TestUserAgent(t *testing.T) {
	if !strings.HasPrefix(userAgent(), "quake/") {
		t.Fatalf("unexpected user agent %q", userAgent())
	}
}

func TestVersionUserAgent(t *testing.T) {
	root := New()
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--user-agent"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "quake/dev" {
		t.Fatalf("unexpected output %q", got)
	}
}
