package db

import (
	"testing"

	"github.com/cbsinteractive/editmaster/edit"
)

func TestEventKey(t *testing.T) {
	if have, want := eventKey("ab12"), "event:ab12"; have != want {
		t.Errorf("eventKey = %q, want %q", have, want)
	}
}

func TestNewClientDefaultsAddr(t *testing.T) {
	for _, tt := range []struct {
		name string
		opt  *Options
	}{
		{"NilOptions", nil},
		{"EmptyAddr", &Options{}},
		{"MissingPort", &Options{Addr: "10.0.0.1"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.opt); err != nil {
				t.Fatalf("NewClient(%v) error = %v", tt.opt, err)
			}
		})
	}
}

func TestPutRequiresID(t *testing.T) {
	c, err := NewClient(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(&edit.Event{Name: "no id"}); err == nil {
		t.Error("Put accepted an event without an id")
	}
}
