// Package test holds small assertion helpers shared by package tests.
package test

import "testing"

// AssertWantErr compares err against the expected error message, where
// an empty wantErr means no error is expected. It reports whether the
// test should stop early because an error was present or missing.
func AssertWantErr(err error, wantErr, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, wantErr)
		}

		return true
	} else if wantErr != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, wantErr)
		return true
	}

	return false
}
