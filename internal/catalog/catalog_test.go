package catalog

import (
	"errors"
	"testing"
)

func TestLoadErrorMessagesAndMatching(t *testing.T) {
	cases := []struct {
		kind error
		want string
	}{
		{ErrNotOwned, "App 440 not in your library"},
		{ErrNoAchievements, "No achievements were found"},
		{ErrNameFetchFailed, "Failed to get achievement names"},
	}
	for _, tc := range cases {
		err := error(&LoadError{AppID: 440, Kind: tc.kind})
		if err.Error() != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, err.Error())
		}
		if !errors.Is(err, tc.kind) {
			t.Fatalf("expected errors.Is to match %v", tc.kind)
		}
		if errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected load error not to match backend unavailable")
		}
	}
}

func TestLoadErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk gone")
	err := &LoadError{AppID: 1, Kind: ErrNameFetchFailed, Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable(errors.New("database is locked"))
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
	if err.Error() != "backend unavailable: database is locked" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(Unavailable(nil), ErrBackendUnavailable) {
		t.Fatalf("expected nil cause to map to sentinel")
	}
}
