package linkerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "sentinel only",
			err:  &Error{Err: ErrNoLinksFound},
			want: "No links found",
		},
		{
			name: "with path",
			err:  WithPath(ErrNotLink, "/tmp/file"),
			want: "Path is not a symbolic link or junction: /tmp/file",
		},
		{
			name: "with path and suggestion",
			err:  WithPathAndSuggestion(ErrLinkExists, "/tmp/link", "remove it first"),
			want: "Link destination already exists: /tmp/link (remove it first)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("create failed: %w", WithPath(ErrSourceMissing, "src"))

	assert.True(t, errors.Is(err, ErrSourceMissing))
	assert.False(t, errors.Is(err, ErrLinkExists))

	var lerr *Error
	assert.True(t, errors.As(err, &lerr))
	assert.Equal(t, "src", lerr.Path)
}
