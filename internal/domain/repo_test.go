package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		expected    Repo
		expectError bool
	}{
		{
			name:     "plain repository URL",
			url:      "https://github.com/octocat/hello-world",
			expected: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name:     "trailing slash",
			url:      "https://github.com/octocat/hello-world/",
			expected: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name:     "clone URL with .git suffix",
			url:      "https://github.com/octocat/hello-world.git",
			expected: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name:     "extra path segments are ignored",
			url:      "https://github.com/octocat/hello-world/pulls",
			expected: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name:        "missing repository name",
			url:         "https://github.com/octocat",
			expectError: true,
		},
		{
			name:        "missing scheme and host",
			url:         "github.com/octocat/hello-world",
			expectError: true,
		},
		{
			name:        "empty string",
			url:         "",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseRepoURL(tc.url)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repo)
			}
		})
	}
}

func TestRepoString(t *testing.T) {
	repo := Repo{Owner: "octocat", Name: "hello-world"}
	assert.Equal(t, "octocat/hello-world", repo.String())
}
