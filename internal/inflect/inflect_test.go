package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"article", "articles"},
		{"category", "categories"},
		{"post", "posts"},
		{"day", "days"},
		{"key", "keys"},
		{"bus", "buses"},
		{"box", "boxes"},
		{"quiz", "quizes"},
		{"match", "matches"},
		{"dish", "dishes"},
		{"y", "ys"},
		{"Article", "Articles"},
		{"Category", "Categories"},
		{"BOX", "BOXES"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Pluralize(tt.word))
		})
	}
}

func TestCamelize(t *testing.T) {
	tests := map[string]string{
		"author":      "Author",
		"blog_post":   "BlogPost",
		"blog-post":   "BlogPost",
		"blogPost":    "BlogPost",
		"__private__": "Private",
		"":            "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Camelize(in), in)
	}
}
