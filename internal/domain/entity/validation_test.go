package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://images.example.com/bali.jpg", wantErr: false},
		{name: "valid http URL", url: "http://example.com/a.png", wantErr: false},
		{name: "valid URL with query", url: "https://example.com/img?w=300", wantErr: false},
		{name: "empty URL", url: "", wantErr: true},
		{name: "invalid scheme - ftp", url: "ftp://example.com/a.png", wantErr: true},
		{name: "invalid scheme - javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "relative path", url: "/images/a.png", wantErr: true},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", maxURLLength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL("cover_image_url", tt.url)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, "cover_image_url", vErr.Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestArticleForm_Validate(t *testing.T) {
	valid := ArticleForm{
		Title:         "Bali",
		Description:   "Island trip",
		Category:      "cat-doc-1",
		CoverImageURL: "https://example.com/bali.jpg",
	}

	tests := []struct {
		name      string
		mutate    func(f *ArticleForm)
		wantField string
	}{
		{name: "valid form", mutate: func(f *ArticleForm) {}},
		{name: "missing title", mutate: func(f *ArticleForm) { f.Title = "  " }, wantField: "title"},
		{name: "missing description", mutate: func(f *ArticleForm) { f.Description = "" }, wantField: "description"},
		{name: "missing category", mutate: func(f *ArticleForm) { f.Category = "" }, wantField: "category"},
		{name: "missing cover", mutate: func(f *ArticleForm) { f.CoverImageURL = "" }, wantField: "cover_image_url"},
		{name: "bad cover", mutate: func(f *ArticleForm) { f.CoverImageURL = "not a url" }, wantField: "cover_image_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			err := form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestCategoryForm_Validate(t *testing.T) {
	assert.NoError(t, CategoryForm{Name: "Beach"}.Validate())
	assert.NoError(t, CategoryForm{Name: "Beach", Description: "sand"}.Validate())
	assert.ErrorIs(t, CategoryForm{Name: " "}.Validate(), ErrValidationFailed)
}

func TestValidateCommentContent(t *testing.T) {
	assert.NoError(t, ValidateCommentContent("nice"))
	assert.ErrorIs(t, ValidateCommentContent(""), ErrValidationFailed)
	assert.ErrorIs(t, ValidateCommentContent(" \n\t"), ErrValidationFailed)
}

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      LoginForm
		wantField string
	}{
		{name: "valid", form: LoginForm{Identifier: "ann", Password: "12345678"}},
		{name: "short identifier", form: LoginForm{Identifier: "an", Password: "12345678"}, wantField: "identifier"},
		{name: "short password", form: LoginForm{Identifier: "ann", Password: "1234567"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRegisterForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      RegisterForm
		wantField string
	}{
		{name: "valid", form: RegisterForm{Username: "ann", Email: "ann@example.com", Password: "12345678"}},
		{name: "bad email", form: RegisterForm{Username: "ann", Email: "ann@", Password: "12345678"}, wantField: "email"},
		{name: "display name email", form: RegisterForm{Username: "ann", Email: "Ann <ann@example.com>", Password: "12345678"}, wantField: "email"},
		{name: "short username", form: RegisterForm{Username: "an", Email: "ann@example.com", Password: "12345678"}, wantField: "username"},
		{name: "short password", form: RegisterForm{Username: "ann", Email: "ann@example.com", Password: "short"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}
