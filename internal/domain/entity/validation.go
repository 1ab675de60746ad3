package entity

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"cmsdesk/internal/utils/text"
)

// maxURLLength defines the maximum allowed length for URLs.
const maxURLLength = 2048

const (
	minIdentifierLength = 3
	minUsernameLength   = 3
	minPasswordLength   = 8
)

// ArticleForm is the user-entered data for creating or updating an article.
// Category holds the category document ID chosen in the form.
type ArticleForm struct {
	Title         string
	Description   string
	Category      string
	CoverImageURL string
}

// CategoryForm is the user-entered data for creating or updating a category.
type CategoryForm struct {
	Name        string
	Description string
}

// LoginForm holds login credentials. Identifier is a username or email.
type LoginForm struct {
	Identifier string
	Password   string
}

// RegisterForm holds sign-up data.
type RegisterForm struct {
	Username string
	Email    string
	Password string
}

// ValidateURL validates the format of an absolute http(s) URL.
// Returns a ValidationError for the given field if the URL is invalid or empty.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "URL is not valid"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	return nil
}

// Validate checks the article form. All fields are required and the
// cover image must be an absolute http(s) URL.
func (f ArticleForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(f.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if strings.TrimSpace(f.Category) == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	return ValidateURL("cover_image_url", f.CoverImageURL)
}

// Validate checks the category form. Only the name is required.
func (f CategoryForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "category name is required"}
	}
	return nil
}

// ValidateCommentContent rejects blank comments.
func ValidateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "comment must not be empty"}
	}
	return nil
}

// Validate checks the login form.
func (f LoginForm) Validate() error {
	if text.CountRunes(f.Identifier) < minIdentifierLength {
		return &ValidationError{Field: "identifier", Message: "identifier is required"}
	}
	if text.CountRunes(f.Password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		}
	}
	return nil
}

// Validate checks the registration form.
func (f RegisterForm) Validate() error {
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return &ValidationError{Field: "email", Message: "email format is not valid"}
	}
	if text.CountRunes(f.Username) < minUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be at least %d characters", minUsernameLength),
		}
	}
	if text.CountRunes(f.Password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		}
	}
	return nil
}
