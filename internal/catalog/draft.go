package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Draft carries user-entered, not-yet-validated fields for creating or
// editing a course. Price is kept as the raw text the user typed; parsing is
// part of validation.
type Draft struct {
	Title      string
	Price      string
	CategoryID string
	Image      string
}

// DefaultDraft returns the prefill used by the "new course" form.
func DefaultDraft() Draft {
	return Draft{
		CategoryID: "cat_biz",
		Image:      "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80&w=400",
	}
}

// DraftFor returns a draft prefilled from an existing course, for editing.
func DraftFor(c Course) Draft {
	return Draft{
		Title:      c.Title,
		Price:      strconv.FormatFloat(c.Price, 'f', -1, 64),
		CategoryID: c.CategoryID,
		Image:      c.Image,
	}
}

// draftFields is the post-parse shape the validator runs against.
type draftFields struct {
	Title string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// parse validates the draft and returns the normalized title and price. A
// failure is always a *ValidationError naming the offending field.
func (d Draft) parse() (string, float64, error) {
	title := strings.TrimSpace(d.Title)

	raw := strings.TrimSpace(d.Price)
	if raw == "" {
		return "", 0, &ValidationError{Field: "price", Reason: "is required"}
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "", 0, &ValidationError{Field: "price", Reason: "must be a finite number"}
	}

	if err := validate.Struct(draftFields{Title: title, Price: price}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "Title":
				return "", 0, &ValidationError{Field: "title", Reason: "is required"}
			case "Price":
				return "", 0, &ValidationError{Field: "price", Reason: "must not be negative"}
			}
		}
		return "", 0, &ValidationError{Field: "draft", Reason: err.Error()}
	}

	return title, price, nil
}
