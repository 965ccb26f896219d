package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	deckVersionPattern = regexp.MustCompile(`^\d+(?:\.\d+){0,2}$`)
	slideURLPattern    = regexp.MustCompile(`^\S+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("deck_version", func(fl validator.FieldLevel) bool {
			return deckVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slide_url", func(fl validator.FieldLevel) bool {
			return slideURLPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDeck performs schema and cross-field validation on the deck.
func ValidateDeck(deck *Deck) error {
	if deck == nil {
		return carouselerrors.NewValidationError("deck", "deck is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(deck); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(deck.Slides))
	for i, slide := range deck.Slides {
		if first, exists := seen[slide.ID]; exists {
			return carouselerrors.NewValidationError(
				fieldForSlide(i, "id"),
				fmt.Sprintf("duplicate slide id %d (first used by slides[%d])", slide.ID, first),
				nil,
			)
		}
		seen[slide.ID] = i
	}

	if len(deck.Captions) > len(deck.Slides) {
		return carouselerrors.NewValidationError(
			"captions",
			fmt.Sprintf("%d captions for %d slides; captions align to slides by position", len(deck.Captions), len(deck.Slides)),
			nil,
		)
	}

	if deck.Options.Start >= len(deck.Slides) && deck.Options.Start != 0 {
		return carouselerrors.NewValidationError(
			"options.start",
			fmt.Sprintf("start index %d is out of range for %d slides", deck.Options.Start, len(deck.Slides)),
			nil,
		)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return carouselerrors.NewValidationError(field, msg, err)
	}

	return carouselerrors.NewValidationError("deck", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForSlide(index int, field string) string {
	return fmt.Sprintf("slides[%d].%s", index, field)
}
