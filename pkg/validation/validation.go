package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	conform     *mold.Transformer
	conformOnce sync.Once
)

func Validate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	return validate
}

func Conform() *mold.Transformer {
	conformOnce.Do(func() {
		conform = modifiers.New()
	})

	return conform
}

// Struct applies `mod` tags and then checks `validate` tags.
func Struct(ctx context.Context, v interface{}) error {
	if err := Conform().Struct(ctx, v); err != nil {
		return err
	}

	return Validate().Struct(v)
}
