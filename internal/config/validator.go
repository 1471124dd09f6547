package config

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	erperrors "github.com/IES-git/integratedentrysystems-erp-sub001/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	docIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("doc_id", func(fl validator.FieldLevel) bool {
			return docIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema and cross-field validation on a batch
// manifest.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return erperrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Documents))
	for i, doc := range m.Documents {
		if prev, exists := seen[doc.ID]; exists {
			return erperrors.NewValidationError(
				fieldForDocument(i, "id"),
				fmt.Sprintf("duplicate document id %q (first used by documents[%d])", doc.ID, prev),
				nil,
			)
		}
		seen[doc.ID] = i
	}

	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return erperrors.NewValidationError(
			first.Namespace(),
			fmt.Sprintf("failed %q validation", first.Tag()),
			err,
		)
	}
	return erperrors.NewValidationError("", err.Error(), err)
}

func fieldForDocument(index int, field string) string {
	return fmt.Sprintf("documents[%d].%s", index, field)
}
