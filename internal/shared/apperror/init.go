package apperror

import "sara-api/internal/shared/validation"

// Init wires the custom text predicates into gin's validator.
func Init() {
	validation.RegisterBindingTags()
}
