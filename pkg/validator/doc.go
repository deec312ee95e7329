// Package validator provides rule-based input validation for the
// authentication flows.
//
// Rules are composed with Apply, which collects all failures into a
// ValidationErrors value implementing the error interface:
//
//	if err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.OTPCode("code", code),
//	); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			// field-level messages via verrs.Get("email")
//		}
//	}
//
// Validation failures are the ValidationError class of the error taxonomy:
// they surface to the caller before any network call is made.
package validator
