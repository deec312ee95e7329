// Package sanitizer normalizes user-supplied input before validation.
package sanitizer
